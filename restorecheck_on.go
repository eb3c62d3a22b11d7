//go:build metischeck

package metis

// restoreCheckEnabled is on under the metischeck build tag: terminal
// calls snapshot their adjacency arrays and panic when METIS returns
// without restoring them.
const restoreCheckEnabled = true
