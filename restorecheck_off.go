//go:build !metischeck

package metis

// restoreCheckEnabled gates the snapshot-compare of adjacency arrays
// around foreign calls. Build with -tags metischeck to enable it.
const restoreCheckEnabled = false
