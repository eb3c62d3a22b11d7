package metis

import "fmt"

// METIS documents that it restores the adjacency arrays it transiently
// mutates during a call. The wrapper normally trusts that contract; under
// the metischeck build tag every terminal call snapshots the arrays and
// panics if the solver hands them back modified, so an upstream
// input-mutation bug cannot go undetected during debugging.

// snapshotArrays copies the given arrays when the restore check is
// enabled; otherwise it costs nothing and returns nil.
func snapshotArrays(arrays ...[]Idx) [][]Idx {
	if !restoreCheckEnabled {
		return nil
	}
	snaps := make([][]Idx, len(arrays))
	for i, a := range arrays {
		snaps[i] = append([]Idx(nil), a...)
	}
	return snaps
}

// verifyRestored panics if any array differs from its snapshot. A failed
// restore is solver misbehaviour, not caller input, hence fatal.
func verifyRestored(method string, snaps [][]Idx, arrays ...[]Idx) {
	if !restoreCheckEnabled || snaps == nil {
		return
	}
	for i, a := range arrays {
		for j, v := range a {
			if v != snaps[i][j] {
				panic(fmt.Sprintf("metis: %s: solver did not restore input array %d at index %d (%d != %d)",
					method, i, j, v, snaps[i][j]))
			}
		}
	}
}
