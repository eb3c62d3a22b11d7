package metis

import (
	"fmt"
	"math"
)

// Idx is the integer type used by METIS (idx_t). The bindings require a
// libmetis built with IDXTYPEWIDTH 32, the stock configuration; capi.go
// rejects other widths at compile time.
type Idx = int32

// Real is the floating-point type used by METIS (real_t), under the stock
// REALTYPEWIDTH 32 configuration.
type Real = float32

// NOptions is the length of the fine-tuning options array
// (METIS_NOPTIONS). See Graph.SetOptions and Mesh.SetOptions.
const NOptions = 40

// maxIdx is the largest array length representable in Idx.
const maxIdx = math.MaxInt32

// defaultOptions returns an options vector with every slot set to -1, the
// METIS sentinel for "use the solver default".
func defaultOptions() [NOptions]Idx {
	var opts [NOptions]Idx
	for i := range opts {
		opts[i] = -1
	}
	return opts
}

// assertPositive aborts on non-positive counts. Counts are part of the
// builder contract, not external data, so violations are fatal.
func assertPositive(name string, v Idx) {
	if v <= 0 {
		panic(fmt.Sprintf("metis: %s must be strictly positive (got %d)", name, v))
	}
}

// assertIdxLen aborts when a length does not fit in Idx, and returns it
// converted. Every array handed to METIS goes through this, checked or
// not, because pointer/length marshalling is unsafe without it.
func assertIdxLen(name string, n int) Idx {
	if n > maxIdx {
		panic(fmt.Sprintf("metis: %s length %d overflows Idx", name, n))
	}
	return Idx(n)
}

// assertLen aborts when an attribute or output array does not have its
// exact required length.
func assertLen(name string, got int, want Idx) {
	if assertIdxLen(name, got) != want {
		panic(fmt.Sprintf("metis: %s must have length %d (got %d)", name, want, got))
	}
}
