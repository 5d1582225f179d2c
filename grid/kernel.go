package grid

// Conn4 returns the classic 4-neighbor kernel for 2-D grids: N, E, S, W.
// Complexity: O(1).
func Conn4() Kernel { return Orthogonal(2) }

// Conn8 returns the classic 8-neighbor kernel for 2-D grids, including
// diagonals.
// Complexity: O(1).
func Conn8() Kernel { return Moore(2) }

// Orthogonal builds the axis-aligned unit-step kernel for the given rank:
// one ±1 step per dimension, 2·rank offsets in total. Offsets are emitted
// in dimension order, −1 before +1, so traversals are deterministic.
// Complexity: O(rank²) to construct.
func Orthogonal(rank int) Kernel {
	k := make(Kernel, 0, 2*rank)
	for d := 0; d < rank; d++ {
		for _, step := range [2]int{-1, 1} {
			off := make([]int, rank)
			off[d] = step
			k = append(k, off)
		}
	}

	return k
}

// Moore builds the full neighborhood kernel for the given rank: every
// offset in {−1,0,+1}^rank except the zero vector, 3^rank−1 offsets in
// total, emitted in lexicographic order.
// Complexity: O(rank·3^rank) to construct.
func Moore(rank int) Kernel {
	if rank <= 0 {
		return nil
	}
	total := 1
	for d := 0; d < rank; d++ {
		total *= 3
	}
	k := make(Kernel, 0, total-1)
	for i := 0; i < total; i++ {
		off := make([]int, rank)
		rem, zero := i, true
		for d := rank - 1; d >= 0; d-- {
			off[d] = rem%3 - 1
			rem /= 3
			zero = zero && off[d] == 0
		}
		if zero {
			continue
		}
		k = append(k, off)
	}

	return k
}

// Validate reports ErrBadKernel if the kernel is empty, if any offset's
// rank differs from rank, or if any offset is the zero vector.
// Complexity: O(len(k)·rank).
func (k Kernel) Validate(rank int) error {
	if len(k) == 0 {
		return ErrBadKernel
	}
	for _, off := range k {
		if len(off) != rank {
			return ErrBadKernel
		}
		zero := true
		for _, c := range off {
			if c != 0 {
				zero = false
				break
			}
		}
		if zero {
			return ErrBadKernel
		}
	}

	return nil
}

// Symmetric reports whether every offset's negation is also present.
// Symmetric kernels let grid scans visit each unordered neighbor pair
// exactly once by only following offsets toward higher linear indices.
// Complexity: O(len(k)²·rank) — kernels are small constants in practice.
func (k Kernel) Symmetric() bool {
	for _, off := range k {
		found := false
		for _, cand := range k {
			if negated(off, cand) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// negated reports whether b == -a componentwise.
func negated(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if b[i] != -a[i] {
			return false
		}
	}

	return true
}
