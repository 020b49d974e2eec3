package menu

import "simplequest/internal/mathutil"

// Advance returns the index reached by stepping delta from current, wrapping at
// the ends and skipping disabled entries. It returns -1 when nothing is enabled.
//
// The step is taken as given in every direction: for a grid the caller has
// already folded its row length into delta. A current of -1 starts just before
// the first entry for a forward step and just after the last for a backward one.
func Advance(current, delta int, dir Direction, list []*Element) int {
	n := len(list)
	if n == 0 {
		return -1
	}
	if delta == 0 {
		if current >= 0 && current < n && list[current].Enabled() {
			return current
		}
		delta = 1
	}
	if current < 0 || current >= n {
		if delta > 0 {
			current = -1
		} else {
			current = n
		}
	}

	idx := current
	for i := 0; i < n; i++ {
		idx = mathutil.IntMod(idx+delta, n)
		if list[idx].Enabled() {
			return idx
		}
	}

	// A stride sharing a factor with n never visits some entries; finish the
	// scan one step at a time in the same direction.
	step := mathutil.IntSign(delta)
	idx = current
	for i := 0; i < n; i++ {
		idx = mathutil.IntMod(idx+step, n)
		if list[idx].Enabled() {
			return idx
		}
	}
	return -1
}

// FirstEnabled returns the index of the first enabled entry, or -1.
func FirstEnabled(list []*Element) int {
	for i, el := range list {
		if el.Enabled() {
			return i
		}
	}
	return -1
}
