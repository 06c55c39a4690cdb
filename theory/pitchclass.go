package theory

import (
	"fmt"
	"sort"
	"strings"
)

// PitchClassSet is an unordered set of residues over a single modulus.
// The zero value is an empty set over an invalid modulus; construct
// with NewPitchClassSet.
type PitchClassSet struct {
	classes []int // unique canonical residues, ascending
	modulus int
}

// NewPitchClassSet canonicalizes the given pitch classes modulo n,
// removing duplicates. An empty set is valid. It returns
// ErrInvalidModulus if n is not positive.
func NewPitchClassSet(classes []int, n int) (PitchClassSet, error) {
	if n <= 0 {
		return PitchClassSet{}, fmt.Errorf("%w: %d", ErrInvalidModulus, n)
	}
	seen := make(map[int]bool, len(classes))
	reduced := make([]int, 0, len(classes))
	for _, c := range classes {
		r := posMod(c, n)
		if !seen[r] {
			seen[r] = true
			reduced = append(reduced, r)
		}
	}
	sort.Ints(reduced)
	return PitchClassSet{classes: reduced, modulus: n}, nil
}

// ClassifyPitches folds a collection of absolute pitches into a
// pitch-class set under the given modulus.
func ClassifyPitches(pitches []int, n int) (PitchClassSet, error) {
	return NewPitchClassSet(pitches, n)
}

// Modulus returns the set's cycle size.
func (s PitchClassSet) Modulus() int { return s.modulus }

// Len returns the set's cardinality.
func (s PitchClassSet) Len() int { return len(s.classes) }

// IsEmpty reports whether the set has no elements.
func (s PitchClassSet) IsEmpty() bool { return len(s.classes) == 0 }

// Residues returns the set's elements in ascending order.
func (s PitchClassSet) Residues() []int {
	out := make([]int, len(s.classes))
	copy(out, s.classes)
	return out
}

// Classes returns the set's elements as Modulus values in ascending order.
func (s PitchClassSet) Classes() []Modulus {
	out := make([]Modulus, len(s.classes))
	for i, c := range s.classes {
		out[i] = Modulus{r: c, n: s.modulus}
	}
	return out
}

// Contains reports whether the residue of pitch is in the set.
func (s PitchClassSet) Contains(pitch int) bool {
	r := posMod(pitch, s.modulus)
	i := sort.SearchInts(s.classes, r)
	return i < len(s.classes) && s.classes[i] == r
}

// Transpose adds k mod n to every element. Cardinality is preserved.
func (s PitchClassSet) Transpose(k int) PitchClassSet {
	classes := make([]int, len(s.classes))
	for i, c := range s.classes {
		classes[i] = posMod(c+k, s.modulus)
	}
	sort.Ints(classes)
	return PitchClassSet{classes: classes, modulus: s.modulus}
}

// Invert maps each element r to (2*axis - r) mod n. It returns
// ErrModulusMismatch if the axis is over a different modulus.
func (s PitchClassSet) Invert(axis Modulus) (PitchClassSet, error) {
	if axis.n != s.modulus {
		return PitchClassSet{}, fmt.Errorf("%w: %d vs %d", ErrModulusMismatch, axis.n, s.modulus)
	}
	classes := make([]int, len(s.classes))
	for i, c := range s.classes {
		classes[i] = posMod(2*axis.r-c, s.modulus)
	}
	sort.Ints(classes)
	return PitchClassSet{classes: classes, modulus: s.modulus}, nil
}

// Rotate is the identity on a pitch-class set: rotation permutes a
// cyclic ordering, and a set carries none. Present so sets satisfy the
// same capability contract as ordered cyclic structures.
func (s PitchClassSet) Rotate(int) PitchClassSet { return s }

// Retrograde is the identity on a pitch-class set, for the same reason
// as Rotate.
func (s PitchClassSet) Retrograde() PitchClassSet { return s }

// NormalForm returns the canonical rotation of the set's elements: the
// rotation of the ascending cyclic order that minimizes the span
// between first and last element, breaking ties by the
// lexicographically smallest left-to-right gap sequence, then by the
// smallest starting residue. The empty set's normal form is nil.
func (s PitchClassSet) NormalForm() []Modulus {
	start := s.normalStart()
	if start < 0 {
		return nil
	}
	l := len(s.classes)
	out := make([]Modulus, l)
	for i := 0; i < l; i++ {
		out[i] = Modulus{r: s.classes[(start+i)%l], n: s.modulus}
	}
	return out
}

// normalStart returns the rotation index of the normal form, or -1 for
// the empty set.
func (s PitchClassSet) normalStart() int {
	l := len(s.classes)
	if l == 0 {
		return -1
	}
	best := 0
	bestSpan := s.rotationSpan(0)
	for i := 1; i < l; i++ {
		span := s.rotationSpan(i)
		if span < bestSpan {
			best, bestSpan = i, span
			continue
		}
		if span == bestSpan && s.gapsLess(i, best) {
			best = i
		}
	}
	return best
}

// rotationSpan returns the wrapped distance from the rotation's first
// element to its last.
func (s PitchClassSet) rotationSpan(i int) int {
	l := len(s.classes)
	return posMod(s.classes[(i+l-1)%l]-s.classes[i], s.modulus)
}

// gapsLess reports whether rotation a's gap sequence sorts strictly
// before rotation b's, falling back to the starting residue.
func (s PitchClassSet) gapsLess(a, b int) bool {
	l := len(s.classes)
	for j := 0; j < l-1; j++ {
		ga := posMod(s.classes[(a+j+1)%l]-s.classes[(a+j)%l], s.modulus)
		gb := posMod(s.classes[(b+j+1)%l]-s.classes[(b+j)%l], s.modulus)
		if ga != gb {
			return ga < gb
		}
	}
	return s.classes[a] < s.classes[b]
}

// gapCycle returns the full cycle of adjacent gaps of the normal form,
// including the closing gap back to the first element. The gap cycle
// determines the set up to transposition.
func (s PitchClassSet) gapCycle() []int {
	start := s.normalStart()
	if start < 0 {
		return nil
	}
	l := len(s.classes)
	gaps := make([]int, l)
	for j := 0; j < l; j++ {
		gaps[j] = posMod(s.classes[(start+j+1)%l]-s.classes[(start+j)%l], s.modulus)
	}
	if l == 1 {
		gaps[0] = 0 // a singleton wraps onto itself
	}
	return gaps
}

// EquivalentUnderTransposition reports whether some transposition of o
// has the same normal form as s. Sets over different moduli are never
// equivalent; empty sets are equivalent only to empty sets of the same
// modulus.
func (s PitchClassSet) EquivalentUnderTransposition(o PitchClassSet) bool {
	if s.modulus != o.modulus || len(s.classes) != len(o.classes) {
		return false
	}
	if len(s.classes) == 0 {
		return true
	}
	sg, og := s.gapCycle(), o.gapCycle()
	for i := range sg {
		if sg[i] != og[i] {
			return false
		}
	}
	return true
}

// Shape returns the cyclic interval pattern between adjacent elements
// in ascending order, wrapping from the last element back to the
// first. It returns ErrEmptyCycle for the empty set.
func (s PitchClassSet) Shape() (CycleModulus, error) {
	if len(s.classes) == 0 {
		return CycleModulus{}, ErrEmptyCycle
	}
	l := len(s.classes)
	steps := make([]int, l)
	for i := 0; i < l; i++ {
		steps[i] = posMod(s.classes[(i+1)%l]-s.classes[i], s.modulus)
	}
	return NewCycleModulus(steps, s.modulus)
}

// Prime returns the aperiodic reduction of the set: if the set's
// ascending gap cycle is a repetition of a shorter block, the result is
// that block stamped over the proportionally smaller modulus. A set
// with no internal repetition is its own prime, as are empty and
// singleton sets.
func (s PitchClassSet) Prime() PitchClassSet {
	if len(s.classes) <= 1 {
		return s
	}
	gaps := s.ascendingGaps()
	p := findAperiodic(gaps)
	if len(p) == len(gaps) {
		return s
	}
	k := len(gaps) / len(p)
	n := s.modulus / k
	classes := make([]int, len(p))
	acc := posMod(s.classes[0], n)
	for i := range p {
		classes[i] = acc
		acc = posMod(acc+p[i], n)
	}
	sort.Ints(classes)
	return PitchClassSet{classes: classes, modulus: n}
}

// IsPrime reports whether the set's gap cycle has no internal
// repetition.
func (s PitchClassSet) IsPrime() bool {
	if len(s.classes) <= 1 {
		return true
	}
	gaps := s.ascendingGaps()
	return len(findAperiodic(gaps)) == len(gaps)
}

// ascendingGaps returns the wrapped gaps between adjacent elements in
// ascending order; they sum to the modulus.
func (s PitchClassSet) ascendingGaps() []int {
	l := len(s.classes)
	gaps := make([]int, l)
	for i := 0; i < l; i++ {
		gaps[i] = posMod(s.classes[(i+1)%l]-s.classes[i], s.modulus)
	}
	return gaps
}

// String returns a "{a, b, c} mod n" representation.
func (s PitchClassSet) String() string {
	elems := make([]string, len(s.classes))
	for i, c := range s.classes {
		elems[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("{%s} mod %d", strings.Join(elems, ", "), s.modulus)
}
