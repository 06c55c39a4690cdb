// Package search finds pitch-class sets matching predicates, either by
// exhaustive enumeration over a modulus or by scanning a template
// catalog. It is pure: filters allocate nothing and searching returns
// fresh slices.
package search

import (
	"github.com/josiahhuergo/Harmonica/theory"
)

// A Filter reports whether a pitch-class set matches.
type Filter func(theory.PitchClassSet) bool

// Cardinality matches sets with exactly n pitch classes.
func Cardinality(n int) Filter {
	return func(s theory.PitchClassSet) bool { return s.Len() == n }
}

// Contains matches sets containing every given residue, taken modulo
// the set's modulus.
func Contains(classes ...int) Filter {
	return func(s theory.PitchClassSet) bool {
		for _, c := range classes {
			if !s.Contains(c) {
				return false
			}
		}
		return true
	}
}

// ContainsInterval matches sets with some pair of classes separated by
// the given cyclic interval.
func ContainsInterval(interval int) Filter {
	return func(s theory.PitchClassSet) bool {
		n := s.Modulus()
		if n == 0 {
			return false
		}
		iv := ((interval % n) + n) % n
		for _, r := range s.Residues() {
			if s.Contains(r + iv) {
				return true
			}
		}
		return false
	}
}

// EquivalentTo matches sets equivalent to the probe under
// transposition.
func EquivalentTo(probe theory.PitchClassSet) Filter {
	return func(s theory.PitchClassSet) bool {
		return s.EquivalentUnderTransposition(probe)
	}
}

// All combines filters conjunctively. With no filters it matches
// everything.
func All(filters ...Filter) Filter {
	return func(s theory.PitchClassSet) bool {
		for _, f := range filters {
			if !f(s) {
				return false
			}
		}
		return true
	}
}

// Any combines filters disjunctively. With no filters it matches
// nothing.
func Any(filters ...Filter) Filter {
	return func(s theory.PitchClassSet) bool {
		for _, f := range filters {
			if f(s) {
				return true
			}
		}
		return false
	}
}

// Sets enumerates every nonempty pitch-class set over the modulus and
// returns those matching all filters, in ascending bitmask order. The
// search space is 2^modulus, so this is only practical for small
// moduli. It returns theory.ErrInvalidModulus for a nonpositive
// modulus.
func Sets(modulus int, filters ...Filter) ([]theory.PitchClassSet, error) {
	if _, err := theory.NewPitchClassSet([]int{0}, modulus); err != nil {
		return nil, err
	}
	match := All(filters...)
	var out []theory.PitchClassSet
	for mask := 1; mask < 1<<uint(modulus); mask++ {
		classes := make([]int, 0, modulus)
		for r := 0; r < modulus; r++ {
			if mask&(1<<uint(r)) != 0 {
				classes = append(classes, r)
			}
		}
		s, err := theory.NewPitchClassSet(classes, modulus)
		if err != nil {
			return nil, err
		}
		if match(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// A Match pairs a catalog template's name with its pitch-class set.
type Match struct {
	Name string
	Set  theory.PitchClassSet
}

// Chords returns the catalog's chord templates matching all filters,
// in name order.
func Chords(c *theory.Catalog, filters ...Filter) []Match {
	match := All(filters...)
	var out []Match
	for _, name := range c.ChordNames() {
		set, _ := c.Chord(name)
		if match(set) {
			out = append(out, Match{Name: name, Set: set})
		}
	}
	return out
}

// Scales returns the catalog's scale templates whose pitch-class set,
// stamped from class zero, matches all filters, in name order.
func Scales(c *theory.Catalog, filters ...Filter) []Match {
	match := All(filters...)
	var out []Match
	for _, name := range c.ScaleNames() {
		cycle, _ := c.Scale(name)
		set, err := cycle.StampSet(0)
		if err != nil {
			continue
		}
		if match(set) {
			out = append(out, Match{Name: name, Set: set})
		}
	}
	return out
}
