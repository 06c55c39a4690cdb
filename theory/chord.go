package theory

import (
	"fmt"
	"strings"
)

// RootPolicy controls whether a chord's root must belong to its
// pitch-class set. Strict is the usual case; Free admits slash chords
// and altered voicings whose bass is not a chord tone.
type RootPolicy int

const (
	StrictRoot RootPolicy = iota
	FreeRoot
)

// Chord is a pitch-class set with a distinguished root and a voicing
// order. The voicing, read as a set, always equals the pitch-class
// set.
type Chord struct {
	set     PitchClassSet
	root    Modulus
	voicing []Modulus
}

// NewChord validates and builds a chord. A nil voicing defaults to the
// set's cyclic ascending order starting from the root's pitch class.
// It returns ErrModulusMismatch if root or voicing disagree with the
// set's modulus, ErrRootNotInSet under StrictRoot when the root is not
// a chord tone, and ErrVoicingMismatch when the voicing's elements are
// not exactly the set's.
func NewChord(set PitchClassSet, root Modulus, voicing []Modulus, policy RootPolicy) (Chord, error) {
	n := set.Modulus()
	if root.n != n {
		return Chord{}, fmt.Errorf("%w: root %d vs set %d", ErrModulusMismatch, root.n, n)
	}
	if policy == StrictRoot && !set.Contains(root.r) {
		return Chord{}, fmt.Errorf("%w: %v", ErrRootNotInSet, root)
	}
	if voicing == nil {
		voicing = defaultVoicing(set, root)
	} else {
		seen := make(map[int]bool, len(voicing))
		for _, v := range voicing {
			if v.n != n {
				return Chord{}, fmt.Errorf("%w: voicing %d vs set %d", ErrModulusMismatch, v.n, n)
			}
			if !set.Contains(v.r) || seen[v.r] {
				return Chord{}, fmt.Errorf("%w: %v", ErrVoicingMismatch, v)
			}
			seen[v.r] = true
		}
		if len(voicing) != set.Len() {
			return Chord{}, fmt.Errorf("%w: %d voices for %d classes", ErrVoicingMismatch, len(voicing), set.Len())
		}
		voicing = append([]Modulus(nil), voicing...)
	}
	return Chord{set: set, root: root, voicing: voicing}, nil
}

// defaultVoicing orders the set's classes cyclically upward from the
// root's pitch class.
func defaultVoicing(set PitchClassSet, root Modulus) []Modulus {
	classes := set.Classes()
	start := 0
	for i, c := range classes {
		if c.r >= root.r {
			start = i
			break
		}
	}
	out := make([]Modulus, len(classes))
	for i := range classes {
		out[i] = classes[(start+i)%len(classes)]
	}
	return out
}

// Set returns the chord's pitch-class set.
func (c Chord) Set() PitchClassSet { return c.set }

// Root returns the chord's root.
func (c Chord) Root() Modulus { return c.root }

// Voicing returns the chord's voicing order.
func (c Chord) Voicing() []Modulus {
	out := make([]Modulus, len(c.voicing))
	copy(out, c.voicing)
	return out
}

// Len returns the number of chord tones.
func (c Chord) Len() int { return c.set.Len() }

// Transpose shifts every voiced pitch, the set, and the root by the
// same amount.
func (c Chord) Transpose(k int) Chord {
	voicing := make([]Modulus, len(c.voicing))
	for i, v := range c.voicing {
		voicing[i] = v.AddInt(k)
	}
	return Chord{set: c.set.Transpose(k), root: c.root.AddInt(k), voicing: voicing}
}

// Invert reflects the chord about the given axis, recomputing set,
// root, and voicing consistently. It returns ErrModulusMismatch if the
// axis is over a different modulus.
func (c Chord) Invert(axis Modulus) (Chord, error) {
	set, err := c.set.Invert(axis)
	if err != nil {
		return Chord{}, err
	}
	voicing := make([]Modulus, len(c.voicing))
	for i, v := range c.voicing {
		voicing[i] = Modulus{r: posMod(2*axis.r-v.r, v.n), n: v.n}
	}
	root := Modulus{r: posMod(2*axis.r-c.root.r, c.root.n), n: c.root.n}
	return Chord{set: set, root: root, voicing: voicing}, nil
}

// Rotate rotates the voicing order by n voices: the chord's inversion
// in the traditional sense. Set and root are unchanged.
func (c Chord) Rotate(n int) Chord {
	l := len(c.voicing)
	voicing := make([]Modulus, l)
	if l > 0 {
		k := posMod(n, l)
		for i := range c.voicing {
			voicing[i] = c.voicing[(k+i)%l]
		}
	}
	return Chord{set: c.set, root: c.root, voicing: voicing}
}

// Retrograde reverses the voicing order. Set and root are unchanged.
func (c Chord) Retrograde() Chord {
	l := len(c.voicing)
	voicing := make([]Modulus, l)
	for i, v := range c.voicing {
		voicing[l-1-i] = v
	}
	return Chord{set: c.set, root: c.root, voicing: voicing}
}

// String returns a "root: <v1 v2 ...> mod n" representation.
func (c Chord) String() string {
	voices := make([]string, len(c.voicing))
	for i, v := range c.voicing {
		voices[i] = fmt.Sprintf("%d", v.r)
	}
	return fmt.Sprintf("%d: <%s> mod %d", c.root.r, strings.Join(voices, " "), c.set.Modulus())
}
