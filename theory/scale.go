package theory

import (
	"fmt"
	"sort"
)

// Scale is a cyclic interval pattern anchored at an absolute tonic
// pitch. The pattern's length is the number of scale degrees per
// cycle; its span (the sum of its steps) is the pitch distance covered
// by one full cycle, the scale's octave-equivalent.
type Scale struct {
	cycle CycleModulus
	tonic int
}

// NewScale returns a scale over the given interval cycle and tonic. It
// returns ErrEmptyCycle if the cycle has zero degrees.
func NewScale(cycle CycleModulus, tonic int) (Scale, error) {
	if cycle.Len() == 0 {
		return Scale{}, ErrEmptyCycle
	}
	return Scale{cycle: cycle, tonic: tonic}, nil
}

// Cycle returns the scale's interval pattern.
func (s Scale) Cycle() CycleModulus { return s.cycle }

// Tonic returns the scale's absolute tonic pitch.
func (s Scale) Tonic() int { return s.tonic }

// Degrees returns the number of scale degrees per cycle.
func (s Scale) Degrees() int { return s.cycle.Len() }

// Transpose shifts the tonic by k. The interval pattern is unchanged.
func (s Scale) Transpose(k int) Scale {
	return Scale{cycle: s.cycle, tonic: s.tonic + k}
}

// Rotate is parallel mode rotation: the interval pattern is rotated by
// n degrees while the tonic stays fixed, so the n-th mode is built on
// the same tonic.
func (s Scale) Rotate(n int) Scale {
	return Scale{cycle: s.cycle.Rotate(n), tonic: s.tonic}
}

// RelativeMode is relative mode rotation: the tonic moves to the pitch
// of degree n and the pattern rotates with it, so the scale's pitch
// content is unchanged.
func (s Scale) RelativeMode(n int) Scale {
	return Scale{cycle: s.cycle.Rotate(n), tonic: NewScaleMap(s).PitchOf(n, 0)}
}

// Retrograde reverses the interval pattern, yielding the descending
// form of the scale read upward from the tonic.
func (s Scale) Retrograde() Scale {
	return Scale{cycle: s.cycle.Retrograde(), tonic: s.tonic}
}

// Invert reflects the scale about the given pitch-class axis: the
// interval pattern reverses and the tonic's pitch class is mirrored,
// keeping the tonic's octave. It returns ErrModulusMismatch if the
// axis is over a different modulus than the scale's cycle.
func (s Scale) Invert(axis Modulus) (Scale, error) {
	n := s.cycle.Modulus()
	if axis.n != n {
		return Scale{}, fmt.Errorf("%w: %d vs %d", ErrModulusMismatch, axis.n, n)
	}
	octave := floorDiv(s.tonic, n)
	tonic := octave*n + posMod(2*axis.r-s.tonic, n)
	return Scale{cycle: s.cycle.Retrograde(), tonic: tonic}, nil
}

// PitchClassSet returns the set of pitch classes the scale visits in
// one cycle, folded under the cycle's modulus.
func (s Scale) PitchClassSet() PitchClassSet {
	set, _ := s.cycle.StampSet(s.tonic)
	return set
}

// Prime returns the scale with its interval pattern reduced to its
// aperiodic core, on the same tonic.
func (s Scale) Prime() Scale {
	return Scale{cycle: s.cycle.Prime(), tonic: s.tonic}
}

// CountModes returns the number of distinct modes: the length of the
// pattern's aperiodic core.
func (s Scale) CountModes() int {
	return s.cycle.Prime().Len()
}

// CountTranspositions returns the number of distinct transpositions:
// the span of the pattern's aperiodic core.
func (s Scale) CountTranspositions() int {
	return s.cycle.Prime().Span()
}

// String returns a "[steps] mod n @ tonic" representation.
func (s Scale) String() string {
	return fmt.Sprintf("%v @ %d", s.cycle, s.tonic)
}

// ScaleMap is the bidirectional map between absolute pitch values and
// (degree, octave) coordinates of a scale. It precomputes cumulative
// offsets from the tonic for each degree. A ScaleMap is immutable;
// Rotate and Compose return new maps.
type ScaleMap struct {
	tonic int
	cum   []int // cum[d] = offset of degree d from the tonic; cum[0] = 0
	span  int   // pitch distance of one full cycle
}

// NewScaleMap builds the map for a scale. ScaleMaps are derived from
// scales, never constructed independently.
func NewScaleMap(s Scale) ScaleMap {
	steps := s.cycle.Steps()
	cum := make([]int, len(steps))
	acc := 0
	for i, step := range steps {
		cum[i] = acc
		acc += step
	}
	return ScaleMap{tonic: s.tonic, cum: cum, span: acc}
}

// Tonic returns the pitch of degree zero, octave zero.
func (m ScaleMap) Tonic() int { return m.tonic }

// Degrees returns the number of degrees per cycle.
func (m ScaleMap) Degrees() int { return len(m.cum) }

// Span returns the pitch distance covered by one full cycle.
func (m ScaleMap) Span() int { return m.span }

// PitchOf returns the absolute pitch of a (degree, octave) coordinate.
// Degrees outside [0, Degrees()) fold into the octave term by floor
// division, so the map is total over all integers.
func (m ScaleMap) PitchOf(degree, octave int) int {
	l := len(m.cum)
	r := posMod(degree, l)
	q := floorDiv(degree, l)
	return m.tonic + (octave+q)*m.span + m.cum[r]
}

// DegreeOf returns the (degree, octave) coordinate of an absolute
// pitch, the inverse of PitchOf. A pitch falling between two degree
// pitches maps to the lower degree. In a cycle containing zero steps
// several degrees share a pitch; the highest of them wins, so
// PitchOf(DegreeOf(p)) == p still holds even though the full
// (degree, octave) round trip only holds for strictly positive steps.
// It returns ErrOutOfRange only when the scale's span is zero (a
// degenerate all-zero-step cycle), in which case no pitch outside the
// tonic's cycle is reachable.
func (m ScaleMap) DegreeOf(pitch int) (degree, octave int, err error) {
	if m.span == 0 {
		return 0, 0, fmt.Errorf("%w: zero-span scale", ErrOutOfRange)
	}
	rel := pitch - m.tonic
	octave = floorDiv(rel, m.span)
	rem := rel - octave*m.span
	degree = sort.SearchInts(m.cum, rem+1) - 1
	return degree, octave, nil
}

// Rotate returns a new map whose degree 0 is the receiver's degree
// steps: the underlying cycle rotates and the tonic moves to the prior
// pitch of that degree, so absolute pitches are continuous across the
// rotation. The receiver is unchanged.
func (m ScaleMap) Rotate(steps int) ScaleMap {
	l := len(m.cum)
	k := posMod(steps, l)
	tonic := m.PitchOf(steps, 0)
	cum := make([]int, l)
	base := m.cum[k]
	for i := 0; i < l; i++ {
		j := (k + i) % l
		off := m.cum[j] - base
		if j < k {
			off += m.span
		}
		cum[i] = off
	}
	return ScaleMap{tonic: tonic, cum: cum, span: m.span}
}

// Compose chains two maps degree-wise: the result evaluates outer at
// the pitches produced by m, so degree i of the composition is
// outer's pitch for index m.PitchOf(i, 0). The composed cycle closes
// after Degrees(m)*Degrees(outer)/gcd(Span(m), Span(outer)) degrees.
func (m ScaleMap) Compose(outer ScaleMap) ScaleMap {
	l := len(m.cum) * len(outer.cum)
	if g := gcd(m.span, outer.span); g > 0 {
		l /= g
	}
	tonic := outer.PitchOf(m.tonic, 0)
	cum := make([]int, l)
	for i := 0; i < l; i++ {
		cum[i] = outer.PitchOf(m.PitchOf(i, 0), 0) - tonic
	}
	span := outer.PitchOf(m.PitchOf(l, 0), 0) - tonic
	return ScaleMap{tonic: tonic, cum: cum, span: span}
}

// greatest common divisor, by absolute value
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
