package theory

import (
	"fmt"
	"strings"
)

// CycleModulus is a finite ordered sequence of residues over a single
// modulus, read cyclically. It represents interval patterns (a scale's
// step cycle, a set's gap cycle) as well as pitch-class cycles.
type CycleModulus struct {
	steps   []int // canonical residues
	modulus int
}

// NewCycleModulus canonicalizes each step modulo n. It returns
// ErrInvalidModulus if n is not positive and ErrEmptyCycle if steps is
// empty.
func NewCycleModulus(steps []int, n int) (CycleModulus, error) {
	if n <= 0 {
		return CycleModulus{}, fmt.Errorf("%w: %d", ErrInvalidModulus, n)
	}
	if len(steps) == 0 {
		return CycleModulus{}, ErrEmptyCycle
	}
	canon := make([]int, len(steps))
	for i, s := range steps {
		canon[i] = posMod(s, n)
	}
	return CycleModulus{steps: canon, modulus: n}, nil
}

// Modulus returns the cycle's ambient cycle size.
func (c CycleModulus) Modulus() int { return c.modulus }

// Len returns the number of elements in one period.
func (c CycleModulus) Len() int { return len(c.steps) }

// Steps returns the canonical residues in order.
func (c CycleModulus) Steps() []int {
	out := make([]int, len(c.steps))
	copy(out, c.steps)
	return out
}

// Step returns the i-th element, indexing cyclically over all integers.
func (c CycleModulus) Step(i int) Modulus {
	return Modulus{r: c.steps[posMod(i, len(c.steps))], n: c.modulus}
}

// Span returns the sum of the canonical steps: the total distance
// traveled in one period. A cycle derived from a pitch-class set's
// shape spans exactly its modulus.
func (c CycleModulus) Span() int {
	sum := 0
	for _, s := range c.steps {
		sum += s
	}
	return sum
}

// Rotate cyclically left-shifts the sequence by steps mod length. The
// multiset of elements is unchanged, only their order.
func (c CycleModulus) Rotate(steps int) CycleModulus {
	l := len(c.steps)
	k := posMod(steps, l)
	out := make([]int, l)
	copy(out, c.steps[k:])
	copy(out[l-k:], c.steps[:k])
	return CycleModulus{steps: out, modulus: c.modulus}
}

// Retrograde reverses the sequence.
func (c CycleModulus) Retrograde() CycleModulus {
	l := len(c.steps)
	out := make([]int, l)
	for i, s := range c.steps {
		out[l-1-i] = s
	}
	return CycleModulus{steps: out, modulus: c.modulus}
}

// Transpose adds k mod n to every element.
func (c CycleModulus) Transpose(k int) CycleModulus {
	out := make([]int, len(c.steps))
	for i, s := range c.steps {
		out[i] = posMod(s+k, c.modulus)
	}
	return CycleModulus{steps: out, modulus: c.modulus}
}

// Invert maps each element r to (2*axis - r) mod n. It returns
// ErrModulusMismatch if the axis is over a different modulus.
func (c CycleModulus) Invert(axis Modulus) (CycleModulus, error) {
	if axis.n != c.modulus {
		return CycleModulus{}, fmt.Errorf("%w: %d vs %d", ErrModulusMismatch, axis.n, c.modulus)
	}
	out := make([]int, len(c.steps))
	for i, s := range c.steps {
		out[i] = posMod(2*axis.r-s, c.modulus)
	}
	return CycleModulus{steps: out, modulus: c.modulus}, nil
}

// Repeat concatenates the sequence with itself n times. It returns
// ErrEmptyCycle if n is not positive.
func (c CycleModulus) Repeat(n int) (CycleModulus, error) {
	if n < 1 {
		return CycleModulus{}, ErrEmptyCycle
	}
	out := make([]int, 0, len(c.steps)*n)
	for i := 0; i < n; i++ {
		out = append(out, c.steps...)
	}
	return CycleModulus{steps: out, modulus: c.modulus}, nil
}

// Stretch repeats each element n times in place. It returns
// ErrEmptyCycle if n is not positive.
func (c CycleModulus) Stretch(n int) (CycleModulus, error) {
	if n < 1 {
		return CycleModulus{}, ErrEmptyCycle
	}
	out := make([]int, 0, len(c.steps)*n)
	for _, s := range c.steps {
		for i := 0; i < n; i++ {
			out = append(out, s)
		}
	}
	return CycleModulus{steps: out, modulus: c.modulus}, nil
}

// Prime returns the shortest aperiodic subsequence whose repetition
// reproduces the cycle, over the same ambient modulus.
func (c CycleModulus) Prime() CycleModulus {
	p := findAperiodic(c.steps)
	out := make([]int, len(p))
	copy(out, p)
	return CycleModulus{steps: out, modulus: c.modulus}
}

// IsPrime reports whether the cycle has no internal repetition.
func (c CycleModulus) IsPrime() bool {
	return len(findAperiodic(c.steps)) == len(c.steps)
}

// StampSet treats the cycle as an interval pattern and accumulates it
// from the given starting residue, collecting the visited pitch
// classes into a set.
func (c CycleModulus) StampSet(start int) (PitchClassSet, error) {
	classes := make([]int, len(c.steps))
	acc := posMod(start, c.modulus)
	for i := range c.steps {
		classes[i] = acc
		acc = posMod(acc+c.steps[i], c.modulus)
	}
	return NewPitchClassSet(classes, c.modulus)
}

// Cycle returns a lazy melodic cycle backed by this sequence. Its
// period is the length of the cycle's prime reduction.
func (c CycleModulus) Cycle() *MelodicCycle {
	period := len(findAperiodic(c.steps))
	return &MelodicCycle{
		gen: func(i int) Modulus {
			return Modulus{r: c.steps[posMod(i, len(c.steps))], n: c.modulus}
		},
		period: period,
	}
}

// String returns a "[a b c] mod n" representation.
func (c CycleModulus) String() string {
	elems := make([]string, len(c.steps))
	for i, s := range c.steps {
		elems[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("[%s] mod %d", strings.Join(elems, " "), c.modulus)
}

// MelodicCycle is a lazy, restartable sequence of modular offsets whose
// period may not close. It is backed by a pure indexed generator, so it
// is never materialized; divergent cycles can be consumed indefinitely.
// The cursor is single-owner state: a MelodicCycle must not be shared
// between goroutines without external synchronization.
type MelodicCycle struct {
	gen    func(i int) Modulus
	period int // 0 when divergent
	cursor int
}

// NewMelodicCycle returns a divergent melodic cycle over the given
// generator. gen must be pure: Restart replays the sequence by
// re-evaluating it from index zero.
func NewMelodicCycle(gen func(i int) Modulus) *MelodicCycle {
	return &MelodicCycle{gen: gen}
}

// Next returns the offset at the cursor and advances it. It never
// blocks.
func (mc *MelodicCycle) Next() Modulus {
	v := mc.gen(mc.cursor)
	mc.cursor++
	return v
}

// Restart resets the cursor to the origin. Always legal.
func (mc *MelodicCycle) Restart() { mc.cursor = 0 }

// Period returns the cycle's closing period, or false if the cycle is
// divergent.
func (mc *MelodicCycle) Period() (int, bool) {
	return mc.period, mc.period > 0
}

// Take returns the next n offsets, advancing the cursor past them.
func (mc *MelodicCycle) Take(n int) []Modulus {
	out := make([]Modulus, n)
	for i := range out {
		out[i] = mc.Next()
	}
	return out
}
