package theory

// The transformation operators below dispatch over small capability
// contracts rather than concrete types, so callers can write
// transformations once for anything cyclic: pitch-class sets, interval
// cycles, chords, and scales all satisfy them.

// Transposable is anything that can be shifted by an integer amount.
type Transposable[T any] interface {
	Transpose(k int) T
}

// Invertible is anything that can be reflected about a pitch-class
// axis.
type Invertible[T any] interface {
	Invert(axis Modulus) (T, error)
}

// Rotatable is anything whose cyclic order can be shifted.
type Rotatable[T any] interface {
	Rotate(n int) T
}

// Retrogradable is anything whose order can be reversed.
type Retrogradable[T any] interface {
	Retrograde() T
}

// Transpose returns v shifted by k.
func Transpose[T Transposable[T]](v T, k int) T { return v.Transpose(k) }

// Invert returns v reflected about axis.
func Invert[T Invertible[T]](v T, axis Modulus) (T, error) { return v.Invert(axis) }

// Rotate returns v with its cyclic order shifted by n.
func Rotate[T Rotatable[T]](v T, n int) T { return v.Rotate(n) }

// Retrograde returns v with its order reversed.
func Retrograde[T Retrogradable[T]](v T) T { return v.Retrograde() }

var (
	_ Transposable[PitchClassSet]  = PitchClassSet{}
	_ Invertible[PitchClassSet]    = PitchClassSet{}
	_ Rotatable[PitchClassSet]     = PitchClassSet{}
	_ Retrogradable[PitchClassSet] = PitchClassSet{}

	_ Transposable[CycleModulus]  = CycleModulus{}
	_ Invertible[CycleModulus]    = CycleModulus{}
	_ Rotatable[CycleModulus]     = CycleModulus{}
	_ Retrogradable[CycleModulus] = CycleModulus{}

	_ Transposable[Chord]  = Chord{}
	_ Invertible[Chord]    = Chord{}
	_ Rotatable[Chord]     = Chord{}
	_ Retrogradable[Chord] = Chord{}

	_ Transposable[Scale]  = Scale{}
	_ Invertible[Scale]    = Scale{}
	_ Rotatable[Scale]     = Scale{}
	_ Retrogradable[Scale] = Scale{}
)
