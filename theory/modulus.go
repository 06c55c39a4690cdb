// Package theory implements a symbolic algebra for music-theoretical
// objects over arbitrary moduli: residues in Z/nZ, pitch-class sets,
// interval cycles, chords, scales, and the bidirectional map between
// absolute pitch and scale-degree space. All types are immutable value
// types; operators return new values and never mutate their receivers.
package theory

import "fmt"

// Modulus is a residue in the ring Z/nZ. The zero value is not valid;
// use NewModulus or MustModulus.
type Modulus struct {
	r int // canonical residue, 0 <= r < n
	n int // cycle size, n >= 1
}

// NewModulus canonicalizes value into [0, n). It returns
// ErrInvalidModulus if n is not positive.
func NewModulus(value, n int) (Modulus, error) {
	if n <= 0 {
		return Modulus{}, fmt.Errorf("%w: %d", ErrInvalidModulus, n)
	}
	return Modulus{r: posMod(value, n), n: n}, nil
}

// MustModulus is like NewModulus but panics on a non-positive cycle
// size. Intended for constants and tests.
func MustModulus(value, n int) Modulus {
	m, err := NewModulus(value, n)
	if err != nil {
		panic(err)
	}
	return m
}

// Residue returns the canonical residue in [0, n).
func (m Modulus) Residue() int { return m.r }

// Size returns the cycle size n.
func (m Modulus) Size() int { return m.n }

// Add returns the sum of two residues. It returns ErrModulusMismatch
// if the operands have different cycle sizes.
func (m Modulus) Add(o Modulus) (Modulus, error) {
	if m.n != o.n {
		return Modulus{}, fmt.Errorf("%w: %d vs %d", ErrModulusMismatch, m.n, o.n)
	}
	return Modulus{r: posMod(m.r+o.r, m.n), n: m.n}, nil
}

// AddInt returns the residue shifted by an arbitrary integer.
func (m Modulus) AddInt(k int) Modulus {
	return Modulus{r: posMod(m.r+k, m.n), n: m.n}
}

// Negate returns the additive inverse (n - r) mod n.
func (m Modulus) Negate() Modulus {
	return Modulus{r: posMod(-m.r, m.n), n: m.n}
}

// Distance returns the minimum number of steps between two residues,
// clockwise or counter-clockwise around the cycle. It returns
// ErrModulusMismatch if the operands have different cycle sizes.
func (m Modulus) Distance(o Modulus) (int, error) {
	if m.n != o.n {
		return 0, fmt.Errorf("%w: %d vs %d", ErrModulusMismatch, m.n, o.n)
	}
	d := posMod(m.r-o.r, m.n)
	if m.n-d < d {
		d = m.n - d
	}
	return d, nil
}

// String returns a parseable "r mod n" representation.
func (m Modulus) String() string {
	return fmt.Sprintf("%d mod %d", m.r, m.n)
}

// modulo where result is always in the range [0, y)
func posMod(x, y int) int {
	x %= y
	if x < 0 {
		x += y
	}
	return x
}

// floor division, rounding toward negative infinity
func floorDiv(x, y int) int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}
