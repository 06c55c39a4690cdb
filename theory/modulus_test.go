package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModulus(t *testing.T) {
	m, err := NewModulus(3, 12)
	assert.NoError(t, err)
	assert.Equal(t, 3, m.Residue())
	assert.Equal(t, 12, m.Size())

	m, err = NewModulus(-5, 12)
	assert.NoError(t, err)
	assert.Equal(t, 7, m.Residue())

	m, err = NewModulus(25, 12)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.Residue())

	// make(v, n) == make(v + n, n)
	for v := -30; v <= 30; v++ {
		a := MustModulus(v, 7)
		b := MustModulus(v+7, 7)
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a.Residue(), 0)
		assert.Less(t, a.Residue(), 7)
	}
}

func TestNewModulusInvalid(t *testing.T) {
	_, err := NewModulus(3, 0)
	assert.ErrorIs(t, err, ErrInvalidModulus)
	_, err = NewModulus(3, -4)
	assert.ErrorIs(t, err, ErrInvalidModulus)
	assert.Panics(t, func() { MustModulus(3, 0) })
}

func TestModulusAdd(t *testing.T) {
	sum, err := MustModulus(7, 12).Add(MustModulus(8, 12))
	assert.NoError(t, err)
	assert.Equal(t, MustModulus(3, 12), sum)

	// adding the identity is a no-op
	a := MustModulus(5, 12)
	sum, err = a.Add(MustModulus(0, 12))
	assert.NoError(t, err)
	assert.Equal(t, a, sum)
}

func TestModulusAddMismatch(t *testing.T) {
	_, err := MustModulus(1, 12).Add(MustModulus(1, 7))
	assert.ErrorIs(t, err, ErrModulusMismatch)
}

func TestModulusNegate(t *testing.T) {
	assert.Equal(t, MustModulus(5, 12), MustModulus(7, 12).Negate())
	assert.Equal(t, MustModulus(0, 12), MustModulus(0, 12).Negate())

	// negation is an involution, and a + (-a) is the identity
	for v := 0; v < 12; v++ {
		a := MustModulus(v, 12)
		assert.Equal(t, a, a.Negate().Negate())
		sum, err := a.Add(a.Negate())
		assert.NoError(t, err)
		assert.Equal(t, MustModulus(0, 12), sum)
	}
}

func TestModulusDistance(t *testing.T) {
	d, err := MustModulus(1, 12).Distance(MustModulus(11, 12))
	assert.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = MustModulus(0, 12).Distance(MustModulus(6, 12))
	assert.NoError(t, err)
	assert.Equal(t, 6, d)

	d, err = MustModulus(3, 12).Distance(MustModulus(3, 12))
	assert.NoError(t, err)
	assert.Equal(t, 0, d)

	_, err = MustModulus(1, 12).Distance(MustModulus(1, 7))
	assert.ErrorIs(t, err, ErrModulusMismatch)
}

func TestModulusAddInt(t *testing.T) {
	assert.Equal(t, MustModulus(2, 12), MustModulus(7, 12).AddInt(7))
	assert.Equal(t, MustModulus(11, 12), MustModulus(1, 12).AddInt(-2))
}

func TestModulusString(t *testing.T) {
	assert.Equal(t, "7 mod 12", MustModulus(7, 12).String())
}
