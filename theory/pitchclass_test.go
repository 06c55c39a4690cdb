package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustSet(t *testing.T, classes []int, n int) PitchClassSet {
	t.Helper()
	s, err := NewPitchClassSet(classes, n)
	assert.NoError(t, err)
	return s
}

func TestNewPitchClassSet(t *testing.T) {
	s := mustSet(t, []int{7, 0, 4}, 12)
	assert.Equal(t, []int{0, 4, 7}, s.Residues())
	assert.Equal(t, 12, s.Modulus())
	assert.Equal(t, 3, s.Len())

	// duplicates and out-of-range values canonicalize
	s = mustSet(t, []int{12, 0, -8, 16}, 12)
	assert.Equal(t, []int{0, 4}, s.Residues())

	_, err := NewPitchClassSet([]int{0}, 0)
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestPitchClassSetContains(t *testing.T) {
	s := mustSet(t, []int{0, 4, 7}, 12)
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(16))
	assert.True(t, s.Contains(-5))
	assert.False(t, s.Contains(1))
}

func TestPitchClassSetTranspose(t *testing.T) {
	s := mustSet(t, []int{0, 4, 7}, 12)
	assert.Equal(t, []int{0, 5, 9}, s.Transpose(5).Residues())
	assert.Equal(t, s.Residues(), s.Transpose(12).Residues())
	assert.Equal(t, s.Len(), s.Transpose(3).Len())
}

func TestPitchClassSetInvert(t *testing.T) {
	s := mustSet(t, []int{0, 4, 7}, 12)
	inv, err := s.Invert(MustModulus(0, 12))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 5, 8}, inv.Residues())

	_, err = s.Invert(MustModulus(0, 7))
	assert.ErrorIs(t, err, ErrModulusMismatch)

	// inversion about the same axis is an involution
	back, err := inv.Invert(MustModulus(0, 12))
	assert.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestPitchClassSetNormalForm(t *testing.T) {
	s := mustSet(t, []int{0, 4, 7}, 12)
	assert.Equal(t, []Modulus{
		MustModulus(0, 12), MustModulus(4, 12), MustModulus(7, 12),
	}, s.NormalForm())

	// first-inversion spacing normalizes back to root position
	s = mustSet(t, []int{4, 7, 0}, 12)
	assert.Equal(t, 0, s.NormalForm()[0].Residue())

	// the major scale packs most tightly starting from degree 7 (0,1,3...)
	s = mustSet(t, []int{0, 2, 4, 5, 7, 9, 11}, 12)
	assert.Equal(t, 11, s.NormalForm()[0].Residue())

	assert.Nil(t, mustSet(t, nil, 12).NormalForm())

	single := mustSet(t, []int{5}, 12)
	assert.Equal(t, []Modulus{MustModulus(5, 12)}, single.NormalForm())
}

func TestEquivalentUnderTransposition(t *testing.T) {
	s := mustSet(t, []int{0, 4, 7}, 12)
	for k := -13; k <= 13; k++ {
		assert.True(t, s.EquivalentUnderTransposition(s.Transpose(k)), "k=%d", k)
	}

	minor := mustSet(t, []int{0, 3, 7}, 12)
	assert.False(t, s.EquivalentUnderTransposition(minor))

	// same residues over a different modulus are not equivalent
	other := mustSet(t, []int{0, 4, 7}, 13)
	assert.False(t, s.EquivalentUnderTransposition(other))

	// empty sets are equivalent only to empty sets of the same modulus
	assert.True(t, mustSet(t, nil, 12).EquivalentUnderTransposition(mustSet(t, nil, 12)))
	assert.False(t, mustSet(t, nil, 12).EquivalentUnderTransposition(mustSet(t, nil, 7)))
	assert.False(t, mustSet(t, nil, 12).EquivalentUnderTransposition(single(t)))

	// singleton sets are always equivalent under transposition
	assert.True(t, single(t).EquivalentUnderTransposition(mustSet(t, []int{9}, 12)))
}

func single(t *testing.T) PitchClassSet {
	return mustSet(t, []int{5}, 12)
}

func TestPitchClassSetShape(t *testing.T) {
	s := mustSet(t, []int{0, 3, 7}, 9)
	shape, err := s.Shape()
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2}, shape.Steps())
	assert.Equal(t, 9, shape.Span())

	_, err = mustSet(t, nil, 12).Shape()
	assert.ErrorIs(t, err, ErrEmptyCycle)
}

func TestPitchClassSetPrime(t *testing.T) {
	// alternating 2-1 pattern reduces to {0,2} mod 3
	s := mustSet(t, []int{0, 2, 3, 5, 6, 8, 9, 11}, 12)
	prime := s.Prime()
	assert.Equal(t, []int{0, 2}, prime.Residues())
	assert.Equal(t, 3, prime.Modulus())
	assert.False(t, s.IsPrime())
	assert.True(t, prime.IsPrime())

	// whole-tone collapses to a single class mod 2
	wt := mustSet(t, []int{0, 2, 4, 6, 8, 10}, 12)
	assert.Equal(t, []int{0}, wt.Prime().Residues())
	assert.Equal(t, 2, wt.Prime().Modulus())

	// an aperiodic set is its own prime
	maj := mustSet(t, []int{0, 4, 7}, 12)
	assert.Equal(t, maj, maj.Prime())
	assert.True(t, maj.IsPrime())
}

func TestClassifyPitches(t *testing.T) {
	s, err := ClassifyPitches([]int{-3, 5, 8, 25}, 12)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 5, 8, 9}, s.Residues())
}

func TestPitchClassSetRotateRetrograde(t *testing.T) {
	// a set carries no cyclic order; both are the identity
	s := mustSet(t, []int{0, 4, 7}, 12)
	assert.Equal(t, s, s.Rotate(3))
	assert.Equal(t, s, s.Retrograde())
}

func TestPitchClassSetString(t *testing.T) {
	assert.Equal(t, "{0, 4, 7} mod 12", mustSet(t, []int{0, 4, 7}, 12).String())
}
