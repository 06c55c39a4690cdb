package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustChord(t *testing.T, classes []int, root, n int) Chord {
	t.Helper()
	c, err := NewChord(mustSet(t, classes, n), MustModulus(root, n), nil, StrictRoot)
	assert.NoError(t, err)
	return c
}

func residues(voicing []Modulus) []int {
	out := make([]int, len(voicing))
	for i, v := range voicing {
		out[i] = v.Residue()
	}
	return out
}

func TestNewChordDefaultVoicing(t *testing.T) {
	c := mustChord(t, []int{0, 4, 7}, 0, 12)
	assert.Equal(t, []int{0, 4, 7}, residues(c.Voicing()))
	assert.Equal(t, 0, c.Root().Residue())
	assert.Equal(t, 3, c.Len())

	// default voicing wraps cyclically from the root
	e := mustChord(t, []int{0, 4, 7}, 4, 12)
	assert.Equal(t, []int{4, 7, 0}, residues(e.Voicing()))
}

func TestNewChordValidation(t *testing.T) {
	set := mustSet(t, []int{0, 4, 7}, 12)

	_, err := NewChord(set, MustModulus(0, 7), nil, StrictRoot)
	assert.ErrorIs(t, err, ErrModulusMismatch)

	_, err = NewChord(set, MustModulus(2, 12), nil, StrictRoot)
	assert.ErrorIs(t, err, ErrRootNotInSet)

	// a free root may sit outside the set
	slash, err := NewChord(set, MustModulus(2, 12), nil, FreeRoot)
	assert.NoError(t, err)
	assert.Equal(t, 2, slash.Root().Residue())
	assert.Equal(t, []int{4, 7, 0}, residues(slash.Voicing()))
}

func TestNewChordExplicitVoicing(t *testing.T) {
	set := mustSet(t, []int{0, 4, 7}, 12)
	root := MustModulus(0, 12)

	c, err := NewChord(set, root, []Modulus{MustModulus(7, 12), MustModulus(0, 12), MustModulus(4, 12)}, StrictRoot)
	assert.NoError(t, err)
	assert.Equal(t, []int{7, 0, 4}, residues(c.Voicing()))

	// wrong modulus in a voice
	_, err = NewChord(set, root, []Modulus{MustModulus(0, 7)}, StrictRoot)
	assert.ErrorIs(t, err, ErrModulusMismatch)

	// voice outside the set
	_, err = NewChord(set, root, []Modulus{MustModulus(0, 12), MustModulus(4, 12), MustModulus(5, 12)}, StrictRoot)
	assert.ErrorIs(t, err, ErrVoicingMismatch)

	// duplicate voice
	_, err = NewChord(set, root, []Modulus{MustModulus(0, 12), MustModulus(0, 12), MustModulus(4, 12)}, StrictRoot)
	assert.ErrorIs(t, err, ErrVoicingMismatch)

	// missing voice
	_, err = NewChord(set, root, []Modulus{MustModulus(0, 12), MustModulus(4, 12)}, StrictRoot)
	assert.ErrorIs(t, err, ErrVoicingMismatch)
}

func TestChordTranspose(t *testing.T) {
	c := mustChord(t, []int{0, 4, 7}, 0, 12)
	f := c.Transpose(5)
	assert.Equal(t, []int{0, 5, 9}, f.Set().Residues())
	assert.Equal(t, 5, f.Root().Residue())
	assert.Equal(t, []int{5, 9, 0}, residues(f.Voicing()))

	// transposing by the modulus is the identity
	assert.Equal(t, c, c.Transpose(12))
}

func TestChordInvert(t *testing.T) {
	c := mustChord(t, []int{0, 4, 7}, 0, 12)
	inv, err := c.Invert(MustModulus(0, 12))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 5, 8}, inv.Set().Residues())
	assert.Equal(t, 0, inv.Root().Residue())
	assert.Equal(t, []int{0, 8, 5}, residues(inv.Voicing()))

	// involution
	back, err := inv.Invert(MustModulus(0, 12))
	assert.NoError(t, err)
	assert.Equal(t, c, back)

	_, err = c.Invert(MustModulus(0, 7))
	assert.ErrorIs(t, err, ErrModulusMismatch)
}

func TestChordRotate(t *testing.T) {
	c := mustChord(t, []int{0, 4, 7}, 0, 12)

	first := c.Rotate(1)
	assert.Equal(t, []int{4, 7, 0}, residues(first.Voicing()))
	// set and root ride along unchanged
	assert.Equal(t, c.Set(), first.Set())
	assert.Equal(t, c.Root(), first.Root())

	second := c.Rotate(2)
	assert.Equal(t, []int{7, 0, 4}, residues(second.Voicing()))

	assert.Equal(t, c, c.Rotate(3))
	assert.Equal(t, second, c.Rotate(-1))
}

func TestChordRetrograde(t *testing.T) {
	c := mustChord(t, []int{0, 4, 7}, 0, 12)
	r := c.Retrograde()
	assert.Equal(t, []int{7, 4, 0}, residues(r.Voicing()))
	assert.Equal(t, c, r.Retrograde())
}

func TestChordString(t *testing.T) {
	c := mustChord(t, []int{0, 4, 7}, 0, 12)
	assert.Equal(t, "0: <0 4 7> mod 12", c.String())
}
