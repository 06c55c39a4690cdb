package smf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josiahhuergo/Harmonica/theory"
)

func testScale(t *testing.T, steps []int, modulus, tonic int) theory.Scale {
	t.Helper()
	cycle, err := theory.NewCycleModulus(steps, modulus)
	assert.NoError(t, err)
	s, err := theory.NewScale(cycle, tonic)
	assert.NoError(t, err)
	return s
}

func TestMidiNote(t *testing.T) {
	assert.Equal(t, uint8(60), midiNote(60, 12))
	assert.Equal(t, uint8(61), midiNote(61, 12))
	// 22edo pitches round to the nearest semitone
	assert.Equal(t, uint8(60), midiNote(110, 22))
	assert.Equal(t, uint8(62), midiNote(113, 22))
	// clamped to the MIDI range
	assert.Equal(t, uint8(127), midiNote(300, 12))
	assert.Equal(t, uint8(0), midiNote(-10, 12))
}

func TestVoicedNotes(t *testing.T) {
	set, err := theory.NewPitchClassSet([]int{0, 4, 7}, 12)
	assert.NoError(t, err)
	c, err := theory.NewChord(set, theory.MustModulus(0, 12), nil, theory.StrictRoot)
	assert.NoError(t, err)

	assert.Equal(t, []int{60, 64, 67}, voicedNotes(c, 5))

	// first inversion climbs past the wrap
	assert.Equal(t, []int{64, 67, 72}, voicedNotes(c.Rotate(1), 5))
}

func TestWriteScale(t *testing.T) {
	s := testScale(t, []int{2, 2, 1, 2, 2, 2, 1}, 12, 60)
	path := filepath.Join(t.TempDir(), "scale.mid")
	assert.NoError(t, WriteScale(path, s, Options{}))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("MThd")))
	assert.True(t, bytes.Contains(data, []byte("MTrk")))
}

func TestWriteDegrees(t *testing.T) {
	s := testScale(t, []int{3, 3, 3, 3, 3, 3, 4}, 22, 110)
	path := filepath.Join(t.TempDir(), "line.mid")
	err := WriteDegrees(path, s, []int{0, 2, 4, 7, 4, 2, 0, -3}, Options{
		BPM:      90,
		Ticks:    ticksPerBeat / 2,
		Velocity: 80,
		Channel:  3,
	})
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("MThd")))
}

func TestWriteChord(t *testing.T) {
	set, err := theory.NewPitchClassSet([]int{0, 4, 7, 10}, 12)
	assert.NoError(t, err)
	c, err := theory.NewChord(set, theory.MustModulus(0, 12), nil, theory.StrictRoot)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chord.mid")
	assert.NoError(t, WriteChord(path, c, 5, Options{}))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("MThd")))
}
