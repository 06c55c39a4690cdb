// Package smf renders scales, chords, and degree sequences to standard
// MIDI files. Pitches in non-12 moduli are rounded onto the nearest
// 12-EDO semitone.
package smf

import (
	"math"

	"gitlab.com/gomidi/midi/writer"

	"github.com/josiahhuergo/Harmonica/theory"
)

// Options controls rendering. Zero values take defaults.
type Options struct {
	BPM      float64 // default 120
	Ticks    uint32  // ticks per note, default one beat
	Velocity uint8   // default 100
	Channel  uint8   // default 0
}

const ticksPerBeat = 960

func (o Options) withDefaults() Options {
	if o.BPM == 0 {
		o.BPM = 120
	}
	if o.Ticks == 0 {
		o.Ticks = ticksPerBeat
	}
	if o.Velocity == 0 {
		o.Velocity = 100
	}
	return o
}

// midiNote maps a pitch in an n-per-cycle system onto the nearest MIDI
// note, clamped to the 0..127 range.
func midiNote(pitch, modulus int) uint8 {
	semis := math.Round(float64(pitch) * 12.0 / float64(modulus))
	return uint8(math.Max(0, math.Min(127, semis)))
}

// WriteScale renders one ascending cycle of the scale, tonic to tonic
// inclusive, one note per beat.
func WriteScale(path string, s theory.Scale, opt Options) error {
	degrees := make([]int, s.Degrees()+1)
	for i := range degrees {
		degrees[i] = i
	}
	return WriteDegrees(path, s, degrees, opt)
}

// WriteDegrees renders a degree sequence through the scale's map as a
// single melodic line. Degrees outside one cycle fold into octaves, so
// any integer sequence is playable.
func WriteDegrees(path string, s theory.Scale, degrees []int, opt Options) error {
	opt = opt.withDefaults()
	m := theory.NewScaleMap(s)
	n := s.Cycle().Modulus()
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		wr.SetChannel(opt.Channel)
		writer.TempoBPM(wr, opt.BPM)
		for _, d := range degrees {
			note := midiNote(m.PitchOf(d, 0), n)
			if err := writer.NoteOn(wr, note, opt.Velocity); err != nil {
				return err
			}
			wr.SetDelta(opt.Ticks)
			if err := writer.NoteOff(wr, note); err != nil {
				return err
			}
		}
		writer.EndOfTrack(wr)
		return nil
	})
}

// WriteChord renders the chord's voicing as a single block chord: the
// first voice sounds at the given cycle's base pitch and each later
// voice at the next pitch of its class above the voice before it.
func WriteChord(path string, c theory.Chord, octave int, opt Options) error {
	opt = opt.withDefaults()
	n := c.Set().Modulus()
	notes := voicedNotes(c, octave)
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		wr.SetChannel(opt.Channel)
		writer.TempoBPM(wr, opt.BPM)
		for _, p := range notes {
			if err := writer.NoteOn(wr, midiNote(p, n), opt.Velocity); err != nil {
				return err
			}
		}
		wr.SetDelta(opt.Ticks)
		for _, p := range notes {
			if err := writer.NoteOff(wr, midiNote(p, n)); err != nil {
				return err
			}
		}
		writer.EndOfTrack(wr)
		return nil
	})
}

// voicedNotes realizes a chord's voicing as ascending absolute pitches
// starting in the given cycle of its modulus.
func voicedNotes(c theory.Chord, octave int) []int {
	n := c.Set().Modulus()
	voicing := c.Voicing()
	notes := make([]int, len(voicing))
	prev := octave*n - 1
	for i, v := range voicing {
		p := octave*n + v.Residue()
		for p <= prev {
			p += n
		}
		notes[i] = p
		prev = p
	}
	return notes
}
