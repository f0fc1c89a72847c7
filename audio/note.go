package audio

import "math"

// Goal chime notes as MIDI numbers: C5 E5 G5 C6
var goalNotes = []int{72, 76, 79, 84}

// NoteFreq returns the equal-tempered frequency in Hz of a MIDI note,
// A4 (69) = 440Hz. Out of range notes return 0.
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}
