// Package pitch maps nibbles to note names and note names to frequencies.
//
// The palette is a fixed 16-entry table spanning C3 to D5, indexed by
// nibble value. Note names use scientific pitch notation ("C3", "F#4",
// "Bb2") with A4 tuned to 440 Hz.
package pitch
