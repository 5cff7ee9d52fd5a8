// Command hashcheck verifies that an audio or MIDI file encodes a hash.
//
// WAV and FLAC files are transcribed note by note with an FFT per note
// slot; MIDI files are read directly. The recovered pitches are compared
// with the melody of the hash. For audio input a half-float spectral
// fingerprint is printed as well.
//
// Usage:
//
//	hashcheck <file.wav|file.flac|file.mid> <hash> [note_seconds]
//
// note_seconds must match the value the file was rendered with
// (default 0.5). Exits 1 when the file does not match.
package main
