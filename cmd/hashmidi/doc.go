// Command hashmidi writes a hash melody as a Standard MIDI File.
//
// Usage:
//
//	hashmidi <hash> <output.mid> [note_seconds] [volume]
//
// The file has one track at 120 BPM; volume maps to note velocity.
package main
