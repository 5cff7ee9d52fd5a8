// Command hashwav renders a hash melody to an audio file (WAV or FLAC).
//
// The output format follows the file extension: .flac writes FLAC,
// anything else writes 16-bit mono WAV at 44100 Hz.
//
// Usage:
//
//	hashwav <hash> <output_file> [note_seconds] [volume]
package main
