// Package analysis reads rendered melodies back.
//
// It supports:
//   - Loading mono sample vectors from WAV and FLAC files
//   - Transcribing a melody into palette pitches, one FFT per note slot
//   - STFT magnitude spectrograms with configurable frame shift and length
//   - Compact half-float fingerprints of a spectrogram's frame peaks
//
// Transcription assumes the note length is longer than the envelope
// release, so the trailing release never fills a whole slot.
package analysis
