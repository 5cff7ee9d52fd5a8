// Package render synthesizes melodies offline and writes them to WAV or
// FLAC. Rendering uses the same voice and schedule as live playback, so a
// file sounds like the speaker would.
package render
