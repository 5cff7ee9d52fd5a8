// Command hashplay plays a hash as a square-wave melody on the default audio device.
//
// The hash is either 0x-prefixed hexadecimal or base58. Every hex digit
// becomes one note from a 16-note palette spanning C3 to D5.
//
// Usage:
//
//	hashplay <hash> [note_seconds] [volume]
//
// note_seconds defaults to 0.5 and volume to 0.5. Interrupt stops the
// sounding note and exits.
package main
