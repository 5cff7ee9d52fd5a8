// Package nibble decodes hash strings into 4-bit values.
//
// A hash is either "0x" followed by an even number of hex digits, or
// bare base58 text. Every decoded byte yields two nibbles, high first:
//
//	ns, err := nibble.ProcessHash("0xA1")
//	// ns == []uint8{10, 1}
//
// Any decoding failure is reported as a *FormatError that echoes the
// original hash and matches ErrInvalidFormat under errors.Is. The
// underlying cause is kept in FormatError.Err for callers that want it.
package nibble
