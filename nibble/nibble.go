package nibble

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/neurlang/hashwave/internal/debug"
)

// HexPrefix marks a hexadecimal hash. Anything else is read as base58.
const HexPrefix = "0x"

var (
	ErrInvalidFormat = errors.New("invalid hash format")

	errEmpty = errors.New("empty base58 input")
)

// FormatError reports a hash that does not decode under its format.
type FormatError struct {
	Hash string
	// Err is the decoder's own complaint. It is not part of Error().
	Err error
}

func (e *FormatError) Error() string {
	return ErrInvalidFormat.Error() + ": " + e.Hash
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

// Decode returns the raw bytes of a hex or base58 hash.
func Decode(hash string) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if strings.HasPrefix(hash, HexPrefix) {
		debug.Log("nibble", "hash %s is hexadecimal", hash)
		b, err = hex.DecodeString(hash[len(HexPrefix):])
	} else {
		debug.Log("nibble", "hash %s is base58", hash)
		if hash == "" {
			err = errEmpty
		} else {
			b, err = base58.Decode(hash)
		}
	}
	if err != nil {
		debug.Log("nibble", "decode %s: %v", hash, err)
		return nil, &FormatError{Hash: hash, Err: err}
	}
	debug.Log("nibble", "decoded %d bytes", len(b))
	return b, nil
}

// ProcessHash decodes hash and splits every byte into two nibbles.
func ProcessHash(hash string) ([]uint8, error) {
	b, err := Decode(hash)
	if err != nil {
		return nil, err
	}
	return Split(b), nil
}

// Split returns the nibbles of b, high nibble first.
func Split(b []byte) []uint8 {
	out := make([]uint8, 0, 2*len(b))
	for _, c := range b {
		out = append(out, c>>4, c&0x0F)
	}
	return out
}

// Join packs pairs of nibbles back into bytes. A trailing odd nibble is
// dropped.
func Join(nibbles []uint8) []byte {
	out := make([]byte, 0, len(nibbles)/2)
	for i := 0; i+1 < len(nibbles); i += 2 {
		out = append(out, nibbles[i]<<4|nibbles[i+1]&0x0F)
	}
	return out
}
