package artifact

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// ErrSize is returned when an artifact's length does not describe a whole
// number of words or does not match the expected shape.
var ErrSize = errors.New("artifact size")

// Encode serialises words as little-endian uint32 values.
func Encode(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}

// Decode parses little-endian uint32 words. The input length must be a
// multiple of four.
func Decode(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 4", ErrSize, len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return words, nil
}

// WriteWords atomically writes words to path.
func WriteWords(path string, words []uint32) error {
	if err := WriteFileAtomic(path, Encode(words), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadWords reads a word file written by WriteWords.
func ReadWords(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	words, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}
