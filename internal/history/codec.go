package history

import (
	"encoding/binary"
	"fmt"
)

// valueSize is the length of an encoded counter.
const valueSize = 8

// Encode packs count as 8 little-endian bytes.
func Encode(count uint64) []byte {
	buf := make([]byte, valueSize)
	binary.LittleEndian.PutUint64(buf, count)
	return buf
}

// Decode unpacks a counter written by Encode.
func Decode(buf []byte) (uint64, error) {
	if len(buf) != valueSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidValue, len(buf))
	}
	return binary.LittleEndian.Uint64(buf), nil
}
