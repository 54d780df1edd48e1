package utils

import (
	"encoding/binary"
)

func BytesToWords(bytes *[128]uint8, words *[16]uint64) {
	words[0] = binary.LittleEndian.Uint64(bytes[0*8:])
	words[1] = binary.LittleEndian.Uint64(bytes[1*8:])
	words[2] = binary.LittleEndian.Uint64(bytes[2*8:])
	words[3] = binary.LittleEndian.Uint64(bytes[3*8:])
	words[4] = binary.LittleEndian.Uint64(bytes[4*8:])
	words[5] = binary.LittleEndian.Uint64(bytes[5*8:])
	words[6] = binary.LittleEndian.Uint64(bytes[6*8:])
	words[7] = binary.LittleEndian.Uint64(bytes[7*8:])
	words[8] = binary.LittleEndian.Uint64(bytes[8*8:])
	words[9] = binary.LittleEndian.Uint64(bytes[9*8:])
	words[10] = binary.LittleEndian.Uint64(bytes[10*8:])
	words[11] = binary.LittleEndian.Uint64(bytes[11*8:])
	words[12] = binary.LittleEndian.Uint64(bytes[12*8:])
	words[13] = binary.LittleEndian.Uint64(bytes[13*8:])
	words[14] = binary.LittleEndian.Uint64(bytes[14*8:])
	words[15] = binary.LittleEndian.Uint64(bytes[15*8:])
}

func ParamsToWords(bytes *[64]uint8, words *[8]uint64) {
	words[0] = binary.LittleEndian.Uint64(bytes[0*8:])
	words[1] = binary.LittleEndian.Uint64(bytes[1*8:])
	words[2] = binary.LittleEndian.Uint64(bytes[2*8:])
	words[3] = binary.LittleEndian.Uint64(bytes[3*8:])
	words[4] = binary.LittleEndian.Uint64(bytes[4*8:])
	words[5] = binary.LittleEndian.Uint64(bytes[5*8:])
	words[6] = binary.LittleEndian.Uint64(bytes[6*8:])
	words[7] = binary.LittleEndian.Uint64(bytes[7*8:])
}

// WordsToBytes writes the little-endian bytes of words into out, stopping
// when out is full.
func WordsToBytes(words *[8]uint64, out []byte) {
	var tmp [64]byte
	for i, w := range words {
		binary.LittleEndian.PutUint64(tmp[i*8:], w)
	}
	copy(out, tmp[:])
}

// WordFromBytes reads up to 8 bytes as a little-endian word. Missing high
// bytes read as zero.
func WordFromBytes(b []byte) uint64 {
	if len(b) >= 8 {
		return binary.LittleEndian.Uint64(b)
	}
	var w uint64
	for i := len(b) - 1; i >= 0; i-- {
		w = w<<8 | uint64(b[i])
	}
	return w
}

// WordFromString is WordFromBytes for strings.
func WordFromString(s string) uint64 {
	if len(s) > 8 {
		s = s[:8]
	}
	var w uint64
	for i := len(s) - 1; i >= 0; i-- {
		w = w<<8 | uint64(s[i])
	}
	return w
}
