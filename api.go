// Package blake2b implements the BLAKE2b hash function in sequential mode
// with support for salting and personalization. Digests are between 1 and 64
// bytes long.
//
// Each call hashes one complete in-memory message; there is no incremental
// Write interface. Keyed hashing and tree mode are not supported.
package blake2b

import (
	"errors"
)

var (
	ErrDigestLength   = errors.New("blake2b: digest length must be between 1 and 64 bytes")
	ErrKeyLength      = errors.New("blake2b: key length must be between 0 and 64 bytes")
	ErrKeyed          = errors.New("blake2b: keyed hashing is not supported")
	ErrSaltLength     = errors.New("blake2b: salt longer than 16 bytes")
	ErrPersonalLength = errors.New("blake2b: personalization longer than 16 bytes")
)

// Hasher computes BLAKE2b digests with a fixed configuration. The
// configuration may be changed between calls. A Hasher must not be mutated
// while another goroutine is hashing with it.
type Hasher struct {
	h hasher
}

// New returns a Hasher producing digestLen byte digests. keyLen must be zero:
// it is accepted for parity with the parameter block layout, but keyed
// hashing is rejected with ErrKeyed. salt and personal may be shorter than
// 16 bytes, in which case they are padded with zeros.
func New(digestLen, keyLen int, salt, personal []byte) (*Hasher, error) {
	p, err := newParams(digestLen, keyLen, salt, personal)
	if err != nil {
		return nil, err
	}
	return &Hasher{h: hasher{p: p}}, nil
}

// NewSized returns an unsalted, unpersonalized Hasher with the given digest
// size.
func NewSized(size int) (*Hasher, error) {
	return New(size, 0, nil, nil)
}

// SetDigestLength changes the digest length used by subsequent calls. The
// Hasher is unchanged if it returns an error.
func (h *Hasher) SetDigestLength(n int) error {
	return h.h.p.setDigestLen(n)
}

// SetSalt replaces the salt used by subsequent calls.
func (h *Hasher) SetSalt(salt []byte) error {
	return h.h.p.setSalt(salt)
}

// SetPersonalization replaces the personalization used by subsequent calls.
func (h *Hasher) SetPersonalization(personal []byte) error {
	return h.h.p.setPersonal(personal)
}

// Size returns the number of bytes Sum will return.
func (h *Hasher) Size() int {
	return int(h.h.p.digestLen)
}

// BlockSize returns the block size of the compression function.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Hash returns the full 64 byte final state for msg. The digest is its first
// Size bytes; the rest is only meaningful when Size is 64.
func (h *Hasher) Hash(msg []byte) [Size]byte {
	return h.h.sum(newByteSource(msg), uint64(len(msg)))
}

// HashString is Hash for a string message.
func (h *Hasher) HashString(msg string) [Size]byte {
	return h.h.sum(newStringSource(msg), uint64(len(msg)))
}

// HashWords is Hash for a message given as little-endian 64-bit words.
func (h *Hasher) HashWords(msg []uint64) [Size]byte {
	return h.h.sum(newWordSource(msg), 8*uint64(len(msg)))
}

// Sum returns the Size byte digest of msg.
func (h *Hasher) Sum(msg []byte) []byte {
	out := h.Hash(msg)
	return append([]byte(nil), out[:h.Size()]...)
}

// Sum512 returns the 64 byte BLAKE2b digest of data.
func Sum512(data []byte) [Size]byte {
	h := hasher{p: params{digestLen: Size}}
	return h.sum(newByteSource(data), uint64(len(data)))
}

// Sum256 returns the 32 byte BLAKE2b digest of data.
func Sum256(data []byte) (out [Size256]byte) {
	h := hasher{p: params{digestLen: Size256}}
	sum := h.sum(newByteSource(data), uint64(len(data)))
	copy(out[:], sum[:])
	return out
}
