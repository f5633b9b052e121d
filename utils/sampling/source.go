package sampling

import (
	"encoding/binary"
)

// Source draws uniform variates from a PRNG.
type Source struct {
	prng PRNG
	buf  [8]byte
}

// NewSource returns a new Source reading from prng.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

// Uint64 returns a uniform value in [0, 2^64-1].
func (s *Source) Uint64() uint64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.BigEndian.Uint64(s.buf[:])
}
