package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// UniformInt32 returns a uniform integer in [min, max] inclusive.
// Integer-only rejection sampling (no floats). This is unbiased assuming the uint32 stream is uniform.
func UniformInt32(r io.Reader, h *Health, min int, max int) (int32, error) {
	if min < -1000000000 || min > 1000000000 {
		return 0, errors.New("the minimum value should be between -1,000,000,000 and 1,000,000,000")
	}
	if max < -1000000000 || max > 1000000000 {
		return 0, errors.New("the maximum value should be between -1,000,000,000 and 1,000,000,000")
	}
	if min > max {
		return 0, errors.New("the minimum value should be smaller than or equal to the maximum value")
	}

	rangeSize := uint32(max - min + 1)

	// limit = floor(2^32 / rangeSize) * rangeSize
	limit := (uint64(1)<<32)/uint64(rangeSize) * uint64(rangeSize)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if h != nil {
				h.Set(false, "error fetching random bytes: "+err.Error())
			}
			return 0, fmt.Errorf("error fetching random bytes: %w", err)
		}

		x := binary.BigEndian.Uint32(buf[:])
		if uint64(x) < limit {
			return int32(x%rangeSize) + int32(min), nil
		}
		// reject and retry
	}
}

// Uniform draws indices from a byte stream. It satisfies deck.Source.
type Uniform struct {
	r      io.Reader
	health *Health
}

// NewUniform wraps r; h may be nil when nobody monitors the source.
func NewUniform(r io.Reader, h *Health) *Uniform {
	return &Uniform{r: r, health: h}
}

// Intn returns a uniform integer in [0, n).
func (u *Uniform) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range size %d", n)
	}
	if n == 1 {
		return 0, nil
	}
	v, err := UniformInt32(u.r, u.health, 0, n-1)
	return int(v), err
}
