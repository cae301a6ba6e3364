package rng

import (
	"crypto/rand"
	"io"
)

// NewSystem returns the operating system CSPRNG with a health monitor that
// starts healthy.
func NewSystem() (io.Reader, *Health) {
	h := NewHealth()
	h.Set(true, "")
	return rand.Reader, h
}

// Open picks the hardware RNG when a device is configured, the system CSPRNG
// otherwise. The returned reader is safe for concurrent use.
func Open(sc SerialConfig) (io.Reader, *Health, error) {
	if sc.Device == "" {
		r, h := NewSystem()
		return NewLockedReader(r), h, nil
	}

	r, h, err := OpenSerial(sc)
	if err != nil {
		return nil, h, err
	}
	return NewLockedReader(r), h, nil
}
