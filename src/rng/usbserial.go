package rng

import (
	"errors"
	"io"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig names a hardware RNG attached over USB serial.
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// OpenSerial opens the port and performs an initial health check.
func OpenSerial(sc SerialConfig) (io.Reader, *Health, error) {
	if sc.Device == "" {
		return nil, nil, errors.New("serial device name is required")
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        sc.Device,
		Baud:        sc.Baud,
		Size:        8,
		ReadTimeout: sc.ReadTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	h := NewHealth()
	if err := HealthCheckRNG(p, h); err != nil {
		h.Set(false, err.Error())
		_ = p.Close()
		return nil, h, err
	}
	h.Set(true, "")

	return p, h, nil
}
