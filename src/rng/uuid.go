package rng

import (
	"encoding/hex"
	"io"
	"strings"
)

// RequestID returns an RFC 4122 version 4 UUID read from r. Callers draw it
// after the outcome so the id never shifts which cards come out.
func RequestID(r io.Reader) (string, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", err
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	var sb strings.Builder
	sb.Grow(36)
	for i, part := range [][]byte{b[0:4], b[4:6], b[6:8], b[8:10], b[10:16]} {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(hex.EncodeToString(part))
	}
	return sb.String(), nil
}
