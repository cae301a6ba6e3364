package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Hand is the result of a deal: the drawn cards and how many are left.
// Field order fixes the JSON key order.
type Hand struct {
	Cards     []Card `json:"hand"`
	Remaining int    `json:"remaining"`
}

// Deal draws n cards from d.
func Deal(d *Deck, src Source, n int) (Hand, error) {
	cards, err := d.DrawN(src, n)
	if err != nil {
		return Hand{}, err
	}
	return Hand{Cards: cards, Remaining: len(*d)}, nil
}

// Text renders one card per line followed by the remaining count.
func (h Hand) Text() string {
	var b strings.Builder
	for _, c := range h.Cards {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "remaining: %d", h.Remaining)
	return b.String()
}

// WriteHand writes h as a single JSON line.
func WriteHand(w io.Writer, h Hand) error {
	if h.Cards == nil {
		h.Cards = []Card{}
	}
	out, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode hand: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
