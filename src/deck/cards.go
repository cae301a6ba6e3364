package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a draw asks for more cards than the deck holds.
var ErrEmptyDeck = errors.New("deck is empty")

// Source yields a uniform integer in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

var (
	Suits = []string{"♠", "♥", "♦", "♣"}
	Ranks = []string{"A", "K", "Q", "J", "10", "9", "8", "7", "6", "5", "4", "3", "2"}
)

type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func (c Card) String() string { return c.Rank + " of " + c.Suit }

// Valid reports whether both suit and rank belong to the standard sets.
func (c Card) Valid() bool {
	return contains(Suits, c.Suit) && contains(Ranks, c.Rank)
}

type Deck []Card

// New returns the 52 cards ordered suit-major, rank-minor.
func New() Deck {
	deck := make(Deck, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Draw removes and returns a uniformly chosen card. The remaining cards keep
// their relative order.
func (d *Deck) Draw(src Source) (Card, error) {
	n := len(*d)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}

	index, err := src.Intn(n)
	if err != nil {
		return Card{}, fmt.Errorf("pick card index: %w", err)
	}
	if index < 0 || index >= n {
		return Card{}, fmt.Errorf("card index %d out of range [0, %d)", index, n)
	}

	card := (*d)[index]
	*d = RemoveCard(*d, index)
	return card, nil
}

// DrawN draws n cards in sequence. The deck is left untouched when it holds
// fewer than n cards.
func (d *Deck) DrawN(src Source, n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid card count %d", n)
	}
	if n > len(*d) {
		return nil, fmt.Errorf("%w: want %d cards, have %d", ErrEmptyDeck, n, len(*d))
	}

	picked := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Draw(src)
		if err != nil {
			return picked, err
		}
		picked = append(picked, c)
	}
	return picked, nil
}

// Validate checks every card is standard and appears at most once.
func (d Deck) Validate() error {
	seen := make(map[Card]struct{}, len(d))
	for i, c := range d {
		if !c.Valid() {
			return fmt.Errorf("card %d: unknown card %q/%q", i, c.Suit, c.Rank)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("card %d: duplicate %s", i, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

func RemoveCard(deck Deck, index int) Deck {
	return append(deck[:index], deck[index+1:]...)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
