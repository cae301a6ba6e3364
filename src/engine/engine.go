// Package engine answers one-shot deck requests encoded as JSON, so other
// services can drive the deck through a pipe.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/lost-woods/pokerdeck/src/deck"
)

const (
	ActionBuildDeck  = "build_deck"
	ActionDraw       = "draw"
	ActionDealHands  = "deal_hands"
	ActionPickWinner = "pick_winner"
)

// HandSize is how many cards each player gets from deal_hands.
const HandSize = 2

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoContenders  = errors.New("no contenders")
	ErrNoPlayers     = errors.New("no players")
)

type Request struct {
	Action     string    `json:"action"`
	Deck       deck.Deck `json:"deck,omitempty"`
	Players    []string  `json:"players,omitempty"`
	Contenders []string  `json:"contenders,omitempty"`
}

type DeckResponse struct {
	Deck deck.Deck `json:"deck"`
}

type DrawResponse struct {
	Card deck.Card `json:"card"`
	Deck deck.Deck `json:"deck"`
}

type PlayerHand struct {
	UserID string      `json:"userId"`
	Hand   []deck.Card `json:"hand"`
}

type DealResponse struct {
	Hands     []PlayerHand `json:"hands"`
	Remaining int          `json:"remaining"`
}

type WinnerResponse struct {
	WinnerID string `json:"winnerId"`
}

type Engine struct {
	src deck.Source
	log *zap.SugaredLogger
}

func New(src deck.Source, log *zap.SugaredLogger) *Engine {
	return &Engine{src: src, log: log}
}

// Handle runs a single request and returns the value to encode.
func (e *Engine) Handle(req Request) (any, error) {
	switch req.Action {
	case ActionBuildDeck:
		return DeckResponse{Deck: deck.New()}, nil

	case ActionDraw:
		if err := req.Deck.Validate(); err != nil {
			return nil, fmt.Errorf("invalid deck: %w", err)
		}
		d := append(deck.Deck{}, req.Deck...)
		card, err := d.Draw(e.src)
		if err != nil {
			return nil, err
		}
		return DrawResponse{Card: card, Deck: d}, nil

	case ActionDealHands:
		return e.dealHands(req.Players)

	case ActionPickWinner:
		if len(req.Contenders) == 0 {
			return nil, ErrNoContenders
		}
		i, err := e.src.Intn(len(req.Contenders))
		if err != nil {
			return nil, fmt.Errorf("pick winner: %w", err)
		}
		return WinnerResponse{WinnerID: req.Contenders[i]}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
}

func (e *Engine) dealHands(players []string) (DealResponse, error) {
	if len(players) == 0 {
		return DealResponse{}, ErrNoPlayers
	}

	d := deck.New()
	if need := len(players) * HandSize; need > len(d) {
		return DealResponse{}, fmt.Errorf("%w: %d players need %d cards", deck.ErrEmptyDeck, len(players), need)
	}

	hands := make([]PlayerHand, 0, len(players))
	for _, p := range players {
		cards, err := d.DrawN(e.src, HandSize)
		if err != nil {
			return DealResponse{}, fmt.Errorf("deal %s: %w", p, err)
		}
		hands = append(hands, PlayerHand{UserID: p, Hand: cards})
	}
	return DealResponse{Hands: hands, Remaining: len(d)}, nil
}

// Serve decodes one request from r and writes the JSON response to w.
// Nothing is written to w when the request fails.
func (e *Engine) Serve(r io.Reader, w io.Writer) error {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	e.log.Debugw("engine request", "action", req.Action, "deck", len(req.Deck))

	resp, err := e.Handle(req)
	if err != nil {
		return err
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
