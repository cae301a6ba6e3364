// Command pokerdeck builds a fresh 52-card deck, draws two cards and prints
// them with the remaining deck size as one JSON line.
package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lost-woods/pokerdeck/src/deck"
	"github.com/lost-woods/pokerdeck/src/rng"
)

const handSize = 2

func run(w io.Writer, src deck.Source) error {
	d := deck.New()
	hand, err := deck.Deal(&d, src, handSize)
	if err != nil {
		return err
	}
	return deck.WriteHand(w, hand)
}

func main() {
	zapLogger, _ := zap.NewProduction()
	log := zapLogger.Sugar()

	r, h := rng.NewSystem()
	if err := run(os.Stdout, rng.NewUniform(r, h)); err != nil {
		log.Errorw("draw failed", "error", err)
		_ = zapLogger.Sync()
		os.Exit(1)
	}
	_ = zapLogger.Sync()
}
