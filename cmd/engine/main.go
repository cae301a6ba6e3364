package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/lost-woods/pokerdeck/src/engine"
	"github.com/lost-woods/pokerdeck/src/rng"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	log := zapLogger.Sugar()

	r, h := rng.NewSystem()
	e := engine.New(rng.NewUniform(r, h), log)

	if err := e.Serve(os.Stdin, os.Stdout); err != nil {
		log.Errorw("engine request failed", "error", err)
		_ = zapLogger.Sync()
		os.Exit(1)
	}
	_ = zapLogger.Sync()
}
