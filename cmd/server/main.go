package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/lost-woods/pokerdeck/src/config"
	"github.com/lost-woods/pokerdeck/src/rng"
	"github.com/lost-woods/pokerdeck/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	r, h, err := rng.Open(cfg.Serial)
	if err != nil {
		log.Fatalw("entropy source unavailable", "device", cfg.Serial.Device, "error", err)
	}
	if cfg.Serial.Device != "" {
		log.Infow("using hardware RNG", "device", cfg.Serial.Device, "baud", cfg.Serial.Baud)
	}

	log.Infow("listening", "port", cfg.Port)
	server.New(context.Background(), cfg, r, h, log).RunOrDie()
}
