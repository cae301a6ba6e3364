package server

import (
	"context"
	"io"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lost-woods/pokerdeck/src/api"
	"github.com/lost-woods/pokerdeck/src/config"
	"github.com/lost-woods/pokerdeck/src/rng"
)

type Server struct {
	port   string
	router *gin.Engine
}

// New wires the routes and starts background health sampling of r, which
// stops when ctx is done.
func New(ctx context.Context, cfg *config.Config, r io.Reader, h *rng.Health, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(log))

	go rng.PeriodicHealthCheck(ctx, r, h, cfg.HealthInterval)

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"X-API-KEY", "Accept"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(api.CheckHeader("X-API-KEY", cfg.APIKey))

	handlers := api.NewHandlers(r, h, log)
	router.GET("/deal", handlers.Deal)
	router.GET("/deck", handlers.Deck)
	router.GET("/winner", handlers.Winner)
	router.GET("/health", handlers.Health)

	return &Server{port: cfg.Port, router: router}
}

// Handler exposes the router for tests.
func (s *Server) Handler() *gin.Engine { return s.router }

func (s *Server) RunOrDie() {
	if err := s.router.Run(":" + s.port); err != nil {
		panic(err)
	}
}
