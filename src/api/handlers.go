package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lost-woods/pokerdeck/src/rng"
)

type Handlers struct {
	r      io.Reader
	src    *rng.Uniform
	health *rng.Health
	log    *zap.SugaredLogger
}

func NewHandlers(r io.Reader, h *rng.Health, log *zap.SugaredLogger) *Handlers {
	return &Handlers{r: r, src: rng.NewUniform(r, h), health: h, log: log}
}

func (h *Handlers) rngOK(c *gin.Context) bool {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "RNG unhealthy: missing health monitor")
		return false
	}

	ok, msg, _ := h.health.Snapshot()
	if ok {
		return true
	}

	responder{c}.err(http.StatusServiceUnavailable, "RNG unhealthy: "+msg)
	return false
}

func (h *Handlers) requestID() (string, error) {
	id, err := rng.RequestID(h.r)
	if err != nil && h.health != nil {
		h.health.Set(false, "error fetching random bytes for request id: "+err.Error())
	}
	return id, err
}

// handleRNG checks source health, runs work, and only then draws the request
// id so that the id never consumes entropy meant for the outcome.
func (h *Handlers) handleRNG(
	c *gin.Context,
	work func() (text string, payload gin.H, status int, errMsg string),
) {
	if !h.rngOK(c) {
		return
	}

	text, payload, status, errMsg := work()
	if errMsg != "" {
		responder{c}.err(status, errMsg)
		return
	}

	requestID, err := h.requestID()
	if err != nil {
		h.log.Errorw("request id", "error", err)
		responder{c}.err(http.StatusInternalServerError, "Error generating request id.")
		return
	}

	responder{c}.ok(text, payload, requestID)
}

// CheckHeader rejects requests whose header does not match. An empty
// expected value disables the check.
func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
