package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// responder answers in JSON when the client accepts it and in plain text
// otherwise.
type responder struct{ c *gin.Context }

func (r responder) wantsJSON() bool {
	return strings.Contains(strings.ToLower(r.c.GetHeader("Accept")), "application/json")
}

func (r responder) err(status int, msg string) {
	if r.wantsJSON() {
		r.c.JSON(status, gin.H{"error": msg})
		return
	}
	r.c.String(status, msg)
}

func (r responder) ok(text string, payload gin.H, requestID string) {
	if !r.wantsJSON() {
		r.c.String(http.StatusOK, text+"\nrequest_id: "+requestID)
		return
	}

	out := gin.H{"request_id": requestID}
	for k, v := range payload {
		out[k] = v
	}
	r.c.JSON(http.StatusOK, out)
}
