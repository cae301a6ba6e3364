package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/pokerdeck/src/deck"
)

const maxContenders = 1000

func (h *Handlers) Deal(c *gin.Context) {
	numCards, err := strconv.Atoi(c.DefaultQuery("cards", "2"))
	if err != nil || numCards < 1 || numCards > len(deck.Suits)*len(deck.Ranks) {
		responder{c}.err(http.StatusBadRequest, "Card count must be an integer between 1 and 52.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		d := deck.New()
		hand, err := deck.Deal(&d, h.src, numCards)
		if errors.Is(err, deck.ErrEmptyDeck) {
			return "", nil, http.StatusBadRequest,
				"There are more cards to pick than cards in the deck."
		}
		if err != nil {
			h.log.Errorw("deal", "cards", numCards, "error", err)
			return "", nil, http.StatusInternalServerError, "Error fetching a random card."
		}

		return hand.Text(), gin.H{
			"hand":      hand.Cards,
			"remaining": hand.Remaining,
		}, 0, ""
	})
}

// Deck lists a fresh deck in build order. No entropy is consumed beyond the
// request id.
func (h *Handlers) Deck(c *gin.Context) {
	h.handleRNG(c, func() (string, gin.H, int, string) {
		d := deck.New()
		lines := make([]string, len(d))
		for i, card := range d {
			lines[i] = card.String()
		}
		return strings.Join(lines, "\n"), gin.H{"deck": d, "size": len(d)}, 0, ""
	})
}

func (h *Handlers) Winner(c *gin.Context) {
	var contenders []string
	for _, s := range strings.Split(c.Query("contenders"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			contenders = append(contenders, s)
		}
	}
	if len(contenders) == 0 || len(contenders) > maxContenders {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Provide between 1 and %d comma-separated contenders.", maxContenders))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		i, err := h.src.Intn(len(contenders))
		if err != nil {
			h.log.Errorw("pick winner", "error", err)
			return "", nil, http.StatusInternalServerError, "Error picking a winner."
		}
		winner := contenders[i]
		return winner, gin.H{"winner": winner, "contenders": len(contenders)}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	ok, msg, t := h.health.Snapshot()
	if ok {
		responder{c}.ok(
			fmt.Sprintf("OK (last checked %s)", t.Format(time.RFC3339)),
			gin.H{"ok": true, "last_checked": t.Format(time.RFC3339)},
			"health-check",
		)
		return
	}

	responder{c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", msg, t.Format(time.RFC3339)))
}
