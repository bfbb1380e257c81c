package handler

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteWait = 10 * time.Second

type DashboardHandler struct {
	stats    port.StatsService
	store    port.DocumentStore
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewDashboardHandler(stats port.StatsService, store port.DocumentStore, interval time.Duration) *DashboardHandler {
	return &DashboardHandler{
		stats:    stats,
		store:    store,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetStats
// @Summary Dashboard statistics
// @Description Live record counts plus the daily request counters.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// StreamStats
// @Summary Stream dashboard statistics over a websocket
// @Description Sends a snapshot on connect and then at a fixed interval until the client disconnects.
// @Tags Dashboard
// @Router /api/dashboard/stream [get]
func (h *DashboardHandler) StreamStats(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[API] Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The client never sends anything; reading only detects the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		stats, err := h.stats.GetStats(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("[API] Stats stream stopped: %v", err)
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "Error fetching dashboard stats"),
					time.Now().Add(streamWriteWait))
			}
			return
		}

		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(stats); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Health
// @Summary Store connectivity check
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} domain.ErrorResponse
// @Router /api/health [get]
func (h *DashboardHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		log.Printf("[API] Store ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, domain.ErrorResponse{Detail: "Store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
