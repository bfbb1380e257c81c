package handler

import (
	"campus_security_backend/internal/core/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestStreamStats(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.router)
	defer srv.Close()

	w := api.do(t, http.MethodPost, "/api/demo/initialize", "")
	expectStatus(t, w, http.StatusOK)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/dashboard/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	// first snapshot on connect, then one per tick
	for i := 0; i < 2; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var stats domain.DashboardStats
		if err := conn.ReadJSON(&stats); err != nil {
			t.Fatalf("ReadJSON() #%d error = %v", i+1, err)
		}
		if stats.TotalPolicies != 4 || stats.BlockedRequestsToday != 142 {
			t.Errorf("snapshot #%d = %+v", i+1, stats)
		}
	}
}

func TestStreamStats_RejectsPlainHTTP(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/dashboard/stream", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCorsConfig(t *testing.T) {
	if cfg := corsConfig(nil); !cfg.AllowAllOrigins {
		t.Error("empty origin list should allow all origins")
	}
	cfg := corsConfig([]string{"http://a.local"})
	if cfg.AllowAllOrigins || !cfg.AllowCredentials || len(cfg.AllowOrigins) != 1 {
		t.Errorf("corsConfig() = %+v", cfg)
	}
}
