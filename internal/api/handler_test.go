package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubStatus struct{}

func (stubStatus) Uptime() time.Duration { return 90 * time.Second }
func (stubStatus) ActiveSessions() int   { return 3 }
func (stubStatus) Guilds() int           { return 7 }
func (stubStatus) CommandCounts() map[string]int {
	return map[string]int{"weather": 12, "ping": 4}
}

func testApp() *fiber.App {
	app := fiber.New()
	handler := NewHandler(stubStatus{}, zap.NewNop())
	SetupRoutes(app, handler, zap.NewNop())
	return app
}

func TestGetHealth(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["guilds"] != float64(7) {
		t.Errorf("guilds = %v", body["guilds"])
	}
	if body["sessions"] != float64(3) {
		t.Errorf("sessions = %v", body["sessions"])
	}
}

func TestGetMetrics(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Metrics struct {
			ActiveWeatherSessions int            `json:"active_weather_sessions"`
			UptimeSeconds         int64          `json:"uptime_seconds"`
			Commands              map[string]int `json:"commands"`
		} `json:"metrics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Metrics.ActiveWeatherSessions != 3 {
		t.Errorf("sessions = %d", body.Metrics.ActiveWeatherSessions)
	}
	if body.Metrics.UptimeSeconds != 90 {
		t.Errorf("uptime = %d", body.Metrics.UptimeSeconds)
	}
	if body.Metrics.Commands["weather"] != 12 {
		t.Errorf("weather count = %d", body.Metrics.Commands["weather"])
	}
}

func TestNotFound(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
