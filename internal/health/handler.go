package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const pingTimeout = 2 * time.Second

type databaseStatus struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
}

type healthResponse struct {
	Status   string         `json:"status"`
	Uptime   string         `json:"uptime"`
	Database databaseStatus `json:"database"`
}

// Handler exposes liveness and readiness probes for the application.
type Handler struct {
	db        *pgxpool.Pool
	startedAt time.Time
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{db: db, startedAt: time.Now()}
}

// Health reports overall service health including database connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dbStatus, ok := h.pingDatabase(r.Context())

	response := healthResponse{
		Status:   "ok",
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
		Database: dbStatus,
	}
	if !ok {
		response.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Live always reports success while the process is running.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
}

// Ready reports success only once the database answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := h.pingDatabase(r.Context()); !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

func (h *Handler) pingDatabase(ctx context.Context) (databaseStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		log.Errorf("database ping failed: %v", err)
		return databaseStatus{Status: "unreachable", LatencyMs: latency}, false
	}
	return databaseStatus{Status: "ok", LatencyMs: latency}, true
}
