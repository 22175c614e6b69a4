// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/ingest"
	"github.com/fpl-indonesia/direktori/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks. Client is nil
// when the suggestion store runs on CSV and no Mongo connection exists.
type Handler struct {
	Data   *ingest.Dataset
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(data *ingest.Dataset, client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Data:   data,
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string         `json:"status"`
	Snapshot string         `json:"snapshot"`
	LoadedAt time.Time      `json:"loaded_at"`
	Records  int            `json:"records"`
	Sources  map[string]int `json:"sources"`
	Database string         `json:"database"`
	Error    string         `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "snapshot":"…", "records":412, "database":"connected" }
//
// When Mongo is configured but unreachable: 503 with the ping error.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sources := make(map[string]int, len(h.Data.SourceCount))
	for src, n := range h.Data.SourceCount {
		sources[string(src)] = n
	}

	resp := healthResponse{
		Status:   "ok",
		Snapshot: h.Data.SnapshotID.String(),
		LoadedAt: h.Data.LoadedAt,
		Records:  len(h.Data.Records),
		Sources:  sources,
		Database: "disabled",
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
