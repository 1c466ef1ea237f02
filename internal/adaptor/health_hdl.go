package adaptor

import (
	"context"
	"net/http"
	"time"

	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// Pinger is the part of the database pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type HealthHandler struct {
	db  Pinger
	env string
	log *zap.Logger
}

func NewHealthHandler(db Pinger, env string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		env: env,
		log: log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
	}

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("Database ping failed", zap.Error(err))
		resp.Status = "UNAVAILABLE"
		utils.ResponseJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	utils.ResponseSuccess(w, resp)
}
