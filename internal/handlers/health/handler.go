package health

import (
	"net/http"
	"wander/infras/postgres"
	"wander/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports the liveness of the service and its backing stores.
// @Summary Health check
// @Description Report whether the service, database and cache are reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Component statuses"
// @Failure 503 {object} map[string]string "One or more components are down"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := http.StatusOK
	components := map[string]string{
		"database": "up",
		"cache":    "up",
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		components["database"] = "down"
		status = http.StatusServiceUnavailable
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		components["cache"] = "down"
		status = http.StatusServiceUnavailable
	}

	response.WithJSON(w, status, components)
}
