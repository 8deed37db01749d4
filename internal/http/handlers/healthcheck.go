package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fitter/internal/lib/sl"

	"github.com/go-chi/render"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Healthcheck reports "degraded" with 503 when the database does not answer.
func Healthcheck(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error("database ping failed", sl.Err(err))

			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "degraded"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
