package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger is implemented by the database connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthcheckTimeout = 2 * time.Second

// HealthcheckHandler answers with the current time. When a database is
// configured it must answer a ping too.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: database ping failed")
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
