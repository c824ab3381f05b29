package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/vx-block-audit/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const basicAuthRealm = `Basic realm="block-audit", charset="UTF-8"`

// DashboardBasicAuth protects the dashboard pages with a single user whose
// password is stored as a bcrypt hash. Empty user disables the check.
func DashboardBasicAuth(user, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if user == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if ok && subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1 &&
				bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p)) == nil {
				next.ServeHTTP(w, r)
				return
			}

			if ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("auth: dashboard login failed")
			}

			w.Header().Set("WWW-Authenticate", basicAuthRealm)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}
