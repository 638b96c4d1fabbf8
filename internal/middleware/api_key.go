package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// APIKeyMiddleware guards the manager surface. Callers present the shared key
// in X-API-Key; comparison is constant-time.
func APIKeyMiddleware(apiKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-API-Key")
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				logger.Warn("rejected request with bad api key",
					slog.String("path", r.URL.Path),
					slog.String("remote", r.RemoteAddr))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
