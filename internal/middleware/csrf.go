package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/justinas/nosurf"
	"go.uber.org/zap"

	"bookings/internal/config"
	"bookings/internal/domain"
)

const InvalidCSRFMessage = "Invalid CSRF token"

// CSRF verifies the anti-forgery token on every unsafe request reaching next.
// The token travels as the csrf_token form field or the X-CSRF-Token header.
func CSRF(next http.Handler, cfg *config.AppConfig, log *zap.Logger) http.Handler {
	h := nosurf.New(next)
	h.SetBaseCookie(http.Cookie{
		HttpOnly: true,
		Path:     "/",
		Secure:   cfg.CookieSecure,
		SameSite: cfg.SameSite(),
	})
	h.SetFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Warn("csrf check failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(nosurf.Reason(r)),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(domain.AvailabilityResult{OK: false, Message: InvalidCSRFMessage})
	}))
	return h
}
