package middleware

import (
	"fmt"
	"net"
	"net/http"

	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	"github.com/kebab-dev/kebab/shared/middleware/ratelimiter"
	"github.com/kebab-dev/kebab/shared/utils"
)

// RateLimit rejects requests with 429 once the identity's bucket is empty.
func RateLimit(rl *ratelimiter.KeyedLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteJSON(w, http.StatusTooManyRequests, utils.ErrorBody{Error: "Rate limit exceeded, try again later"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LimitMethods applies mw only to requests whose method is listed, e.g. writes.
func LimitMethods(mw func(http.Handler) http.Handler, methods ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, m := range methods {
				if r.Method == m {
					limited.ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the real client IP from RemoteAddr
// Does NOT trust X-Real-IP or X-Forwarded-For headers (no reverse proxy)
// An unusable address is the client's fault and maps to 400.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// Fallback: if RemoteAddr doesn't have port, use it directly
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("invalid IP address: %s", ip), StatusCode: http.StatusBadRequest}
	}

	return ip, nil
}
