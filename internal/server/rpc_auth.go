package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// requireToken wraps an http.Handler with Bearer token authentication,
// answering failures with a JSON-RPC 2.0 error body rather than a plain
// HTTP error. An empty secret rejects everything: the HTTP surface
// requires explicit opt-in.
func requireToken(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !validToken(secret, r.Header.Get("Authorization")) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error": map[string]any{
					"code":    -32600,
					"message": "Unauthorized",
				},
				"id": nil,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validToken checks the Authorization header against the secret using a
// constant-time comparison.
func validToken(secret, authHeader string) bool {
	if secret == "" {
		return false
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}
