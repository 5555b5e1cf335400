package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/recoverly/recoverly/internal/ctxkeys"
)

const requestIDHeader = "X-Request-ID"

// RequestID adds a request id to the context and the response, reusing the
// caller's X-Request-ID when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithRequestID(r.Context(), id)))
	})
}
