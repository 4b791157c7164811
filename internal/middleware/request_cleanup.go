package middleware

import (
	"io"
	"net/http"
)

// drainRequestLimit bounds how much of an unread body gets drained.
const drainRequestLimit = 1 << 20

// DrainAndCloseRequest reads any leftover request body and closes it after
// the handler chain is done, so the underlying connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, drainRequestLimit)
			_ = r.Body.Close()
		})
	}
}
