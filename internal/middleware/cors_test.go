package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Cors()(next)

	cases := []struct {
		name         string
		origin       string
		userAgent    string
		expectedCode int
	}{
		{name: "allowed origin", origin: "http://localhost:3000", expectedCode: http.StatusOK},
		{name: "netlify preview", origin: "https://my-app.netlify.app", expectedCode: http.StatusOK},
		{name: "curl", userAgent: "curl/8.4.0", expectedCode: http.StatusOK},
		{name: "test agent", origin: "test", expectedCode: http.StatusOK},
		{name: "unknown origin", origin: "https://evil.example.com", expectedCode: http.StatusForbidden},
		{name: "no origin no agent", expectedCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/activities", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.userAgent != "" {
				req.Header.Set("User-Agent", tc.userAgent)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedCode == http.StatusOK && tc.origin != "" {
				assert.Equal(t, tc.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
