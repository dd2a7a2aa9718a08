package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"postguard/internal/platform/net/middleware"
)

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	h := middleware.RateLimit(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 3)
	for i := range codes {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		codes[i] = rr.Code
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	h := middleware.RateLimit(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		if rr.Code != 200 {
			t.Fatalf("request %d = %d", i, rr.Code)
		}
	}
}
