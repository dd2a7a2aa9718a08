package httpkit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postguard/internal/modkit/httpkit"
	"postguard/internal/platform/metrics"
	phttp "postguard/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func newRouter() (*chi.Mux, httpkit.Router) {
	mux := chi.NewRouter()
	return mux, phttp.AdaptChi(mux)
}

func TestOnly_Rejects(t *testing.T) {
	mux, r := newRouter()
	httpkit.Only(r, "/check-text", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, http.MethodPost)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check-text", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Allow") != "POST" {
		t.Fatalf("Allow = %q", rec.Header().Get("Allow"))
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Method Not Allowed" || len(body) != 1 {
		t.Fatalf("body = %v", body)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/check-text", strings.NewReader("{}")))
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d", rec.Code)
	}
}

func TestMountAPIV1_WithCommonStack(t *testing.T) {
	mux, r := newRouter()
	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: []string{"*"},
		RateRPS:     100,
		RateBurst:   10,
		Metrics:     metrics.NewHTTP(nil),
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		httpkit.Get(api, "/meta/version", func(*http.Request) (any, error) {
			return map[string]string{"version": "test"}, nil
		})
		httpkit.PostJSON(api, "/echo", func(_ *http.Request, in struct {
			Text string `json:"text" validate:"required"`
		}) (any, error) {
			return in, nil
		})
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/meta/version", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id not echoed")
	}
	var env httpkit.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Data == nil {
		t.Fatalf("envelope = %+v err=%v", env, err)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(`{"text":""}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("validation status = %d", rec.Code)
	}
}
