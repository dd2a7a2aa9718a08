package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "postguard/internal/platform/errors"
	pnet "postguard/internal/platform/net"
	phttp "postguard/internal/platform/net/http"
)

func reqWithID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequestID(req.Context(), rid))
}

func TestHandle_EnvelopeSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]string{"a": "b"})
	})(rec, reqWithID("GET", "/x", "rid-1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_EnvelopeError(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.Validationf("since must be RFC3339"))
	})(rec, reqWithID("GET", "/x", "rid-2"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeValidation || env.Error != "since must be RFC3339" || env.RequestID != "rid-2" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_PlainBodies(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Plain(map[string]any{"riskLevel": "小"})
	})(rec, reqWithID("POST", "/x", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "status_code") {
		t.Fatalf("plain body should not be enveloped: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.PlainError(perr.MethodNotAllowedf("Method Not Allowed"))
	})(rec, reqWithID("GET", "/x", ""))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body) != 1 || body["error"] != "Method Not Allowed" {
		t.Fatalf("plain error body = %v", body)
	}
}

func TestHandle_ForeignErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.PlainError(errors.New("boom"))
	})(rec, reqWithID("GET", "/x", ""))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		r := phttp.NoContent()
		r.Header = http.Header{"X-Test": []string{"1"}}
		return r
	})(rec, reqWithID("GET", "/x", ""))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("no content = %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Test") != "1" {
		t.Fatalf("header not copied")
	}
}
