// Package http provides the router seam, server and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "postguard/internal/platform/errors"
	pnet "postguard/internal/platform/net"
)

// Envelope is the standard body for platform endpoints
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// ErrorBody is the single field error object written by plain endpoints
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is a return-style handler result
// Plain responses skip the envelope and write Body as is
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
	Plain  bool
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatus(err)
		wr := perr.WireFrom(err)
		if resp.Plain {
			JSON(w, status, ErrorBody{Error: wr.Message})
			return
		}
		JSON(w, status, Envelope{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			Code:       wr.Code,
			Error:      wr.Message,
			RequestID:  pnet.RequestID(r.Context()),
		})
		return
	}

	if resp.Plain {
		JSON(w, status, resp.Body)
		return
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       resp.Body,
	})
}

// OK returns a 200 envelope response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns an envelope response whose status comes from err
func Error(err error) Response { return Response{Body: err} }

// Plain returns a 200 response written without the envelope
func Plain(body any) Response { return Response{Status: stdhttp.StatusOK, Body: body, Plain: true} }

// PlainError returns {"error": msg} with the status mapped from err
func PlainError(err error) Response { return Response{Body: err, Plain: true} }
