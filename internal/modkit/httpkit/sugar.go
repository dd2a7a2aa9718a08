package httpkit

import (
	"net/http"
	"strings"

	perr "postguard/internal/platform/errors"
)

// Get registers a no-body GET handler behind the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a JSON handler under POST behind the envelope adapter
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// MethodNotAllowedMessage is the error text of the plain 405 body
const MethodNotAllowedMessage = "Method Not Allowed"

// Only mounts h for every verb and answers anything outside methods with
// 405 {"error": "Method Not Allowed"} plus an Allow header
func Only(r Router, path string, h Handler, methods ...string) {
	allow := strings.Join(methods, ", ")
	r.Handle(path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		for _, m := range methods {
			if req.Method == m {
				h(w, req)
				return
			}
		}
		w.Header().Set("Allow", allow)
		Handle(func(*http.Request) Response {
			return PlainError(perr.MethodNotAllowedf(MethodNotAllowedMessage))
		})(w, req)
	}))
}
