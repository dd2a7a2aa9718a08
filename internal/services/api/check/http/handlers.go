// Package http provides the check-text, check-image and check-video endpoints
package http

import (
	stdhttp "net/http"

	"postguard/internal/modkit/httpkit"
	perr "postguard/internal/platform/errors"
	"postguard/internal/platform/logger"
	pnet "postguard/internal/platform/net"
	"postguard/internal/platform/net/http/bind"
	"postguard/internal/platform/net/middleware"
	"postguard/internal/services/api/check/domain"
)

// Options tune request parsing
type Options struct {
	MaxBytes int64
}

type handlers struct {
	svc  domain.Service
	json bind.JSONOptions
}

// Register mounts the check endpoints; each answers POST only
func Register(r httpkit.Router, s domain.Service, o Options) {
	h := &handlers{svc: s, json: bind.JSONOptions{MaxBytes: o.MaxBytes}}

	httpkit.Only(r, "/check-text", httpkit.Handle(h.checkText), stdhttp.MethodPost)
	httpkit.Only(r, "/check-image", httpkit.Handle(h.checkImage), stdhttp.MethodPost)
	httpkit.Only(r, "/check-video", httpkit.Handle(h.checkVideo), stdhttp.MethodPost)
}

// swagger:route POST /check/check-text Check checkText
// @Summary Assess a text post
// @Tags Check
// @Accept json
// @Produce json
// @Param payload body domain.TextRequest true "Post"
// @Success 200 {object} domain.CheckResponse
// @Failure 400 {object} httpkit.ErrorBody
// @Failure 405 {object} httpkit.ErrorBody
// @Failure 500 {object} httpkit.ErrorBody
// @Router /check/check-text [post]
func (h *handlers) checkText(r *stdhttp.Request) httpkit.Response {
	in, err := bind.ParseJSON[domain.TextRequest](r, h.json)
	if err != nil {
		return badRequest(err, domain.MsgTextMissing, domain.MsgTextMissing)
	}
	r = r.WithContext(pnet.WithUser(r.Context(), string(in.UserID)))
	out, err := h.svc.CheckText(r.Context(), in)
	if err != nil {
		return internal(r, err)
	}
	return httpkit.Plain(out)
}

// swagger:route POST /check/check-image Check checkImage
// @Summary Assess an image post and its caption
// @Tags Check
// @Accept json
// @Produce json
// @Param payload body domain.ImageRequest true "Post"
// @Success 200 {object} domain.CheckResponse
// @Failure 400 {object} httpkit.ErrorBody
// @Router /check/check-image [post]
func (h *handlers) checkImage(r *stdhttp.Request) httpkit.Response {
	in, err := bind.ParseJSON[domain.ImageRequest](r, h.json)
	if err != nil {
		return badRequest(err, domain.MsgImageMissing, domain.MsgImageEncoding)
	}
	r = r.WithContext(pnet.WithUser(r.Context(), string(in.UserID)))
	out, err := h.svc.CheckImage(r.Context(), in)
	if err != nil {
		return internal(r, err)
	}
	return httpkit.Plain(out)
}

// swagger:route POST /check/check-video Check checkVideo
// @Summary Transcribe and assess a video post
// @Tags Check
// @Accept json
// @Produce json
// @Param payload body domain.VideoRequest true "Post"
// @Success 200 {object} domain.VideoResponse
// @Failure 400 {object} httpkit.ErrorBody
// @Router /check/check-video [post]
func (h *handlers) checkVideo(r *stdhttp.Request) httpkit.Response {
	in, err := bind.ParseJSON[domain.VideoRequest](r, h.json)
	if err != nil {
		return badRequest(err, domain.MsgVideoMissing, domain.MsgVideoEncoding)
	}
	r = r.WithContext(pnet.WithUser(r.Context(), string(in.UserID)))
	out, err := h.svc.CheckVideo(r.Context(), in)
	if err != nil {
		return internal(r, err)
	}
	return httpkit.Plain(out)
}

// badRequest maps a bind failure to the endpoint's message: the media tag means a bad
// encoding, everything else (bad JSON, wrong type, missing field) means missing
func badRequest(err error, missing, encoding string) httpkit.Response {
	msg := missing
	if ff, ok := bind.Failure(err); ok && ff.Tag == "media" {
		msg = encoding
	}
	return httpkit.PlainError(perr.Wrap(err, perr.ErrorCodeValidation, msg))
}

func internal(r *stdhttp.Request, err error) httpkit.Response {
	logger.C(r.Context()).Error().Err(err).
		Str("path", r.URL.Path).
		Str("user_id", pnet.UserID(r.Context())).
		Msg("check failed")
	return httpkit.PlainError(perr.Wrap(err, perr.ErrorCodeUnknown, middleware.InternalErrorMessage))
}
