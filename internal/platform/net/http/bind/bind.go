// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "postguard/internal/platform/errors"
	"postguard/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

// FieldFailure names the first field and tag that failed validation
// It is wrapped inside the validation error returned by ParseJSON
type FieldFailure struct {
	Field string
	Tag   string
	Param string
}

func (f *FieldFailure) Error() string { return f.Field + ": " + f.Tag }

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerMediaPayload(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSONOptions is a 1MB limit with unknown fields rejected
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	body := io.Reader(r.Body)
	if o.MaxBytes > 0 {
		// one extra byte so an oversized body is detectable
		body = io.LimitReader(r.Body, o.MaxBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.JSONErrf("read body: %v", err)
	}
	if o.MaxBytes > 0 && int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if o.AllowEmptyBody {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and wraps the first failure as a FieldFailure
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeValidation, err.Error())
	}
	fe := verrs[0]
	ff := &FieldFailure{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	return perr.WithField(perr.Wrap(ff, perr.ErrorCodeValidation, fe.Translate(Get().Translator)), ff.Field)
}

// Failure returns the FieldFailure inside err, if any
func Failure(err error) (*FieldFailure, bool) {
	var ff *FieldFailure
	if errors.As(err, &ff) {
		return ff, true
	}
	return nil, false
}

// IsMediaPayload reports whether s looks like an encoded payload of the given media kind
// A value passes when it is a data URI for kind or carries a base64 marker
func IsMediaPayload(s, kind string) bool {
	return strings.HasPrefix(s, "data:"+kind+"/") || strings.Contains(s, "base64,")
}

// registerMediaPayload adds the media=<kind> tag, e.g. validate:"media=image"
func registerMediaPayload(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("media", func(fl FieldLevel) bool {
		return IsMediaPayload(fl.Field().String(), fl.Param())
	})
	_ = v.RegisterTranslation("media", trans,
		func(ut ut.Translator) error {
			return ut.Add("media", "{0} must be a base64 encoded {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("media", fe.Field(), fe.Param())
			return msg
		},
	)
}
