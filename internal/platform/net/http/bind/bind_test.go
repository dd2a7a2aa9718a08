package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "postguard/internal/platform/errors"
)

type textReq struct {
	Text   string `json:"text" validate:"required"`
	UserID string `json:"userId"`
}

type imageReq struct {
	Image string `json:"imageBase64" validate:"required,media=image"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"こんにちは","userId":"u1"}`))
	got, err := ParseJSON[textReq](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "こんにちは" || got.UserID != "u1" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_UnknownFields(t *testing.T) {
	body := `{"text":"x","settings":{"checkAll":true}}`

	_, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader(body)))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("default options should reject unknown fields, got %v", err)
	}

	opts := DefaultJSONOptions()
	opts.DisallowUnknown = false
	if _, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader(body)), opts); err != nil {
		t.Fatalf("lenient options should accept unknown fields, got %v", err)
	}
}

func TestParseJSON_EmptyAndTrailing(t *testing.T) {
	_, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader("  ")))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty body: %v", err)
	}

	_, err = ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"a"} {"text":"b"}`)))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data: %v", err)
	}

	opts := DefaultJSONOptions()
	opts.AllowEmptyBody = true
	if _, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader("")), opts); err != nil {
		t.Fatalf("allowed empty body: %v", err)
	}
}

func TestParseJSON_WrongType(t *testing.T) {
	_, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader(`{"text":123}`)))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	opts := DefaultJSONOptions()
	opts.MaxBytes = 16
	body := `{"text":"` + strings.Repeat("a", 64) + `"}`
	_, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader(body)), opts)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for oversized body, got %v", err)
	}
}

func TestParseJSON_RequiredFailure(t *testing.T) {
	_, err := ParseJSON[textReq](httptest.NewRequest("POST", "/", strings.NewReader(`{"text":""}`)))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	ff, ok := Failure(err)
	if !ok || ff.Field != "text" || ff.Tag != "required" {
		t.Fatalf("failure = %+v ok=%v", ff, ok)
	}
	if e, _ := perr.As(err); e.Field() != "text" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestParseJSON_MediaTag(t *testing.T) {
	cases := []struct {
		body string
		ok   bool
	}{
		{`{"imageBase64":"data:image/png;base64,AAAA"}`, true},
		{`{"imageBase64":"data:image/gif,xyz"}`, true},
		{`{"imageBase64":"foo;base64,AAAA"}`, true},
		{`{"imageBase64":"hello"}`, false},
		{`{"imageBase64":"data:video/mp4,xyz"}`, false},
	}
	for _, c := range cases {
		_, err := ParseJSON[imageReq](httptest.NewRequest("POST", "/", strings.NewReader(c.body)))
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", c.body, err)
		}
		if !c.ok {
			ff, ok := Failure(err)
			if !ok || ff.Tag != "media" || ff.Param != "image" {
				t.Fatalf("%s: failure = %+v ok=%v", c.body, ff, ok)
			}
			if !strings.Contains(err.Error(), "base64 encoded image") {
				t.Fatalf("%s: message = %q", c.body, err.Error())
			}
		}
	}
}

func TestIsMediaPayload(t *testing.T) {
	if !IsMediaPayload("data:video/mp4;base64,AA", "video") {
		t.Fatalf("video data uri should pass")
	}
	if IsMediaPayload("data:image/png,AA", "video") {
		t.Fatalf("image uri without base64 marker should fail for video")
	}
}
