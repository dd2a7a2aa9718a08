package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"postguard/internal/services/transcribe/domain"
)

func TestMock_Transcribe(t *testing.T) {
	r, err := Mock{}.Transcribe(context.Background(), "data:video/mp4;base64,AAAA", domain.DefaultOptions())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if len(r.Segments) != 4 {
		t.Fatalf("segments %d", len(r.Segments))
	}
	if r.Segments[3].End != 21.3 || r.Duration != 21.3 {
		t.Fatalf("duration %v", r.Duration)
	}
	if !strings.HasPrefix(r.Text, "こんにちは、今日は新製品の発表会についてお話しします。この製品は") {
		t.Fatalf("text %q", r.Text)
	}
	if r.Language != "ja" {
		t.Fatalf("language %q", r.Language)
	}
	for i, s := range r.Segments {
		if s.ID != i {
			t.Fatalf("segment %d has id %d", i, s.ID)
		}
	}
}

func TestMock_WithoutTimestamps(t *testing.T) {
	r, err := Mock{}.Transcribe(context.Background(), "", domain.Options{Language: "en-US"})
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if len(r.Segments) != 0 || r.Text == "" {
		t.Fatalf("got %+v", r)
	}
	if r.Language != "en" {
		t.Fatalf("language %q", r.Language)
	}
}

func TestMock_SegmentsAreCopies(t *testing.T) {
	r, _ := Mock{}.Transcribe(context.Background(), "", domain.DefaultOptions())
	r.Segments[0].Text = "changed"
	r2, _ := Mock{}.Transcribe(context.Background(), "", domain.DefaultOptions())
	if r2.Segments[0].Text == "changed" {
		t.Fatalf("mock segments leaked")
	}
}

func TestMock_BadLanguage(t *testing.T) {
	if _, err := (Mock{}).Transcribe(context.Background(), "", domain.Options{Language: "not a tag!"}); err == nil {
		t.Fatalf("want error")
	}
}

func TestMock_DelayHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	_, err := Mock{Delay: time.Hour}.Transcribe(ctx, "", domain.DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("should not wait")
	}
}

func TestDecodePayload(t *testing.T) {
	b, ext, err := decodePayload("data:video/webm;base64,aGVsbG8=")
	if err != nil || string(b) != "hello" || ext != "webm" {
		t.Fatalf("got %q %q %v", b, ext, err)
	}
	b, ext, err = decodePayload("aGVsbG8")
	if err != nil || string(b) != "hello" || ext != "mp4" {
		t.Fatalf("raw got %q %q %v", b, ext, err)
	}
	if _, _, err := decodePayload("data:video/mp4;base64,"); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("empty err = %v", err)
	}
	if _, _, err := decodePayload("base64,!!!"); err == nil {
		t.Fatalf("want decode error")
	}
}
