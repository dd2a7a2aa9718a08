package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrEmptyPayload is returned for a payload with no media bytes
var ErrEmptyPayload = errors.New("transcribe: empty payload")

// decodePayload accepts a data URL or bare base64 and returns the media bytes and its
// file extension, "mp4" when the data URL carries no usable subtype
func decodePayload(payload string) ([]byte, string, error) {
	ext := "mp4"
	data := payload
	if i := strings.Index(payload, "base64,"); i >= 0 {
		head := payload[:i]
		data = payload[i+len("base64,"):]
		if strings.HasPrefix(head, "data:") {
			mime := strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";")
			if _, sub, ok := strings.Cut(mime, "/"); ok && sub != "" {
				ext = sub
			}
		}
	}
	if data == "" {
		return nil, "", ErrEmptyPayload
	}
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		if b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "=")); err != nil {
			return nil, "", fmt.Errorf("transcribe: decode payload: %w", err)
		}
	}
	return b, ext, nil
}

// baseLanguage reduces a BCP 47 tag to the ISO 639-1 code transcription APIs expect
func baseLanguage(tag string) (string, error) {
	if tag == "" {
		return "ja", nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("transcribe: language %q: %w", tag, err)
	}
	b, _ := t.Base()
	return b.String(), nil
}
