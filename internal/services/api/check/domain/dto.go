// Package domain defines the check request and response bodies
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"postguard/internal/core/risk"
)

// Validation messages written in {"error": ...}
const (
	MsgTextMissing   = "テキストが指定されていないか、無効な形式です"
	MsgImageMissing  = "画像データが指定されていないか、無効な形式です"
	MsgImageEncoding = "無効な画像形式です。Base64エンコードされた画像を指定してください"
	MsgVideoMissing  = "動画データが指定されていないか、無効な形式です"
	MsgVideoEncoding = "無効な動画形式です。Base64エンコードされた動画を指定してください"
)

// UserID accepts a JSON string or number; extension clients send either
type UserID string

// UnmarshalJSON implements json.Unmarshaler
func (u *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("userId must be a string or number")
	}
	*u = UserID(n.String())
	return nil
}

// Settings are the extension's toggles; they are logged and do not change results
type Settings struct {
	DisallowDiscrimination      bool `json:"disallowDiscrimination"`
	DisallowDefamation          bool `json:"disallowDefamation"`
	DisallowMisinformation      bool `json:"disallowMisinformation"`
	DisallowInappropriate       bool `json:"disallowInappropriate"`
	DisallowExtremism           bool `json:"disallowExtremism"`
	DisallowCopyright           bool `json:"disallowCopyright"`
	DisallowCondescending       bool `json:"disallowCondescending"`
	DisallowUnethical           bool `json:"disallowUnethical"`
	DisallowExcessiveComplaints bool `json:"disallowExcessiveComplaints"`
	DisallowStealthMarketing    bool `json:"disallowStealthMarketing"`
}

// Enabled lists the json names of the toggles that are on
func (s *Settings) Enabled() []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, kv := range []struct {
		name string
		on   bool
	}{
		{"disallowDiscrimination", s.DisallowDiscrimination},
		{"disallowDefamation", s.DisallowDefamation},
		{"disallowMisinformation", s.DisallowMisinformation},
		{"disallowInappropriate", s.DisallowInappropriate},
		{"disallowExtremism", s.DisallowExtremism},
		{"disallowCopyright", s.DisallowCopyright},
		{"disallowCondescending", s.DisallowCondescending},
		{"disallowUnethical", s.DisallowUnethical},
		{"disallowExcessiveComplaints", s.DisallowExcessiveComplaints},
		{"disallowStealthMarketing", s.DisallowStealthMarketing},
	} {
		if kv.on {
			out = append(out, kv.name)
		}
	}
	return out
}

// TextRequest is the check-text body
type TextRequest struct {
	Text     string    `json:"text" validate:"required"`
	UserID   UserID    `json:"userId"`
	Settings *Settings `json:"settings"`
}

// ImageRequest is the check-image body
type ImageRequest struct {
	ImageBase64 string    `json:"imageBase64" validate:"required,media=image"`
	Caption     string    `json:"caption"`
	UserID      UserID    `json:"userId"`
	Settings    *Settings `json:"settings"`
}

// VideoRequest is the check-video body
type VideoRequest struct {
	VideoData string    `json:"videoData" validate:"required,media=video"`
	UserID    UserID    `json:"userId"`
	Settings  *Settings `json:"settings"`
}

// CheckResponse is returned by check-text and check-image
type CheckResponse struct {
	risk.Assessment
	ContextUsed bool `json:"contextUsed"`
}

// VideoResponse is returned by check-video
type VideoResponse struct {
	risk.Assessment
	TimeRanges             []risk.TimeRange `json:"timeRanges"`
	Transcription          string           `json:"transcription"`
	FormattedTranscription string           `json:"formattedTranscription"`
	ContextUsed            bool             `json:"contextUsed"`
}
