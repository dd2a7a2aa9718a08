package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"postguard/internal/core/version"
)

//go:embed openapi.json
var openapiDoc []byte

// Doc returns the embedded document with info.version set to the running build
func Doc() ([]byte, error) {
	var spec map[string]any
	if err := json.Unmarshal(openapiDoc, &spec); err != nil {
		return nil, err
	}
	if info, ok := spec["info"].(map[string]any); ok {
		info["version"] = version.Info().Version
	}
	return json.Marshal(spec)
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		b, err := Doc()
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(b)
	}
}
