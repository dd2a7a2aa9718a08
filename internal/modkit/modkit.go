// Package modkit provides module wiring and core deps
package modkit

import (
	phttp "postguard/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module port set for cross wiring
	Ports() any
	Name() string
}
