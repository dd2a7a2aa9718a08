// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"
	"time"

	"postguard/internal/modkit/httpkit"
	perr "postguard/internal/platform/errors"
	"postguard/internal/services/api/stats/domain"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// outcome counts by modality and level
	httpkit.Get(r, "/checks", h.checks)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /stats/checks Stats statsChecks
// @Summary Check outcomes by modality and risk level
// @Tags Stats
// @Produce json
// @Param since query string false "RFC3339 lower bound, default 24h ago"
// @Success 200 {object} domain.ChecksSummary "ok"
// @Router /stats/checks [get]
func (h *handlers) checks(r *stdhttp.Request) (any, error) {
	var since time.Time
	if v := r.URL.Query().Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, perr.WithField(perr.Validationf("since must be RFC3339"), "since")
		}
		since = t
	}
	return h.svc.Checks(r.Context(), since)
}
