// Package domain holds DTOs for the stats endpoints
package domain

import (
	"context"
	"time"

	journaldom "postguard/internal/services/journal/domain"
)

// ChecksSummary counts journaled checks since a point in time
type ChecksSummary struct {
	Since  time.Time          `json:"since"`
	Total  int64              `json:"total"`
	Counts []journaldom.Count `json:"counts"`
}

// ServicePort is the stats contract used by http
type ServicePort interface {
	Checks(ctx context.Context, since time.Time) (ChecksSummary, error)
}
