// Package service contains stats workflows
package service

import (
	"context"
	"time"

	perr "postguard/internal/platform/errors"
	"postguard/internal/services/api/stats/domain"
	journaldom "postguard/internal/services/journal/domain"
)

// Svc implements domain.ServicePort
type Svc struct {
	summary journaldom.SummaryPort
	now     func() time.Time
}

// New constructs a stats service; a nil summary answers 503
func New(summary journaldom.SummaryPort) *Svc {
	return &Svc{summary: summary, now: time.Now}
}

// DefaultWindow is used when since is zero
const DefaultWindow = 24 * time.Hour

// Checks sums journaled checks at or after since
func (s *Svc) Checks(ctx context.Context, since time.Time) (domain.ChecksSummary, error) {
	if s.summary == nil {
		return domain.ChecksSummary{}, perr.Unavailablef("stats need postgres")
	}
	if since.IsZero() {
		since = s.now().Add(-DefaultWindow)
	}
	since = since.UTC()
	if since.After(s.now()) {
		return domain.ChecksSummary{}, perr.Validationf("since is in the future")
	}

	rows, err := s.summary.Counts(ctx, since)
	if err != nil {
		return domain.ChecksSummary{}, perr.FromPostgres(err, "count checks")
	}
	out := domain.ChecksSummary{Since: since, Counts: rows}
	if out.Counts == nil {
		out.Counts = []journaldom.Count{}
	}
	for _, r := range rows {
		out.Total += r.Checks
	}
	return out, nil
}
