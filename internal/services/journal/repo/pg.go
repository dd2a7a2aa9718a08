// Package repo stores check events in postgres and clickhouse
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"postguard/internal/core/risk"
	"postguard/internal/modkit/repokit"
	"postguard/internal/platform/store"
	"postguard/internal/services/journal/domain"
)

// PGDDL creates the postgres check_events table
const PGDDL = `
CREATE TABLE IF NOT EXISTS check_events (
	id           uuid        PRIMARY KEY,
	at           timestamptz NOT NULL,
	modality     text        NOT NULL,
	risk_level   text        NOT NULL,
	issues       integer     NOT NULL,
	flagged      integer     NOT NULL,
	context_used boolean     NOT NULL
);
CREATE INDEX IF NOT EXISTS check_events_at_idx ON check_events (at);
`

// PG is the postgres sink and summary
type PG interface {
	domain.Sink
	domain.SummaryPort
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[PG] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) PG { return &pg{q: q} }

// Write inserts events; ids already present are ignored
func (s *pg) Write(ctx context.Context, xs []domain.Event) error {
	if len(xs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO check_events (id, at, modality, risk_level, issues, flagged, context_used) VALUES `)
	args := make([]any, 0, len(xs)*7)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*7 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d)", base, base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, e.ID, e.At, string(e.Modality), e.RiskLevel.String(), e.Issues, e.Flagged, e.ContextUsed)
	}
	sb.WriteString(` ON CONFLICT (id) DO NOTHING`)
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// Counts groups events at or after since by modality and level
func (s *pg) Counts(ctx context.Context, since time.Time) ([]domain.Count, error) {
	return store.Many(ctx, s.q, func(r store.Row) (domain.Count, error) {
		var c domain.Count
		var mod string
		err := r.Scan(&mod, &c.RiskLevel, &c.Checks)
		c.Modality = risk.Modality(mod)
		return c, err
	}, `
		SELECT modality, risk_level, count(*)
		FROM check_events
		WHERE at >= $1
		GROUP BY modality, risk_level
		ORDER BY modality, risk_level`, since)
}
