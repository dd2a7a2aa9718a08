package repo

import (
	"context"

	"postguard/internal/modkit/repokit"
	"postguard/internal/services/journal/domain"
)

// CHDDL creates the clickhouse check_events table
const CHDDL = `
CREATE TABLE IF NOT EXISTS check_events (
	id           UUID,
	at           DateTime64(3, 'UTC'),
	modality     LowCardinality(String),
	risk_level   LowCardinality(String),
	issues       UInt16,
	flagged      UInt16,
	context_used Bool
) ENGINE = MergeTree
ORDER BY (modality, at)
TTL toDateTime(at) + INTERVAL 180 DAY
`

type ch struct{ c repokit.Columnar }

// NewCH wraps a clickhouse seam as an event sink
func NewCH(c repokit.Columnar) domain.Sink { return &ch{c: c} }

// Write appends events in one batch
func (s *ch) Write(ctx context.Context, xs []domain.Event) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, len(xs))
	for i, e := range xs {
		rows[i] = []any{
			e.ID, e.At.UTC(), string(e.Modality), e.RiskLevel.String(),
			clampU16(e.Issues), clampU16(e.Flagged), e.ContextUsed,
		}
	}
	return s.c.Insert(ctx, "check_events", rows)
}

func clampU16(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > 65535:
		return 65535
	}
	return uint16(n)
}
