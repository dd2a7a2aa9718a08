//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"postguard/internal/core/risk"
	"postguard/internal/modkit/repokit"
	"postguard/internal/platform/store/pgtest"
	"postguard/internal/services/journal/domain"

	"github.com/google/uuid"
)

func TestPG_WriteAndCounts(t *testing.T) {
	s := pgtest.Open(t, PGDDL)
	ctx := context.Background()
	r := repokit.MustBind(NewPG(), s.PG)
	now := time.Now().UTC()

	dup := uuid.New()
	evs := []domain.Event{
		{ID: dup, At: now, Modality: risk.Text, RiskLevel: risk.Medium, Issues: 1},
		{ID: uuid.New(), At: now, Modality: risk.Text, RiskLevel: risk.Medium, Issues: 2},
		{ID: uuid.New(), At: now, Modality: risk.Video, RiskLevel: risk.High, Issues: 1, Flagged: 1, ContextUsed: true},
		{ID: uuid.New(), At: now.Add(-48 * time.Hour), Modality: risk.Image, RiskLevel: risk.Low, Issues: 1},
	}
	if err := r.Write(ctx, evs); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := r.Write(ctx, evs[:1]); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	got, err := r.Counts(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	want := []domain.Count{
		{Modality: risk.Text, RiskLevel: "MEDIUM", Checks: 2},
		{Modality: risk.Video, RiskLevel: "HIGH", Checks: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v want %+v", i, got[i], want[i])
		}
	}
}
