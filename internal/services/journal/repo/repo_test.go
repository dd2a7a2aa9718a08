package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"postguard/internal/core/risk"
	"postguard/internal/platform/store"
	"postguard/internal/services/journal/domain"

	"github.com/google/uuid"
)

type fakeCH struct {
	table string
	rows  [][]any
	err   error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return f.err
}
func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Ping(context.Context) error                                { return nil }
func (f *fakeCH) Close() error                                              { return nil }

func TestCH_Write(t *testing.T) {
	f := &fakeCH{}
	id := uuid.New()
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600))
	err := NewCH(f).Write(context.Background(), []domain.Event{{
		ID: id, At: at, Modality: risk.Video, RiskLevel: risk.High, Issues: 2, Flagged: 70000, ContextUsed: true,
	}})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if f.table != "check_events" || len(f.rows) != 1 {
		t.Fatalf("insert %q %d", f.table, len(f.rows))
	}
	r := f.rows[0]
	if r[0] != id || r[2] != "video" || r[3] != "HIGH" || r[4] != uint16(2) || r[5] != uint16(65535) || r[6] != true {
		t.Fatalf("row %#v", r)
	}
	if r[1].(time.Time).Location() != time.UTC {
		t.Fatalf("time not normalised to UTC")
	}
}

func TestCH_WriteEmptyAndError(t *testing.T) {
	f := &fakeCH{err: errors.New("down")}
	if err := NewCH(f).Write(context.Background(), nil); err != nil {
		t.Fatalf("empty write should be a no-op: %v", err)
	}
	if err := NewCH(f).Write(context.Background(), []domain.Event{{ID: uuid.New()}}); err == nil {
		t.Fatalf("want error")
	}
}
