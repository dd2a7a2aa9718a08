package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"postguard/internal/platform/config"
	perr "postguard/internal/platform/errors"
)

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("backends should stay nil")
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

type fakeCH struct {
	pingErr error
	closed  bool
}

func (f *fakeCH) Insert(context.Context, string, [][]any) error       { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error) { return &fakeRows{}, nil }
func (f *fakeCH) Ping(context.Context) error                          { return f.pingErr }
func (f *fakeCH) Close() error                                        { f.closed = true; return nil }

func TestGuard_ReportsClickhouse(t *testing.T) {
	ch := &fakeCH{pingErr: errors.New("down")}
	s := &Store{CH: ch}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("want guard error")
	}
	_ = s.Close(context.Background())
	if !ch.closed {
		t.Fatalf("clickhouse not closed")
	}
	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatalf("nil store should fail guard")
	}
}

func TestRetry(t *testing.T) {
	calls := 0
	err := retry(context.Background(), 5, time.Millisecond, 2*time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}

	err = retry(context.Background(), 2, time.Millisecond, time.Millisecond, func() error { return errors.New("never") })
	if err == nil {
		t.Fatalf("want exhausted error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retry(ctx, 10, time.Second, time.Second, func() error { return errors.New("x") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want canceled, got %v", err)
	}
}

func TestConfigFrom(t *testing.T) {
	t.Setenv("PGT_SERVICE_PGSQL_ENABLED", "true")
	t.Setenv("PGT_SERVICE_PGSQL_DBURL", "postgres://localhost/db")
	t.Setenv("PGT_SERVICE_PGSQL_SLOW_MS", "40")

	c := ConfigFrom(config.New().Prefix("PGT_"), "postguard-api")
	if !c.PG.Enabled || c.PG.URL != "postgres://localhost/db" || c.PG.SlowQueryMs != 40 {
		t.Fatalf("pg = %+v", c.PG)
	}
	if c.CH.Enabled || c.AppName != "postguard-api" {
		t.Fatalf("cfg = %+v", c)
	}
}

// fakes for the helpers

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *int:
			*d = row[i].(int)
		}
	}
	return nil
}
func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

type fakeQ struct{ rows *fakeRows }

func (q fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (q fakeQ) Query(context.Context, string, ...any) (Rows, error)      { return q.rows, nil }
func (q fakeQ) QueryRow(context.Context, string, ...any) Row {
	q.rows.Next()
	return q.rows
}

func scanPair(r Row) (string, error) {
	var s string
	var n int
	err := r.Scan(&s, &n)
	return s, err
}

func TestHelpers(t *testing.T) {
	ctx := context.Background()

	got, err := Many(ctx, fakeQ{&fakeRows{data: [][]any{{"a", 1}, {"b", 2}}}}, scanPair, "q")
	if err != nil || len(got) != 2 || got[1] != "b" {
		t.Fatalf("Many = %v %v", got, err)
	}

	_, err = One(ctx, fakeQ{&fakeRows{}}, scanPair, "q")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("One on empty = %v", err)
	}

	n, err := Scalar[string](ctx, fakeQ{&fakeRows{data: [][]any{{"x"}}}}, "q")
	if err != nil || n != "x" {
		t.Fatalf("Scalar = %q %v", n, err)
	}

	got, err = ManyRows(&fakeRows{data: [][]any{{"z", 0}}}, scanPair)
	if err != nil || len(got) != 1 || got[0] != "z" {
		t.Fatalf("ManyRows = %v %v", got, err)
	}
}
