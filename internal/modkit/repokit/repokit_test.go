package repokit

import (
	"context"
	"testing"
)

type fakeTx struct {
	Queryer
	ran bool
}

func (f *fakeTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	f.ran = true
	return fn(f)
}

func TestMustBind(t *testing.T) {
	q := &fakeTx{}
	got := MustBind[string](BindFunc[string](func(Queryer) string { return "bound" }), q)
	if got != "bound" {
		t.Fatalf("got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("nil Queryer should panic")
		}
	}()
	MustBind[string](BindFunc[string](func(Queryer) string { return "" }), nil)
}

func TestWithTx(t *testing.T) {
	tx := &fakeTx{}
	called := false
	if err := WithTx(context.Background(), tx, func(Queryer) error { called = true; return nil }); err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if !tx.ran || !called {
		t.Fatalf("tx not used")
	}
}
