package toast

import (
	"context"
	"errors"
	"testing"
)

func TestFromWithoutProvider(t *testing.T) {
	_, err := From(context.Background())
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("From() error = %v, want ErrNoProvider", err)
	}
}

func TestMustFromPanicsWithoutProvider(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoProvider) {
			t.Errorf("recovered %v, want ErrNoProvider", r)
		}
	}()
	MustFrom(context.Background())
}

func TestProviderLifecycle(t *testing.T) {
	opts := DefaultOptions()
	opts.Clock = newFakeClock()
	p := NewProvider(opts)
	ctx := WithProvider(context.Background(), p)

	m, err := From(ctx)
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	if id := m.Add("hello"); id == 0 {
		t.Error("Add() returned zero ID on open provider")
	}

	p.Close()
	p.Close()

	if _, err := From(ctx); !errors.Is(err, ErrNoProvider) {
		t.Errorf("From() after Close error = %v, want ErrNoProvider", err)
	}
}
