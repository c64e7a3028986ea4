package swrcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetOrFetch_MissFetchesAndStores(t *testing.T) {
	c := New(t.TempDir())

	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"example.com"}, nil
	}

	got, err := GetOrFetch(c, context.Background(), "domains", fetch)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0] != "example.com" {
		t.Errorf("unexpected data: %v", got)
	}

	// Second call within freshTTL should hit the cache.
	_, err = GetOrFetch(c, context.Background(), "domains", fetch)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 fetch, got %d", calls)
	}
}

func TestGetOrFetch_FetchErrorPropagates(t *testing.T) {
	c := New(t.TempDir())

	wantErr := errors.New("boom")
	_, err := GetOrFetch(c, context.Background(), "k", func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected fetch error, got %v", err)
	}
}

func TestGetOrFetch_NilCachePassesThrough(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrFetch[int](nil, context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != 42 {
			t.Errorf("got %d, want 42", got)
		}
	}
	if calls != 2 {
		t.Errorf("expected 2 fetches with nil cache, got %d", calls)
	}
}

func TestInvalidate(t *testing.T) {
	c := New(t.TempDir())

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	if _, err := GetOrFetch(c, context.Background(), "k", fetch); err != nil {
		t.Fatal(err)
	}
	if err := c.Invalidate("k"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	if _, err := GetOrFetch(c, context.Background(), "k", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("expected refetch after invalidate, got %d fetches", calls)
	}
}

func TestGetOrFetch_StaleServedWhileRevalidating(t *testing.T) {
	c := WithTTLs(t.TempDir(), time.Nanosecond, time.Hour)

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	if _, err := GetOrFetch(c, context.Background(), "k", fetch); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)

	// Entry is now stale but within maxStale: served immediately.
	got, err := GetOrFetch(c, context.Background(), "k", fetch)
	if err != nil {
		t.Fatal(err)
	}
	if got != "v" {
		t.Errorf("got %q, want %q", got, "v")
	}
}
