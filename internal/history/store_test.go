package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	acts := []blinklib.Activation{
		{Title: "Blink", StartedAt: base, EndedAt: base.Add(2 * time.Second)},
		{Title: "Stretch", StartedAt: base.Add(time.Minute), EndedAt: base.Add(time.Minute + 30*time.Second), Dismissed: true},
		{Title: "Blink", StartedAt: base.Add(2 * time.Minute), EndedAt: base.Add(2 * time.Minute), Skipped: true},
	}
	for _, a := range acts {
		if err := s.Record(a); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Newest first.
	if !entries[0].Skipped || entries[0].Title != "Blink" {
		t.Errorf("entry 0 = %+v, want the skipped Blink", entries[0])
	}
	if !entries[1].Dismissed || entries[1].Title != "Stretch" {
		t.Errorf("entry 1 = %+v, want the dismissed Stretch", entries[1])
	}
	if entries[2].Dismissed || entries[2].Skipped {
		t.Errorf("entry 2 = %+v, want a completed activation", entries[2])
	}

	if !entries[2].StartedAt.Equal(base) || !entries[2].EndedAt.Equal(base.Add(2*time.Second)) {
		t.Errorf("timestamps not preserved: %+v", entries[2])
	}
	for i, e := range entries {
		if e.Id == "" {
			t.Errorf("entry %d has no id", i)
		}
	}
}

func TestStoreRecentLimit(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		a := blinklib.Activation{
			Title:     "Blink",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			EndedAt:   base.Add(time.Duration(i)*time.Minute + 2*time.Second),
		}
		if err := s.Record(a); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Recent(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].StartedAt.After(entries[1].StartedAt) {
		t.Errorf("entries not newest first: %v then %v",
			entries[0].StartedAt, entries[1].StartedAt)
	}
}

func TestStoreEmpty(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("empty store returned %d entries", len(entries))
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	a := blinklib.Activation{
		Title:     "Blink",
		StartedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		EndedAt:   time.Date(2026, 1, 1, 12, 0, 2, 0, time.UTC),
	}
	if err := s.Record(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	entries, err := s2.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Title != "Blink" {
		t.Errorf("entries after reopen = %+v", entries)
	}
}
