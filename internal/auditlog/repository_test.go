package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenAt(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndList(t *testing.T) {
	repo := openTestRepo(t)

	entry := &Entry{
		Operation:  OpPresent,
		Domain:     "my.example.com",
		Zone:       "example.com",
		RecordName: "_acme-challenge.my",
		Provider:   "dynu",
		Outcome:    OutcomeSuccess,
		DurationMs: 130,
	}
	if err := repo.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be set after save")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected timestamp to be set after save")
	}

	entries, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Zone != "example.com" || entries[0].Operation != OpPresent {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestListByDomain(t *testing.T) {
	repo := openTestRepo(t)

	for _, d := range []string{"a.example.com", "b.example.com", "a.example.com"} {
		if err := repo.Save(&Entry{Operation: OpCleanup, Domain: d, Outcome: OutcomeSuccess}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := repo.ListByDomain("a.example.com", 10)
	if err != nil {
		t.Fatalf("ListByDomain failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries for a.example.com, got %d", len(entries))
	}
}

func TestSaveSanitizesDetail(t *testing.T) {
	repo := openTestRepo(t)

	entry := &Entry{
		Operation: OpPresent,
		Domain:    "example.com",
		Outcome:   OutcomeError,
		Detail:    "record rejected: LoqVPEswCKMQv7rLbRBFBlWcDDuUAtnHGiGA1RWIgVs already present",
	}
	if err := repo.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := repo.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got := entries[0].Detail; got != "record rejected: [redacted] already present" {
		t.Errorf("detail not sanitized: %q", got)
	}
}

func TestPrune(t *testing.T) {
	repo := openTestRepo(t)

	old := &Entry{Operation: OpObtain, Domain: "example.com", Outcome: OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour)}
	recent := &Entry{Operation: OpObtain, Domain: "example.com", Outcome: OutcomeSuccess}
	if err := repo.Save(old); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(recent); err != nil {
		t.Fatal(err)
	}

	deleted, err := repo.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 entry pruned, got %d", deleted)
	}

	entries, err := repo.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry remaining, got %d", len(entries))
	}
}
