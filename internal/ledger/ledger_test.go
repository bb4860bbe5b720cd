package ledger

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"phishscreen/internal/model"
)

// setupTestLedger creates a temporary ledger for testing.
func setupTestLedger(t *testing.T, options ...Option) *Ledger {
	t.Helper()

	l, err := Open(t.TempDir(), DefaultOptions(), options...)
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	return l
}

// TestOpen tests ledger opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dataDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		l, err := Open(dataDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open ledger: %v", err)
		}
		defer l.Close()

		if _, err := os.Stat(filepath.Join(dataDir, dbFileName)); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
	})

	t.Run("CreateIfNotExists=false requires existing database", func(t *testing.T) {
		t.Parallel()

		_, err := Open(t.TempDir(), Options{CreateIfNotExists: false})
		if err == nil {
			t.Error("expected error for missing database")
		}
	})
}

// TestReport tests report insertion and count increments.
func TestReport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first report creates record with count 1", func(t *testing.T) {
		t.Parallel()

		l := setupTestLedger(t)
		if err := l.Report(ctx, "https://phish.example/login"); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		record, err := l.Lookup(ctx, "https://phish.example/login")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if record == nil {
			t.Fatal("expected a record")
		}
		if record.ReportCount != 1 {
			t.Errorf("ReportCount = %d, expected 1", record.ReportCount)
		}
	})

	t.Run("second report increments count and refreshes timestamp", func(t *testing.T) {
		t.Parallel()

		current := time.UnixMilli(1700000000000)
		var mu sync.Mutex
		l := setupTestLedger(t, WithClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return current
		}))

		if err := l.Report(ctx, "https://phish.example"); err != nil {
			t.Fatalf("first Report failed: %v", err)
		}
		first, err := l.Lookup(ctx, "https://phish.example")
		if err != nil || first == nil {
			t.Fatalf("Lookup after first report failed: record=%v err=%v", first, err)
		}

		mu.Lock()
		current = current.Add(90 * time.Second)
		mu.Unlock()

		if err := l.Report(ctx, "https://phish.example"); err != nil {
			t.Fatalf("second Report failed: %v", err)
		}
		second, err := l.Lookup(ctx, "https://phish.example")
		if err != nil || second == nil {
			t.Fatalf("Lookup after second report failed: record=%v err=%v", second, err)
		}

		if second.ReportCount != 2 {
			t.Errorf("ReportCount = %d, expected 2", second.ReportCount)
		}
		if second.Timestamp.Before(first.Timestamp) {
			t.Errorf("second timestamp %v is before first %v", second.Timestamp, first.Timestamp)
		}
	})

	t.Run("lookup is exact-string, no normalization", func(t *testing.T) {
		t.Parallel()

		l := setupTestLedger(t)
		if err := l.Report(ctx, "https://Phish.example/Login"); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		record, err := l.Lookup(ctx, "https://phish.example/login")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if record != nil {
			t.Error("lookup must not normalize: differently-cased URL should miss")
		}
	})

	t.Run("concurrent reports never lose increments", func(t *testing.T) {
		t.Parallel()

		l := setupTestLedger(t)
		const reporters = 20

		var wg sync.WaitGroup
		for range reporters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := l.Report(ctx, "https://raced.example"); err != nil {
					t.Errorf("Report failed: %v", err)
				}
			}()
		}
		wg.Wait()

		record, err := l.Lookup(ctx, "https://raced.example")
		if err != nil || record == nil {
			t.Fatalf("Lookup failed: record=%v err=%v", record, err)
		}
		if record.ReportCount != reporters {
			t.Errorf("ReportCount = %d, expected %d", record.ReportCount, reporters)
		}
	})
}

// TestLookupMissing tests that unknown URLs return nil without error.
func TestLookupMissing(t *testing.T) {
	t.Parallel()

	l := setupTestLedger(t)

	record, err := l.Lookup(context.Background(), "https://never-reported.example")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if record != nil {
		t.Errorf("expected nil record, got %+v", record)
	}
}

// TestList tests listing all report records.
func TestList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := setupTestLedger(t)

	urls := []string{"https://b.example", "https://a.example", "https://c.example"}
	for _, u := range urls {
		if err := l.Report(ctx, u); err != nil {
			t.Fatalf("Report(%q) failed: %v", u, err)
		}
	}

	records, err := l.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != len(urls) {
		t.Fatalf("got %d records, expected %d", len(records), len(urls))
	}

	// Ordering is stable within a session (by URL here).
	again, err := l.List(ctx)
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}
	for i := range records {
		if records[i].URL != again[i].URL {
			t.Errorf("list order changed between calls at index %d: %q vs %q", i, records[i].URL, again[i].URL)
		}
	}
}

// TestHistory tests scan history persistence and ordering.
func TestHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := setupTestLedger(t)

	base := time.UnixMilli(1700000000000)
	entries := []model.ScanHistoryEntry{
		{Type: model.ScanTypeURL, Target: "https://old.example", Result: "Safe", Date: base},
		{Type: model.ScanTypeURL, Target: "https://mid.example", Result: "Suspicious (high risk)", Date: base.Add(time.Minute)},
		{Type: model.ScanTypeEmail, Target: "Received: from...", Result: "Suspicious (medium risk)", Date: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := l.AddHistory(ctx, e); err != nil {
			t.Fatalf("AddHistory failed: %v", err)
		}
	}

	got, err := l.ListHistory(ctx, 2)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, expected 2", len(got))
	}
	if got[0].Target != "Received: from..." {
		t.Errorf("newest entry first, got %q", got[0].Target)
	}
	if got[1].Target != "https://mid.example" {
		t.Errorf("second entry = %q, expected mid.example", got[1].Target)
	}

	all, err := l.ListHistory(ctx, 0)
	if err != nil {
		t.Fatalf("ListHistory(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d entries, expected all 3", len(all))
	}
}

// TestPersistenceAcrossReopen tests that reports survive a close/reopen cycle.
func TestPersistenceAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dataDir := t.TempDir()

	l, err := Open(dataDir, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	if err := l.Report(ctx, "https://persistent.example"); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dataDir, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to reopen ledger: %v", err)
	}
	defer reopened.Close()

	record, err := reopened.Lookup(ctx, "https://persistent.example")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if record == nil || record.ReportCount != 1 {
		t.Errorf("record = %+v, expected persisted count 1", record)
	}
}
