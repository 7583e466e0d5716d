package slot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// backendContract exercises the Backend behavior every medium must share.
func backendContract(t *testing.T, backend Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing slot reads as absent", func(t *testing.T) {
		_, ok, err := backend.Get(ctx, "coversync_missing")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Error("expected absent slot")
		}
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		if err := backend.Put(ctx, "coversync_clients", `[{"id":1}]`); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		payload, ok, err := backend.Get(ctx, "coversync_clients")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("expected slot to exist")
		}
		if payload != `[{"id":1}]` {
			t.Errorf("payload mismatch: %q", payload)
		}
	})

	t.Run("put overwrites the whole slot", func(t *testing.T) {
		if err := backend.Put(ctx, "coversync_clients", `[]`); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		payload, _, err := backend.Get(ctx, "coversync_clients")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if payload != `[]` {
			t.Errorf("expected overwrite, got %q", payload)
		}
	})

	t.Run("slots are independent", func(t *testing.T) {
		if err := backend.Put(ctx, "coversync_policies", `[{"id":9}]`); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		payload, _, err := backend.Get(ctx, "coversync_clients")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if payload != `[]` {
			t.Errorf("writing one slot touched another: %q", payload)
		}
	})
}

func TestMemoryBackend(t *testing.T) {
	backend := NewMemory()
	defer backend.Close()
	backendContract(t, backend)
}

func TestFileBackend(t *testing.T) {
	backend, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	defer backend.Close()
	backendContract(t, backend)
}

func TestFileBackendPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := first.Put(ctx, "coversync_claims", `[{"id":3}]`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	first.Close()

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	defer second.Close()

	payload, ok, err := second.Get(ctx, "coversync_claims")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || payload != `[{"id":3}]` {
		t.Errorf("payload not durable: ok=%v payload=%q", ok, payload)
	}
}

func TestFileBackendLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	defer backend.Close()

	for i := 0; i < 5; i++ {
		if err := backend.Put(ctx, "coversync_clients", `[]`); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestSQLiteBackend(t *testing.T) {
	backend, err := NewSQLite(filepath.Join(t.TempDir(), "slots.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer backend.Close()
	backendContract(t, backend)
}

func TestSQLiteBackendPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "slots.db")

	first, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	if err := first.Put(ctx, "coversync_policies", `[{"id":1}]`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	first.Close()

	second, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer second.Close()

	payload, ok, err := second.Get(ctx, "coversync_policies")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || payload != `[{"id":1}]` {
		t.Errorf("payload not durable: ok=%v payload=%q", ok, payload)
	}
}
