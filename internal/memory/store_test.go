// File path: internal/memory/store_test.go
package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sanara-labs/helpdesk/internal/kb"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "sections.jsonl"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	forest := []kb.Section{
		{Name: "Recruitment", Questions: []kb.QAPair{{Question: "q", Answer: "a"}}},
		{Name: "HR Policies", Children: []kb.Section{{Name: "Leave"}}},
	}
	if err := store.ReplaceAll(ctx, forest); err != nil {
		t.Fatalf("replace: %v", err)
	}
	names, err := store.ListRoots(ctx)
	if err != nil {
		t.Fatalf("list roots: %v", err)
	}
	if len(names) != 2 || names[0] != "Recruitment" || names[1] != "HR Policies" {
		t.Fatalf("unexpected roots %v", names)
	}
	root, ok, err := store.FindRoot(ctx, "HR Policies")
	if err != nil || !ok {
		t.Fatalf("find root: %v %v", ok, err)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "Leave" {
		t.Fatalf("nested shape lost: %+v", root)
	}
}

func TestStoreEmptyFileIsEmptyForest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	roots, err := store.AllRoots(ctx)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(roots) != 0 {
		t.Fatalf("expected empty forest, got %d roots", len(roots))
	}
}

func TestStoreSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	if err := store.Seed(ctx, []kb.Section{{Name: "First"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Seed(ctx, []kb.Section{{Name: "Second"}}); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	names, err := store.ListRoots(ctx)
	if err != nil {
		t.Fatalf("list roots: %v", err)
	}
	if len(names) != 1 || names[0] != "First" {
		t.Fatalf("seed must not overwrite existing content: %v", names)
	}
}

func TestStoreConcurrentSeedWritesOnce(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	var wg sync.WaitGroup
	for _, name := range []string{"First", "Second"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := store.Seed(ctx, []kb.Section{{Name: name}}); err != nil {
				t.Errorf("seed %s: %v", name, err)
			}
		}(name)
	}
	wg.Wait()
	names, err := store.ListRoots(ctx)
	if err != nil {
		t.Fatalf("list roots: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("exactly one seeder must win, got roots %v", names)
	}
}

func TestStoreCancelledReplaceKeepsForest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	if err := store.ReplaceAll(ctx, []kb.Section{{Name: "Keep"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := store.ReplaceAll(cancelled, []kb.Section{{Name: "Partial"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	names, err := store.ListRoots(ctx)
	if err != nil {
		t.Fatalf("list roots: %v", err)
	}
	if len(names) != 1 || names[0] != "Keep" {
		t.Fatalf("cancelled write must leave previous forest intact, got %v", names)
	}
}

func TestStorePersistsRawFieldNames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.jsonl")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	forest := []kb.Section{{Name: "Tech", Children: []kb.Section{{Name: "AI"}}}}
	if err := store.ReplaceAll(ctx, forest); err != nil {
		t.Fatalf("replace: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	content := string(data)
	for _, want := range []string{`"section_name":"Tech"`, `"sub_section_name":"AI"`} {
		if !strings.Contains(content, want) {
			t.Fatalf("stored document missing %s: %s", want, content)
		}
	}
}
