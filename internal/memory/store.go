// File path: internal/memory/store.go
package memory

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sanara-labs/helpdesk/internal/kb"
)

// ErrUnavailable wraps any failure to reach or read the backing section
// file. Callers treat it as a generic infrastructure fault and never surface
// the underlying detail to clients.
var ErrUnavailable = errors.New("section store unavailable")

// Store is a JSONL-backed document store holding the section forest. One
// stored document per top-level section, in file order. The forest is
// read-only at request time; Seed and ReplaceAll exist for out-of-band
// import only.
type Store struct {
	path string
	mu   sync.RWMutex
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Seed writes the provided sections only when the store file is missing or
// empty, so imported content survives restarts untouched. The check and the
// write happen under one lock, so concurrent seeders cannot both observe an
// empty store.
func (s *Store) Seed(ctx context.Context, sections []kb.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.readRoots(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return s.writeAll(ctx, sections)
}

// ReplaceAll overwrites the stored forest with the provided sections.
func (s *Store) ReplaceAll(ctx context.Context, sections []kb.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAll(ctx, sections)
}

// writeAll encodes the forest to a temp file and renames it into place, so a
// failed or cancelled write leaves the previous forest intact. Caller holds
// the write lock.
func (s *Store) writeAll(ctx context.Context, sections []kb.Section) error {
	tmp := s.path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open store: %v", ErrUnavailable, err)
	}
	enc := json.NewEncoder(file)
	for _, section := range sections {
		select {
		case <-ctx.Done():
			file.Close()
			os.Remove(tmp)
			return ctx.Err()
		default:
		}
		if err := enc.Encode(kb.ToRaw(section)); err != nil {
			file.Close()
			os.Remove(tmp)
			return fmt.Errorf("encode section: %w", err)
		}
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: close store: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replace store: %v", ErrUnavailable, err)
	}
	return nil
}

// FindRoot returns the first top-level section with the exact name.
func (s *Store) FindRoot(ctx context.Context, name string) (kb.Section, bool, error) {
	roots, err := s.AllRoots(ctx)
	if err != nil {
		return kb.Section{}, false, err
	}
	for _, root := range roots {
		if root.Name == name {
			return root, true, nil
		}
	}
	return kb.Section{}, false, nil
}

// ListRoots returns the top-level section names in file order.
func (s *Store) ListRoots(ctx context.Context) ([]string, error) {
	roots, err := s.AllRoots(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roots))
	for _, root := range roots {
		names = append(names, root.Name)
	}
	return names, nil
}

// AllRoots loads the full forest in file order. A missing file is an empty
// forest, not an error.
func (s *Store) AllRoots(ctx context.Context) ([]kb.Section, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: store not initialized", ErrUnavailable)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readRoots(ctx)
}

// readRoots scans the store file. Caller holds at least the read lock.
func (s *Store) readRoots(ctx context.Context) ([]kb.Section, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open store: %v", ErrUnavailable, err)
	}
	defer file.Close()
	var roots []kb.Section
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		section, err := kb.DecodeRaw(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		roots = append(roots, section)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan store: %v", ErrUnavailable, err)
	}
	return roots, nil
}
