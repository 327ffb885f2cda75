// File path: internal/kb/resolver_test.go
package kb

import (
	"context"
	"errors"
	"testing"
)

type sliceSource struct {
	roots []Section
	err   error
}

func (s *sliceSource) FindRoot(ctx context.Context, name string) (Section, bool, error) {
	if s.err != nil {
		return Section{}, false, s.err
	}
	for _, root := range s.roots {
		if root.Name == name {
			return root, true, nil
		}
	}
	return Section{}, false, nil
}

func (s *sliceSource) ListRoots(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	names := make([]string, 0, len(s.roots))
	for _, root := range s.roots {
		names = append(names, root.Name)
	}
	return names, nil
}

func (s *sliceSource) AllRoots(ctx context.Context) ([]Section, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.roots, nil
}

func TestResolveTopLevelPrecedence(t *testing.T) {
	source := &sliceSource{roots: []Section{
		{
			Name: "Tech",
			Children: []Section{
				{Name: "HR", Questions: []QAPair{{Question: "nested", Answer: "nested answer"}}},
			},
		},
		{Name: "HR", Questions: []QAPair{{Question: "top", Answer: "top answer"}}},
	}}
	resolver := NewResolver(source)
	section, ok, err := resolver.Resolve(context.Background(), "HR")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !ok {
		t.Fatal("expected HR to resolve")
	}
	if len(section.Questions) != 1 || section.Questions[0].Answer != "top answer" {
		t.Fatalf("expected top-level HR node, got %+v", section)
	}
}

func TestResolveNestedPreOrder(t *testing.T) {
	source := &sliceSource{roots: []Section{
		{
			Name: "A",
			Children: []Section{
				{Name: "Deep", Children: []Section{{Name: "Target", Questions: []QAPair{{Question: "q", Answer: "first"}}}}},
			},
		},
		{
			Name:     "B",
			Children: []Section{{Name: "Target", Questions: []QAPair{{Question: "q", Answer: "second"}}}},
		},
	}}
	resolver := NewResolver(source)
	section, ok, err := resolver.Resolve(context.Background(), "Target")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !ok {
		t.Fatal("expected Target to resolve")
	}
	if section.Questions[0].Answer != "first" {
		t.Fatalf("expected pre-order first match, got %+v", section)
	}
}

func TestResolveMissIsNotError(t *testing.T) {
	source := &sliceSource{roots: []Section{{Name: "Only"}}}
	resolver := NewResolver(source)
	_, ok, err := resolver.Resolve(context.Background(), "DoesNotExist")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if ok {
		t.Fatal("expected not found")
	}
}

func TestResolveCaseSensitive(t *testing.T) {
	source := &sliceSource{roots: []Section{{Name: "Recruitment"}}}
	resolver := NewResolver(source)
	if _, ok, _ := resolver.Resolve(context.Background(), "recruitment"); ok {
		t.Fatal("section names must match case-sensitively")
	}
}

func TestResolvePropagatesStoreError(t *testing.T) {
	wantErr := errors.New("store down")
	resolver := NewResolver(&sliceSource{err: wantErr})
	_, _, err := resolver.Resolve(context.Background(), "HR")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestResolveDepthCap(t *testing.T) {
	leaf := Section{Name: "Bottom"}
	node := leaf
	for i := 0; i < MaxDepth+4; i++ {
		node = Section{Name: "level", Children: []Section{node}}
	}
	resolver := NewResolver(&sliceSource{roots: []Section{node}})
	_, ok, err := resolver.Resolve(context.Background(), "Bottom")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if ok {
		t.Fatal("nodes beyond the depth cap should behave as not found")
	}
}
