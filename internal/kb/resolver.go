// File path: internal/kb/resolver.go
package kb

import "context"

// SectionSource is the read-only lookup capability the resolver consumes
// from the backing section store.
type SectionSource interface {
	// FindRoot returns the first top-level section with the exact name.
	FindRoot(ctx context.Context, name string) (Section, bool, error)
	// ListRoots returns the top-level section names in store order.
	ListRoots(ctx context.Context) ([]string, error)
	// AllRoots returns the full forest in store order.
	AllRoots(ctx context.Context) ([]Section, error)
}

// Resolver locates a section anywhere in the forest by exact name.
type Resolver struct {
	source SectionSource
}

func NewResolver(source SectionSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve finds the section named target. A top-level match is authoritative
// even when a deeper node elsewhere shares the name; otherwise the roots are
// scanned pre-order in store order and the first match wins. A miss is a
// normal result, not an error.
func (r *Resolver) Resolve(ctx context.Context, target string) (Section, bool, error) {
	if root, ok, err := r.source.FindRoot(ctx, target); err != nil {
		return Section{}, false, err
	} else if ok {
		return root, true, nil
	}
	roots, err := r.source.AllRoots(ctx)
	if err != nil {
		return Section{}, false, err
	}
	for _, root := range roots {
		if found, ok := findInSubtree(root, target); ok {
			return found, true, nil
		}
	}
	return Section{}, false, nil
}

type frame struct {
	section Section
	depth   int
}

// findInSubtree performs an explicit-stack pre-order walk over root's
// children. Nodes past MaxDepth are skipped rather than descended into.
func findInSubtree(root Section, target string) (Section, bool) {
	stack := make([]frame, 0, len(root.Children))
	for i := len(root.Children) - 1; i >= 0; i-- {
		stack = append(stack, frame{section: root.Children[i], depth: 1})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.section.Name == target {
			return top.section, true
		}
		if top.depth >= MaxDepth {
			continue
		}
		for i := len(top.section.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{section: top.section.Children[i], depth: top.depth + 1})
		}
	}
	return Section{}, false
}
