// File path: internal/kb/types.go
package kb

import "strings"

// QAPair is a single literal question/answer entry attached to a section.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Section is a node in the topic tree. Names are matched exactly and
// case-sensitively; questions are matched after normalization.
type Section struct {
	Name      string    `json:"name"`
	Questions []QAPair  `json:"questions,omitempty"`
	Children  []Section `json:"children,omitempty"`
}

// MaxDepth bounds every traversal over the forest. Real data is at most a
// few levels deep; anything beyond the cap is treated as malformed and the
// walk stops there.
const MaxDepth = 64

// ChildNames returns the ordered names of the section's direct children.
func (s Section) ChildNames() []string {
	if len(s.Children) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Children))
	for _, child := range s.Children {
		names = append(names, child.Name)
	}
	return names
}

// NormalizeUtterance trims surrounding whitespace and lowercases the input.
// Question matching compares normalized forms on both sides.
func NormalizeUtterance(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
