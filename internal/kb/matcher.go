// File path: internal/kb/matcher.go
package kb

// MatchQuestion searches the subtree rooted at section for a question that
// equals the normalized utterance. Scan order mirrors how the UI presents a
// section: the node's own questions first, then each direct child's
// questions, then the deeper descendants, left to right. The same
// own-then-children order repeats at every depth, and the first match wins.
// The second return reports whether an answer was found; a miss is a normal
// result.
func MatchQuestion(section Section, utterance string) (string, bool) {
	normalized := NormalizeUtterance(utterance)
	if normalized == "" {
		return "", false
	}
	if answer, ok := matchDirect(section, normalized); ok {
		return answer, true
	}
	return matchDescendants(section, normalized, 0)
}

// matchDirect scans only the node's own questions, declaration order.
func matchDirect(section Section, normalized string) (string, bool) {
	for _, qa := range section.Questions {
		if NormalizeUtterance(qa.Question) == normalized {
			return qa.Answer, true
		}
	}
	return "", false
}

// matchDescendants scans the direct children's questions one breadth level,
// then descends into each child's subtree in turn.
func matchDescendants(section Section, normalized string, depth int) (string, bool) {
	if depth >= MaxDepth {
		return "", false
	}
	for _, child := range section.Children {
		if answer, ok := matchDirect(child, normalized); ok {
			return answer, true
		}
	}
	for _, child := range section.Children {
		if answer, ok := matchDescendants(child, normalized, depth+1); ok {
			return answer, true
		}
	}
	return "", false
}
