// File path: internal/chat/classify.go
package chat

import "strings"

// Route selects the external answer source for an utterance that missed the
// section tree.
type Route int

const (
	// RouteCompletion forwards the utterance to the hosted text-completion
	// provider.
	RouteCompletion Route = iota
	// RouteLedger answers from the leave ledger keyed by the caller's
	// employee identity.
	RouteLedger
)

func (r Route) String() string {
	if r == RouteLedger {
		return "ledger"
	}
	return "completion"
}

var ledgerKeywords = []string{"leave", "leaves", "attendance", "balance"}

// Classify maps a normalized utterance to an external answer route. Personal
// leave-balance phrasing goes to the ledger; everything else goes to the
// text-completion provider. Policy questions about leave rules are expected
// to be answered by the tree before classification ever runs.
func Classify(normalized string) Route {
	for _, keyword := range ledgerKeywords {
		if containsWord(normalized, keyword) {
			return RouteLedger
		}
	}
	return RouteCompletion
}

// containsWord reports whether the keyword appears as a whole word.
func containsWord(text, keyword string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], keyword)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(keyword)
		beforeOK := start == 0 || !isWordByte(text[start-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
