// File path: internal/chat/policy.go
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sanara-labs/helpdesk/internal/common"
	"github.com/sanara-labs/helpdesk/internal/kb"
	"github.com/sanara-labs/helpdesk/internal/llm"
)

// FallbackAnswer is returned verbatim when no literal match and no external
// answer exists. Clients compare against the exact string to decide whether
// to offer human escalation, so it must never change.
const FallbackAnswer = "Sorry, I don't have an answer for that."

// ErrSectionNotFound reports that the requested section matches no node in
// the forest. It is a navigation-level outcome, not an infrastructure fault.
var ErrSectionNotFound = errors.New("section not found")

// LedgerLookup answers leave-balance questions for a known employee.
type LedgerLookup interface {
	Lookup(ctx context.Context, empID string) (string, bool, error)
}

// Navigation is the response for section browsing: either the child section
// names or, for a leaf, the literal question list for client-side display.
type Navigation struct {
	SubSections []string    `json:"sub_sections"`
	Questions   []kb.QAPair `json:"questions"`
}

// MarshalJSON emits exactly one of the two navigation shapes. A leaf always
// carries a questions array, even when empty, so clients can render it
// without a nil check.
func (n Navigation) MarshalJSON() ([]byte, error) {
	if len(n.SubSections) > 0 {
		return json.Marshal(struct {
			SubSections []string `json:"sub_sections"`
		}{n.SubSections})
	}
	questions := n.Questions
	if questions == nil {
		questions = []kb.QAPair{}
	}
	return json.Marshal(struct {
		Questions []kb.QAPair `json:"questions"`
	}{questions})
}

// Service orchestrates section resolution, literal question matching, and
// the external answer sources.
type Service struct {
	resolver        *kb.Resolver
	provider        llm.Provider
	ledger          LedgerLookup
	cache           *responseCache
	providerTimeout time.Duration
}

// Option customizes a Service.
type Option func(*Service)

// WithProvider attaches the hosted text-completion provider.
func WithProvider(provider llm.Provider) Option {
	return func(s *Service) { s.provider = provider }
}

// WithLedger attaches the leave-ledger answer source.
func WithLedger(ledger LedgerLookup) Option {
	return func(s *Service) { s.ledger = ledger }
}

// WithProviderTimeout bounds a single external provider call.
func WithProviderTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.providerTimeout = timeout
		}
	}
}

func NewService(source kb.SectionSource, opts ...Option) *Service {
	svc := &Service{
		resolver:        kb.NewResolver(source),
		cache:           newResponseCache(cannedResponses()),
		providerTimeout: 20 * time.Second,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ChildrenOrQuestions resolves the section and returns either its child
// names (navigation) or, for a childless node, its questions verbatim.
func (s *Service) ChildrenOrQuestions(ctx context.Context, sectionName string) (Navigation, error) {
	section, found, err := s.resolver.Resolve(ctx, sectionName)
	if err != nil {
		return Navigation{}, fmt.Errorf("resolve section: %w", err)
	}
	if !found {
		return Navigation{}, ErrSectionNotFound
	}
	if len(section.Children) > 0 {
		return Navigation{SubSections: section.ChildNames()}, nil
	}
	questions := section.Questions
	if questions == nil {
		questions = []kb.QAPair{}
	}
	return Navigation{Questions: questions}, nil
}

// Answer runs the chat pipeline: resolve, match, then chain to an external
// answer source, and finally the fixed fallback sentence. Matching misses
// and unresolved sections are normal control flow; only store failures
// surface as errors.
func (s *Service) Answer(ctx context.Context, sectionName, utterance, empID string) (string, error) {
	logger := common.Logger()
	normalized := kb.NormalizeUtterance(utterance)
	section, found, err := s.resolver.Resolve(ctx, sectionName)
	if err != nil {
		return "", fmt.Errorf("resolve section: %w", err)
	}
	if found {
		if answer, hit := kb.MatchQuestion(section, utterance); hit {
			return answer, nil
		}
	} else {
		logger.Debug("chat: section unresolved, skipping tree match", "section", sectionName)
	}
	route := Classify(normalized)
	// Ledger-routed utterances from an identified caller bypass the cache:
	// a completion answer cached for the same question text must not shadow
	// the employee's live balance.
	if !s.ledgerEligible(route, empID) {
		if answer, hit := s.cache.get(normalized); hit {
			logger.Debug("chat: cache hit", "utterance", normalized)
			return answer, nil
		}
	}
	return s.externalAnswer(ctx, route, normalized, utterance, empID), nil
}

func (s *Service) ledgerEligible(route Route, empID string) bool {
	return route == RouteLedger && s.ledger != nil && strings.TrimSpace(empID) != ""
}

// externalAnswer consults the route-selected external source. Provider and
// ledger failures are recovered locally with the fallback sentence and never
// surface to the caller.
func (s *Service) externalAnswer(ctx context.Context, route Route, normalized, utterance, empID string) string {
	logger := common.Logger()
	if s.ledgerEligible(route, empID) {
		summary, found, err := s.ledger.Lookup(ctx, empID)
		if err != nil {
			logger.Warn("chat: ledger lookup failed", "error", err)
			return FallbackAnswer
		}
		if found {
			// Ledger answers are live per-employee data; never cached.
			return summary
		}
		logger.Debug("chat: no ledger row, deferring to completion", "emp_id", empID)
	}
	if s.provider == nil {
		return FallbackAnswer
	}
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	messages := []llm.Message{
		{Role: "system", Content: SystemPrompt()},
		{Role: "user", Content: utterance},
	}
	answer, err := s.provider.Chat(callCtx, messages)
	if err != nil {
		logger.Warn("chat: provider call failed", "provider", s.provider.Name(), "error", err)
		return FallbackAnswer
	}
	answer = TruncateSentences(answer, 2)
	if strings.TrimSpace(answer) == "" {
		return FallbackAnswer
	}
	if !s.ledgerEligible(route, empID) {
		s.cache.put(normalized, answer)
	}
	return answer
}

// TruncateSentences keeps at most limit sentences of the text. Sentence
// boundaries are '.', '!' and '?', optionally followed by closing quotes or
// brackets, then whitespace or end of input.
func TruncateSentences(text string, limit int) string {
	trimmed := strings.TrimSpace(text)
	if limit <= 0 || trimmed == "" {
		return trimmed
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '.', '!', '?':
			end := i + 1
			for end < len(trimmed) && isClosingMark(trimmed[end]) {
				end++
			}
			if end == len(trimmed) || isSentenceGap(trimmed[end]) {
				count++
				if count == limit {
					return strings.TrimSpace(trimmed[:end])
				}
				i = end - 1
			}
		}
	}
	return trimmed
}

func isClosingMark(c byte) bool {
	return c == '"' || c == '\'' || c == ')' || c == ']'
}

func isSentenceGap(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t'
}
