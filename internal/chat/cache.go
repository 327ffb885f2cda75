// File path: internal/chat/cache.go
package chat

import "sync"

// responseCache is a process-wide cache of answers keyed by normalized
// utterance. It is seeded with static canned entries at construction and
// appended opportunistically after successful provider calls. Entries are
// pure functions of the question text, so concurrent inserts for the same
// key are idempotent and last-writer-wins is acceptable.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func newResponseCache(seed map[string]string) *responseCache {
	entries := make(map[string]string, len(seed))
	for key, value := range seed {
		entries[key] = value
	}
	return &responseCache{entries: entries}
}

func (c *responseCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	answer, ok := c.entries[key]
	return answer, ok
}

func (c *responseCache) put(key, answer string) {
	if key == "" || answer == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = answer
}

// cannedResponses are the static seed entries for conversational pleasantries
// that should never reach the external provider.
func cannedResponses() map[string]string {
	return map[string]string{
		"hi":        "Hello! Pick a section or ask me a question.",
		"hello":     "Hello! Pick a section or ask me a question.",
		"thank you": "You're welcome!",
		"thanks":    "You're welcome!",
		"bye":       "Goodbye! Reach out any time.",
	}
}
