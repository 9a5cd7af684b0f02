package questionbank

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// Bank holds the loaded question collection.
type Bank struct {
	questions []Question
}

// New creates a Bank over the given questions. Source order is preserved.
func New(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// Default returns a Bank over the built-in question set.
func Default() *Bank {
	return New(seedQuestions)
}

// LoadFile reads a question bank from a JSON file, validating it against
// the bank schema before decoding.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	if err := validateBank(data); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	if err := checkIDs(questions); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}

	return New(questions), nil
}

// All returns every question in source order.
func (b *Bank) All() []Question {
	return b.questions
}

// ForTopic returns the questions whose topic matches, case-insensitively,
// preserving source order.
func (b *Bank) ForTopic(topic string) []Question {
	var out []Question
	for _, q := range b.questions {
		if strings.EqualFold(q.Topic, topic) {
			out = append(out, q)
		}
	}
	return out
}

// Topics returns the distinct topics in the bank, in first-seen order.
func (b *Bank) Topics() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.questions {
		key := strings.ToLower(q.Topic)
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// Sample draws n distinct questions uniformly at random without replacement.
// When the pool holds fewer than n questions, n is clamped to the pool size
// rather than failing.
func Sample(questions []Question, n int) []Question {
	if n > len(questions) {
		n = len(questions)
	}
	if n <= 0 {
		return nil
	}

	perm := rand.Perm(len(questions))
	out := make([]Question, n)
	for i := 0; i < n; i++ {
		out[i] = questions[perm[i]]
	}
	return out
}

// checkIDs rejects duplicate question IDs, which would break asked-ID tracking.
func checkIDs(questions []Question) error {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
