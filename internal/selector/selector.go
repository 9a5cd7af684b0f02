// Package selector picks the next interview question based on how the
// candidate is doing. Strong answers raise the difficulty, weak answers
// lower it, and middling answers hold steady.
package selector

import (
	"github.com/neutrino09/intervu/internal/classify"
	"github.com/neutrino09/intervu/internal/questionbank"
)

// Score thresholds for shifting difficulty.
const (
	raiseAt = 0.8
	lowerAt = 0.4
)

// Starting picks the first question for a candidate of the given experience
// level. Beginners start easy, intermediates medium, advanced candidates
// hard. When no question exists at the target difficulty the first question
// in the pool is used.
func Starting(level classify.Level, pool []questionbank.Question) (questionbank.Question, bool) {
	if len(pool) == 0 {
		return questionbank.Question{}, false
	}

	target := startingDifficulty(level)
	for _, q := range pool {
		if q.Level == target {
			return q, true
		}
	}
	return pool[0], true
}

func startingDifficulty(level classify.Level) questionbank.Level {
	switch level {
	case classify.Beginner:
		return questionbank.LevelEasy
	case classify.Advanced:
		return questionbank.LevelHard
	default:
		return questionbank.LevelMedium
	}
}

// Next picks the question to ask after an answer scored lastScore on a
// question of difficulty lastLevel. Questions whose IDs appear in asked are
// never repeated. When no unasked question exists at the target difficulty,
// one at lastLevel is preferred before falling back to pool order. Returns
// false when every question has been asked.
func Next(lastScore float64, lastLevel questionbank.Level, pool []questionbank.Question, asked map[string]bool) (questionbank.Question, bool) {
	target := nextDifficulty(lastScore, lastLevel)

	for _, q := range pool {
		if !asked[q.ID] && q.Level == target {
			return q, true
		}
	}
	for _, q := range pool {
		if !asked[q.ID] && q.Level == lastLevel {
			return q, true
		}
	}
	for _, q := range pool {
		if !asked[q.ID] {
			return q, true
		}
	}
	return questionbank.Question{}, false
}

func nextDifficulty(lastScore float64, lastLevel questionbank.Level) questionbank.Level {
	switch {
	case lastScore >= raiseAt:
		return questionbank.LevelHard
	case lastScore <= lowerAt:
		return questionbank.LevelEasy
	default:
		return lastLevel
	}
}
