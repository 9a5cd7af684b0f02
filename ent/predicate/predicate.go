// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Interview is the predicate function for interview builders.
type Interview func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// TrainingExample is the predicate function for trainingexample builders.
type TrainingExample func(*sql.Selector)
