// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/neutrino09/intervu/ent/interview"
	"github.com/neutrino09/intervu/ent/llmrequestevent"
	"github.com/neutrino09/intervu/ent/schema"
	"github.com/neutrino09/intervu/ent/trainingexample"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interviewFields := schema.Interview{}.Fields()
	_ = interviewFields
	// interviewDescExperienceLevel is the schema descriptor for experience_level field.
	interviewDescExperienceLevel := interviewFields[3].Descriptor()
	// interview.DefaultExperienceLevel holds the default value on creation for the experience_level field.
	interview.DefaultExperienceLevel = interviewDescExperienceLevel.Default.(string)
	// interviewDescConductedAt is the schema descriptor for conducted_at field.
	interviewDescConductedAt := interviewFields[8].Descriptor()
	// interview.DefaultConductedAt holds the default value on creation for the conducted_at field.
	interview.DefaultConductedAt = interviewDescConductedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	trainingexampleFields := schema.TrainingExample{}.Fields()
	_ = trainingexampleFields
	// trainingexampleDescCreatedAt is the schema descriptor for created_at field.
	trainingexampleDescCreatedAt := trainingexampleFields[4].Descriptor()
	// trainingexample.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingexample.DefaultCreatedAt = trainingexampleDescCreatedAt.Default.(func() time.Time)
}
