// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/seonho-dev/tutorgraph/ent/llmrequestevent"
	"github.com/seonho-dev/tutorgraph/ent/missingconcept"
	"github.com/seonho-dev/tutorgraph/ent/profile"
	"github.com/seonho-dev/tutorgraph/ent/schema"
	"github.com/seonho-dev/tutorgraph/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	missingconceptFields := schema.MissingConcept{}.Fields()
	_ = missingconceptFields
	// missingconceptDescHitCount is the schema descriptor for hit_count field.
	missingconceptDescHitCount := missingconceptFields[1].Descriptor()
	// missingconcept.DefaultHitCount holds the default value on creation for the hit_count field.
	missingconcept.DefaultHitCount = missingconceptDescHitCount.Default.(int)
	// missingconceptDescLastSeen is the schema descriptor for last_seen field.
	missingconceptDescLastSeen := missingconceptFields[2].Descriptor()
	// missingconcept.DefaultLastSeen holds the default value on creation for the last_seen field.
	missingconcept.DefaultLastSeen = missingconceptDescLastSeen.Default.(func() time.Time)
	// missingconcept.UpdateDefaultLastSeen holds the default value on update for the last_seen field.
	missingconcept.UpdateDefaultLastSeen = missingconceptDescLastSeen.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescSchemaVersion is the schema descriptor for schema_version field.
	profileDescSchemaVersion := profileFields[1].Descriptor()
	// profile.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	profile.DefaultSchemaVersion = profileDescSchemaVersion.Default.(int)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[1].Descriptor()
	// turnevent.DefaultSessionID holds the default value on creation for the session_id field.
	turnevent.DefaultSessionID = turneventDescSessionID.Default.(string)
	// turneventDescInput is the schema descriptor for input field.
	turneventDescInput := turneventFields[5].Descriptor()
	// turnevent.DefaultInput holds the default value on creation for the input field.
	turnevent.DefaultInput = turneventDescInput.Default.(string)
	// turneventDescExplainedConcept is the schema descriptor for explained_concept field.
	turneventDescExplainedConcept := turneventFields[6].Descriptor()
	// turnevent.DefaultExplainedConcept holds the default value on creation for the explained_concept field.
	turnevent.DefaultExplainedConcept = turneventDescExplainedConcept.Default.(string)
}
