package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// TurnEventData captures one completed dialogue turn.
type TurnEventData struct {
	LearnerID        string
	SessionID        string
	Task             string
	ModeBefore       string
	ModeAfter        string
	Input            string
	ExplainedConcept string
}

// TurnRecord is a persisted dialogue turn.
type TurnRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// TurnStats aggregates dialogue activity for one learner.
type TurnStats struct {
	TotalTurns   int
	Sessions     int
	TurnsByTask  map[string]int
	LastActivity time.Time
}

// MissingConceptRecord is a concept requested by learners but absent
// from the knowledge graph.
type MissingConceptRecord struct {
	Name     string
	HitCount int
	LastSeen time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendTurn records a completed dialogue turn.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// RecordMissingConcept upserts a graph-miss for the given concept name,
	// incrementing its hit count if already recorded.
	RecordMissingConcept(ctx context.Context, name string) error

	// QueryLLMEvents returns LLM events newest-first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// TurnStatsFor aggregates dialogue activity for one learner.
	TurnStatsFor(ctx context.Context, learnerID string) (*TurnStats, error)

	// TopMissingConcepts returns graph misses ordered by hit count.
	TopMissingConcepts(ctx context.Context, limit int) ([]MissingConceptRecord, error)
}

// ProfileRecord is the durable learning memory for one learner.
type ProfileRecord struct {
	LearnerID         string
	SchemaVersion     int
	ExplainedConcepts []string
	ExplanationCount  map[string]int
	UpdatedAt         time.Time
}

// ProfileRepo persists learner profiles keyed by learner ID.
type ProfileRepo interface {
	// Load returns the profile for learnerID, or nil if none exists.
	Load(ctx context.Context, learnerID string) (*ProfileRecord, error)

	// Save upserts the profile.
	Save(ctx context.Context, rec *ProfileRecord) error

	// Reset deletes the profile for learnerID. Missing profiles are not an error.
	Reset(ctx context.Context, learnerID string) error
}
