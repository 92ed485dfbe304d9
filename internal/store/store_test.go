package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"router", "assess", "explanation"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
			RequestBody:  "prompt",
			ResponseBody: "reply",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "explanation" {
		t.Errorf("first event purpose = %q, want explanation", events[0].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].RequestBody != "prompt" || events[0].ResponseBody != "reply" {
		t.Error("expected request/response bodies to round-trip")
	}

	// Limit applies.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events with limit 1", len(events))
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"router", "router", "assess"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      purpose,
			InputTokens:  10,
			OutputTokens: 5,
			LatencyMs:    100,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}

	byPurpose := make(map[string]LLMUsageStats)
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	router := byPurpose["router"]
	if router.Calls != 2 {
		t.Errorf("router calls = %d, want 2", router.Calls)
	}
	if router.InputTokens != 20 {
		t.Errorf("router input tokens = %d, want 20", router.InputTokens)
	}
	if router.AvgLatencyMs != 100 {
		t.Errorf("router avg latency = %d, want 100", router.AvgLatencyMs)
	}
}

func TestTurnStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{LearnerID: "demo", SessionID: "s1", Task: "greeting", ModeBefore: "idle", ModeAfter: "idle"},
		{LearnerID: "demo", SessionID: "s1", Task: "tutor_flow", ModeBefore: "idle", ModeAfter: "waiting_diagnostic"},
		{LearnerID: "demo", SessionID: "s2", Task: "tutor_flow", ModeBefore: "waiting_diagnostic", ModeAfter: "waiting_continuation"},
		{LearnerID: "other", SessionID: "s3", Task: "chitchat", ModeBefore: "idle", ModeAfter: "idle"},
	}
	for i, turn := range turns {
		if err := repo.AppendTurn(ctx, turn); err != nil {
			t.Fatalf("append turn %d: %v", i, err)
		}
	}

	stats, err := repo.TurnStatsFor(ctx, "demo")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalTurns != 3 {
		t.Errorf("total turns = %d, want 3", stats.TotalTurns)
	}
	if stats.TurnsByTask["tutor_flow"] != 2 {
		t.Errorf("tutor_flow turns = %d, want 2", stats.TurnsByTask["tutor_flow"])
	}
	if stats.Sessions != 2 {
		t.Errorf("sessions = %d, want 2", stats.Sessions)
	}
	if stats.LastActivity.IsZero() {
		t.Error("expected non-zero last activity")
	}
}

func TestMissingConceptUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.RecordMissingConcept(ctx, "위상수학"); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if err := repo.RecordMissingConcept(ctx, "해석학"); err != nil {
		t.Fatalf("record: %v", err)
	}

	top, err := repo.TopMissingConcepts(ctx, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d missing concepts, want 2", len(top))
	}
	if top[0].Name != "위상수학" || top[0].HitCount != 3 {
		t.Errorf("top = %q/%d, want 위상수학/3", top[0].Name, top[0].HitCount)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	rec, err := repo.Load(ctx, "demo")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil profile when none exists")
	}

	err = repo.Save(ctx, &ProfileRecord{
		LearnerID:         "demo",
		SchemaVersion:     1,
		ExplainedConcepts: []string{"등식", "방정식"},
		ExplanationCount:  map[string]int{"등식": 1, "방정식": 2},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Load(ctx, "demo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil profile")
	}
	if len(rec.ExplainedConcepts) != 2 || rec.ExplainedConcepts[0] != "등식" {
		t.Errorf("explained concepts = %v", rec.ExplainedConcepts)
	}
	if rec.ExplanationCount["방정식"] != 2 {
		t.Errorf("explanation count = %v", rec.ExplanationCount)
	}

	// Save again updates in place.
	rec.ExplainedConcepts = append(rec.ExplainedConcepts, "일차방정식")
	rec.ExplanationCount["일차방정식"] = 1
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("resave: %v", err)
	}

	rec, err = repo.Load(ctx, "demo")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(rec.ExplainedConcepts) != 3 {
		t.Errorf("explained concepts after update = %v", rec.ExplainedConcepts)
	}
}

func TestProfileReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &ProfileRecord{
		LearnerID:         "demo",
		SchemaVersion:     1,
		ExplainedConcepts: []string{"등식"},
		ExplanationCount:  map[string]int{"등식": 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Reset(ctx, "demo"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec, err := repo.Load(ctx, "demo")
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if rec != nil {
		t.Error("expected nil profile after reset")
	}

	// Resetting a missing profile is not an error.
	if err := repo.Reset(ctx, "demo"); err != nil {
		t.Errorf("reset missing: %v", err)
	}
}
