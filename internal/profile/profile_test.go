package profile

import (
	"testing"

	"github.com/seonho-dev/tutorgraph/internal/store"
)

func TestMarkExplainedOrderAndDedup(t *testing.T) {
	p := New("demo")

	p.MarkExplained("방정식")
	p.MarkExplained("일차식")
	p.MarkExplained("방정식") // repeat bumps count, not order

	got := p.Explained()
	want := []string{"방정식", "일차식"}
	if len(got) != len(want) {
		t.Fatalf("explained = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("explained[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if p.ExplanationCount("방정식") != 2 {
		t.Errorf("count = %d, want 2", p.ExplanationCount("방정식"))
	}
	if !p.Knows("일차식") {
		t.Error("expected 일차식 to be known")
	}
	if p.Knows("함수") {
		t.Error("함수 should not be known")
	}
}

func TestMarkKnownDoesNotCount(t *testing.T) {
	p := New("demo")
	p.MarkKnown("등식")

	if !p.Knows("등식") {
		t.Error("expected 등식 known")
	}
	if p.ExplanationCount("등식") != 0 {
		t.Errorf("count = %d, want 0", p.ExplanationCount("등식"))
	}
}

func TestWeakConcepts(t *testing.T) {
	p := New("demo")
	p.MarkExplained("이항")
	p.MarkExplained("이항")
	p.MarkExplained("이항")
	p.MarkExplained("계수")
	p.MarkExplained("계수")
	p.MarkExplained("함수")

	weak := p.WeakConcepts()
	if len(weak) != 2 {
		t.Fatalf("weak = %v, want 2 entries", weak)
	}
	if weak[0] != "이항" || weak[1] != "계수" {
		t.Errorf("weak order = %v, want [이항 계수]", weak)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	p := New("demo")
	p.MarkExplained("방정식")
	p.MarkExplained("일차식")
	p.MarkExplained("일차식")

	rec := p.Record()
	if rec.SchemaVersion != SchemaVersion {
		t.Errorf("schema version = %d", rec.SchemaVersion)
	}

	restored := FromRecord(rec)
	if len(restored.Explained()) != 2 {
		t.Errorf("restored explained = %v", restored.Explained())
	}
	if restored.ExplanationCount("일차식") != 2 {
		t.Errorf("restored count = %d", restored.ExplanationCount("일차식"))
	}
}

func TestFromRecordUnknownSchemaVersion(t *testing.T) {
	rec := &store.ProfileRecord{
		LearnerID:         "demo",
		SchemaVersion:     SchemaVersion + 1,
		ExplainedConcepts: []string{"방정식"},
		ExplanationCount:  map[string]int{"방정식": 3},
	}

	p := FromRecord(rec)
	if p.LearnerID != "demo" {
		t.Errorf("learner id = %q", p.LearnerID)
	}
	if len(p.Explained()) != 0 {
		t.Errorf("explained = %v, want empty profile", p.Explained())
	}
	if p.Knows("방정식") {
		t.Error("unknown-version record must not load")
	}
	if p.ExplanationCount("방정식") != 0 {
		t.Errorf("count = %d, want 0", p.ExplanationCount("방정식"))
	}
}

func TestFromRecordDeduplicates(t *testing.T) {
	rec := &store.ProfileRecord{
		LearnerID:         "demo",
		SchemaVersion:     SchemaVersion,
		ExplainedConcepts: []string{"방정식", "방정식", "일차식"},
		ExplanationCount:  map[string]int{"방정식": 1},
	}
	p := FromRecord(rec)
	if len(p.Explained()) != 2 {
		t.Errorf("explained = %v, want deduplicated 2", p.Explained())
	}
}
