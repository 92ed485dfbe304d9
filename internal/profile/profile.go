// Package profile holds a learner's durable study memory: which concepts
// have been explained, and how often each one needed explaining.
package profile

import (
	"context"
	"fmt"
	"sort"

	"github.com/seonho-dev/tutorgraph/internal/store"
)

// SchemaVersion is stamped on every saved profile payload.
const SchemaVersion = 1

// WeakThreshold is how many explanations of the same concept mark it
// as a weak spot worth revisiting.
const WeakThreshold = 2

// Profile is the in-memory working copy of a learner's study memory.
// The explained set is kept as an insertion-ordered list so that
// "what have I learned" reads back in study order.
type Profile struct {
	LearnerID string

	explained []string
	index     map[string]bool
	counts    map[string]int
}

// New returns an empty profile for the given learner.
func New(learnerID string) *Profile {
	return &Profile{
		LearnerID: learnerID,
		index:     make(map[string]bool),
		counts:    make(map[string]int),
	}
}

// FromRecord rebuilds a profile from its persisted form. A record stamped
// with an unknown schema version is discarded and the learner starts over
// with an empty profile. The stored list may contain duplicates if
// hand-edited; MarkKnown deduplicates on insert.
func FromRecord(rec *store.ProfileRecord) *Profile {
	if rec.SchemaVersion != SchemaVersion {
		return New(rec.LearnerID)
	}
	p := New(rec.LearnerID)
	for _, name := range rec.ExplainedConcepts {
		p.MarkKnown(name)
	}
	for name, n := range rec.ExplanationCount {
		if n > 0 {
			p.counts[name] = n
		}
	}
	return p
}

// Record converts the profile to its persisted form.
func (p *Profile) Record() *store.ProfileRecord {
	explained := make([]string, len(p.explained))
	copy(explained, p.explained)
	counts := make(map[string]int, len(p.counts))
	for k, v := range p.counts {
		counts[k] = v
	}
	return &store.ProfileRecord{
		LearnerID:         p.LearnerID,
		SchemaVersion:     SchemaVersion,
		ExplainedConcepts: explained,
		ExplanationCount:  counts,
	}
}

// MarkKnown records that the learner knows the concept without bumping
// its explanation count. Used when a learner reports already knowing a
// prerequisite, or skips it.
func (p *Profile) MarkKnown(name string) {
	if name == "" || p.index[name] {
		return
	}
	p.index[name] = true
	p.explained = append(p.explained, name)
}

// MarkExplained records that the concept was just explained, adding it
// to the known set and incrementing its explanation count.
func (p *Profile) MarkExplained(name string) {
	if name == "" {
		return
	}
	p.MarkKnown(name)
	p.counts[name]++
}

// Knows reports whether the concept has been explained or acknowledged.
func (p *Profile) Knows(name string) bool {
	return p.index[name]
}

// ExplanationCount returns how many times the concept has been explained.
func (p *Profile) ExplanationCount(name string) int {
	return p.counts[name]
}

// Explained returns the known concepts in study order.
func (p *Profile) Explained() []string {
	out := make([]string, len(p.explained))
	copy(out, p.explained)
	return out
}

// WeakConcepts returns concepts explained WeakThreshold or more times,
// most-explained first.
func (p *Profile) WeakConcepts() []string {
	var weak []string
	for name, n := range p.counts {
		if n >= WeakThreshold {
			weak = append(weak, name)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if p.counts[weak[i]] != p.counts[weak[j]] {
			return p.counts[weak[i]] > p.counts[weak[j]]
		}
		return weak[i] < weak[j]
	})
	return weak
}

// Load reads the learner's profile from the repository, returning a
// fresh empty profile when none has been saved yet.
func Load(ctx context.Context, repo store.ProfileRepo, learnerID string) (*Profile, error) {
	rec, err := repo.Load(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if rec == nil {
		return New(learnerID), nil
	}
	return FromRecord(rec), nil
}

// Save writes the profile back to the repository.
func Save(ctx context.Context, repo store.ProfileRepo, p *Profile) error {
	if err := repo.Save(ctx, p.Record()); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
