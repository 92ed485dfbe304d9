package store

import (
	"context"
	"fmt"

	"github.com/seonho-dev/tutorgraph/ent"
	"github.com/seonho-dev/tutorgraph/ent/profile"
)

// profileRepo implements ProfileRepo backed by ent.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context, learnerID string) (*ProfileRecord, error) {
	p, err := r.client.Profile.Query().
		Where(profile.LearnerID(learnerID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", learnerID, err)
	}

	return &ProfileRecord{
		LearnerID:         p.LearnerID,
		SchemaVersion:     p.SchemaVersion,
		ExplainedConcepts: p.ExplainedConcepts,
		ExplanationCount:  p.ExplanationCount,
		UpdatedAt:         p.UpdatedAt,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, rec *ProfileRecord) error {
	existing, err := r.client.Profile.Query().
		Where(profile.LearnerID(rec.LearnerID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.Profile.Create().
			SetLearnerID(rec.LearnerID).
			SetSchemaVersion(rec.SchemaVersion).
			SetExplainedConcepts(rec.ExplainedConcepts).
			SetExplanationCount(rec.ExplanationCount).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile %q: %w", rec.LearnerID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup profile %q: %w", rec.LearnerID, err)
	}

	_, err = existing.Update().
		SetSchemaVersion(rec.SchemaVersion).
		SetExplainedConcepts(rec.ExplainedConcepts).
		SetExplanationCount(rec.ExplanationCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile %q: %w", rec.LearnerID, err)
	}
	return nil
}

func (r *profileRepo) Reset(ctx context.Context, learnerID string) error {
	_, err := r.client.Profile.Delete().
		Where(profile.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset profile %q: %w", learnerID, err)
	}
	return nil
}
