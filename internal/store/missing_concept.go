package store

import (
	"context"
	"fmt"

	"github.com/seonho-dev/tutorgraph/ent"
	"github.com/seonho-dev/tutorgraph/ent/missingconcept"
)

func (r *eventRepo) RecordMissingConcept(ctx context.Context, name string) error {
	existing, err := r.client.MissingConcept.Query().
		Where(missingconcept.Name(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.MissingConcept.Create().
			SetName(name).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("record missing concept %q: %w", name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup missing concept %q: %w", name, err)
	}

	_, err = existing.Update().
		SetHitCount(existing.HitCount + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("bump missing concept %q: %w", name, err)
	}
	return nil
}

func (r *eventRepo) TopMissingConcepts(ctx context.Context, limit int) ([]MissingConceptRecord, error) {
	query := r.client.MissingConcept.Query().
		Order(ent.Desc(missingconcept.FieldHitCount))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query missing concepts: %w", err)
	}

	records := make([]MissingConceptRecord, len(rows))
	for i, m := range rows {
		records[i] = MissingConceptRecord{
			Name:     m.Name,
			HitCount: m.HitCount,
			LastSeen: m.LastSeen,
		}
	}
	return records, nil
}
