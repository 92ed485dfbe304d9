package store

import (
	"context"
	"fmt"

	"github.com/seonho-dev/tutorgraph/ent"
	"github.com/seonho-dev/tutorgraph/ent/turnevent"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSessionID(data.SessionID).
		SetTask(data.Task).
		SetModeBefore(data.ModeBefore).
		SetModeAfter(data.ModeAfter).
		SetInput(data.Input).
		SetExplainedConcept(data.ExplainedConcept).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}

	return nil
}

func (r *eventRepo) TurnStatsFor(ctx context.Context, learnerID string) (*TurnStats, error) {
	events, err := r.client.TurnEvent.Query().
		Where(turnevent.LearnerID(learnerID)).
		Order(ent.Asc(turnevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}

	stats := &TurnStats{TurnsByTask: make(map[string]int)}
	sessions := make(map[string]bool)
	for _, e := range events {
		stats.TotalTurns++
		stats.TurnsByTask[e.Task]++
		if e.SessionID != "" {
			sessions[e.SessionID] = true
		}
		if e.Timestamp.After(stats.LastActivity) {
			stats.LastActivity = e.Timestamp
		}
	}
	stats.Sessions = len(sessions)
	return stats, nil
}
