package store

import (
	"context"
	"fmt"

	"github.com/tutelearn/tute/ent"
	"github.com/tutelearn/tute/ent/rewardevent"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetReason(data.Reason).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardRecord, error) {
	query := r.client.RewardEvent.Query().
		Order(ent.Desc(rewardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(rewardevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(rewardevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(rewardevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(rewardevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}

	records := make([]RewardRecord, len(events))
	for i, e := range events {
		records[i] = RewardRecord{
			Amount:    e.Amount,
			Reason:    e.Reason,
			SessionID: e.SessionID,
			TopicID:   e.TopicID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) TutePointBalance(ctx context.Context) (int, error) {
	events, err := r.client.RewardEvent.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query reward balance: %w", err)
	}

	total := 0
	for _, e := range events {
		total += e.Amount
	}
	return total, nil
}
