package store

import (
	"context"
	"fmt"

	"github.com/tutelearn/tute/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetQuestionID(data.QuestionID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionType(data.QuestionType).
		SetPrompt(data.Prompt).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topicID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicID(topicID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
