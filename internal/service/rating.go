package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/utils"
)

// RateCounterparty records the actor's one rating of the other party of a completed order.
func (s *orderService) RateCounterparty(ctx context.Context, orderID, actorID string, polarity entities.Polarity, comment string) (entities.RatingEvent, error) {
	var rating entities.RatingEvent
	_, err := s.transition(ctx, orderID, actorID, entities.TransitionRate, entities.EventRated,
		func(ctx context.Context, o *entities.Order) (effect, error) {
			rated, err := s.ratings.HasRated(ctx, o.ID, actorID)
			if err != nil {
				return noChange, fmt.Errorf("failed to check rating: %w", err)
			}
			rating, err = s.machine.Rate(*o, actorID, polarity, comment, rated)
			if err != nil {
				return noChange, err
			}
			// уникальный индекс ловит гонку двух одновременных оценок
			if err := s.ratings.AppendRating(ctx, rating); err != nil {
				return noChange, err
			}
			return ledgerWrite, nil
		})
	if err != nil {
		return entities.RatingEvent{}, err
	}
	return rating, nil
}

// UpdateRating edits the actor's own rating on a completed order. Cancellation penalties cannot be edited.
func (s *orderService) UpdateRating(ctx context.Context, orderID, actorID string, polarity entities.Polarity, comment string) (entities.RatingEvent, error) {
	var rating entities.RatingEvent
	_, err := s.transition(ctx, orderID, actorID, entities.TransitionUpdateRating, entities.EventRatingUpdated,
		func(ctx context.Context, o *entities.Order) (effect, error) {
			if err := s.machine.CheckUpdateRating(*o, actorID); err != nil {
				return noChange, err
			}
			existing, err := s.ratings.GetRating(ctx, o.ID, actorID)
			if err != nil {
				return noChange, err
			}
			rating, err = s.machine.EditRating(*o, actorID, existing, polarity, comment)
			if err != nil {
				return noChange, err
			}
			if err := s.ratings.UpdateRating(ctx, rating); err != nil {
				return noChange, err
			}
			return ledgerWrite, nil
		})
	if err != nil {
		return entities.RatingEvent{}, err
	}
	return rating, nil
}

// GetReputation summarizes every rating the user has received, penalties included.
func (s *orderService) GetReputation(ctx context.Context, userID string) (entities.Reputation, error) {
	var ratings []entities.RatingEvent
	fn := func() error {
		var err error
		ratings, err = s.ratings.ListRatingsFor(ctx, userID)
		return err
	}
	if err := utils.Retry(s.retry, fn); err != nil {
		s.logger.Error("failed to list ratings", slog.String("user_id", userID), slog.Any("error", err))
		return entities.Reputation{}, fmt.Errorf("failed to list ratings: %w", err)
	}
	return entities.NewReputation(userID, ratings), nil
}
