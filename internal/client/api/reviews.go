package api

import (
	"context"
	"fmt"

	"github.com/engajamento/engaja/internal/client/models"
)

// ReviewInput is the payload for one attendance verdict.
type ReviewInput struct {
	ActivityID int64 `json:"activity_id"`
	PersonID   int64 `json:"person_id"`
	InPresence bool  `json:"in_presence"`
}

// ListWeekReviews fetches the pending attendance reviews for the current
// week.
func (c *Client) ListWeekReviews(ctx context.Context) ([]models.Review, error) {
	var env envelope[[]models.Review]
	if err := c.get(ctx, "/v1/reviews/week", &env); err != nil {
		return nil, fmt.Errorf("api.ListWeekReviews: %w", err)
	}
	return env.Data, nil
}

// SubmitReview records one thumbs-up/down attendance verdict.
func (c *Client) SubmitReview(ctx context.Context, in ReviewInput) (*models.Review, error) {
	var env envelope[models.Review]
	if err := c.post(ctx, "/v1/reviews", in, &env); err != nil {
		return nil, fmt.Errorf("api.SubmitReview: %w", err)
	}
	return &env.Data, nil
}
