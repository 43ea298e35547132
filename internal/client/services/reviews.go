package services

import (
	"context"

	"github.com/engajamento/engaja/internal/client/api"
	"github.com/engajamento/engaja/internal/client/models"
)

// Reviews manages the weekly thumbs-up/down attendance review.
type Reviews struct {
	api *api.Client
}

func NewReviews(a *api.Client) *Reviews {
	return &Reviews{api: a}
}

// Week returns the pending reviews for the current week.
func (s *Reviews) Week(ctx context.Context) ([]models.Review, error) {
	return s.api.ListWeekReviews(ctx)
}

// Submit records one verdict: present (thumbs up) or absent (thumbs down).
func (s *Reviews) Submit(ctx context.Context, activityID, personID int64, present bool) (*models.Review, error) {
	return s.api.SubmitReview(ctx, api.ReviewInput{
		ActivityID: activityID,
		PersonID:   personID,
		InPresence: present,
	})
}
