package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/engajamento/engaja/internal/client/models"
)

// ListActivities fetches all weekly activities.
func (c *Client) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var env envelope[[]models.Activity]
	if err := c.get(ctx, "/v1/activities", &env); err != nil {
		return nil, fmt.Errorf("api.ListActivities: %w", err)
	}
	return env.Data, nil
}

// CreateActivity registers a new activity.
func (c *Client) CreateActivity(ctx context.Context, in models.Activity) (*models.Activity, error) {
	var env envelope[models.Activity]
	if err := c.post(ctx, "/v1/activities", in, &env); err != nil {
		return nil, fmt.Errorf("api.CreateActivity: %w", err)
	}
	return &env.Data, nil
}

// UpdateActivity replaces an activity's data.
func (c *Client) UpdateActivity(ctx context.Context, id int64, in models.Activity) (*models.Activity, error) {
	var env envelope[models.Activity]
	if err := c.put(ctx, "/v1/activities/"+strconv.FormatInt(id, 10), in, &env); err != nil {
		return nil, fmt.Errorf("api.UpdateActivity: %w", err)
	}
	return &env.Data, nil
}

// DeleteActivity removes an activity.
func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	if err := c.delete(ctx, "/v1/activities/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("api.DeleteActivity: %w", err)
	}
	return nil
}
