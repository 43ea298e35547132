package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/engajamento/engaja/internal/client/models"
)

// ListLeaders fetches all leaders.
func (c *Client) ListLeaders(ctx context.Context) ([]models.Leader, error) {
	var env envelope[[]models.Leader]
	if err := c.get(ctx, "/v1/leaders", &env); err != nil {
		return nil, fmt.Errorf("api.ListLeaders: %w", err)
	}
	return env.Data, nil
}

// CreateLeader registers a new leader.
func (c *Client) CreateLeader(ctx context.Context, in models.Leader) (*models.Leader, error) {
	var env envelope[models.Leader]
	if err := c.post(ctx, "/v1/leaders", in, &env); err != nil {
		return nil, fmt.Errorf("api.CreateLeader: %w", err)
	}
	return &env.Data, nil
}

// UpdateLeader replaces a leader's data.
func (c *Client) UpdateLeader(ctx context.Context, id int64, in models.Leader) (*models.Leader, error) {
	var env envelope[models.Leader]
	if err := c.put(ctx, "/v1/leaders/"+strconv.FormatInt(id, 10), in, &env); err != nil {
		return nil, fmt.Errorf("api.UpdateLeader: %w", err)
	}
	return &env.Data, nil
}

// DeleteLeader removes a leader.
func (c *Client) DeleteLeader(ctx context.Context, id int64) error {
	if err := c.delete(ctx, "/v1/leaders/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("api.DeleteLeader: %w", err)
	}
	return nil
}
