package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/engajamento/engaja/internal/client/models"
)

// ListPeopleHelped fetches all people assisted by the program.
func (c *Client) ListPeopleHelped(ctx context.Context) ([]models.PersonHelped, error) {
	var env envelope[[]models.PersonHelped]
	if err := c.get(ctx, "/v1/people-helped", &env); err != nil {
		return nil, fmt.Errorf("api.ListPeopleHelped: %w", err)
	}
	return env.Data, nil
}

// CreatePersonHelped registers a new person.
func (c *Client) CreatePersonHelped(ctx context.Context, in models.PersonHelped) (*models.PersonHelped, error) {
	var env envelope[models.PersonHelped]
	if err := c.post(ctx, "/v1/people-helped", in, &env); err != nil {
		return nil, fmt.Errorf("api.CreatePersonHelped: %w", err)
	}
	return &env.Data, nil
}

// UpdatePersonHelped replaces a person's data.
func (c *Client) UpdatePersonHelped(ctx context.Context, id int64, in models.PersonHelped) (*models.PersonHelped, error) {
	var env envelope[models.PersonHelped]
	if err := c.put(ctx, "/v1/people-helped/"+strconv.FormatInt(id, 10), in, &env); err != nil {
		return nil, fmt.Errorf("api.UpdatePersonHelped: %w", err)
	}
	return &env.Data, nil
}

// DeletePersonHelped removes a person.
func (c *Client) DeletePersonHelped(ctx context.Context, id int64) error {
	if err := c.delete(ctx, "/v1/people-helped/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("api.DeletePersonHelped: %w", err)
	}
	return nil
}
