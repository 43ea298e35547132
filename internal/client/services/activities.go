package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/engajamento/engaja/internal/client/api"
	"github.com/engajamento/engaja/internal/client/format"
	"github.com/engajamento/engaja/internal/client/models"
	"github.com/engajamento/engaja/internal/common"
)

// ActivityInput is the raw form input for creating or editing an activity.
type ActivityInput struct {
	Name string
	Day  string // dd/mm/yyyy
}

// Activities manages weekly activities.
type Activities struct {
	api *api.Client
}

func NewActivities(a *api.Client) *Activities {
	return &Activities{api: a}
}

// List returns all activities.
func (s *Activities) List(ctx context.Context) ([]models.Activity, error) {
	return s.api.ListActivities(ctx)
}

// Create validates in and registers a new activity.
func (s *Activities) Create(ctx context.Context, in ActivityInput) (*models.Activity, error) {
	activity, err := validateActivity(in)
	if err != nil {
		return nil, err
	}
	return s.api.CreateActivity(ctx, *activity)
}

// Update validates in and replaces the activity identified by id.
func (s *Activities) Update(ctx context.Context, id int64, in ActivityInput) (*models.Activity, error) {
	activity, err := validateActivity(in)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateActivity(ctx, id, *activity)
}

// Delete removes an activity.
func (s *Activities) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteActivity(ctx, id)
}

func validateActivity(in ActivityInput) (*models.Activity, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	day, err := format.ParseInputDate(in.Day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return &models.Activity{
		Name: name,
		Day:  format.FormatBackendDate(day),
	}, nil
}
