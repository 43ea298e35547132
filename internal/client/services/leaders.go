// Package services sits between the screens and the API client: it
// validates form input, converts display formats to wire formats, and
// enforces the role rules the screens rely on.
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

// Roler exposes the role check services need. The session store satisfies
// it.
type Roler interface {
	IsAdmin() bool
}

// LeaderInput is the raw form input for creating or editing a leader.
type LeaderInput struct {
	Name  string
	Email string
	Phone string // display form, e.g. "(11) 98888-7777"
	Birth string // dd/mm/yyyy
}

// Leaders manages program leaders. Managing leaders is an
// administrator-only capability.
type Leaders struct {
	api  *api.Client
	role Roler
}

func NewLeaders(a *api.Client, role Roler) *Leaders {
	return &Leaders{api: a, role: role}
}

// List returns all leaders.
func (s *Leaders) List(ctx context.Context) ([]models.Leader, error) {
	return s.api.ListLeaders(ctx)
}

// Create validates in and registers a new leader.
func (s *Leaders) Create(ctx context.Context, in LeaderInput) (*models.Leader, error) {
	leader, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	return s.api.CreateLeader(ctx, *leader)
}

// Update validates in and replaces the leader identified by id.
func (s *Leaders) Update(ctx context.Context, id int64, in LeaderInput) (*models.Leader, error) {
	leader, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateLeader(ctx, id, *leader)
}

// Delete removes a leader.
func (s *Leaders) Delete(ctx context.Context, id int64) error {
	if !s.role.IsAdmin() {
		return fmt.Errorf("%w: only administrators manage leaders", common.ErrValidation)
	}
	return s.api.DeleteLeader(ctx, id)
}

func (s *Leaders) validate(in LeaderInput) (*models.Leader, error) {
	if !s.role.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators manage leaders", common.ErrValidation)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", common.ErrValidation)
	}
	ddd, phone, err := format.SplitPhone(in.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	birth, err := format.ParseInputDate(in.Birth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	return &models.Leader{
		Name:  name,
		Email: email,
		DDD:   ddd,
		Phone: phone,
		Birth: format.FormatBackendDate(birth),
	}, nil
}
