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

// PersonInput is the raw form input for creating or editing a person.
type PersonInput struct {
	Name  string
	Phone string // display form
	Birth string // dd/mm/yyyy

	// LeaderID is only honored for administrators; leaders always create
	// people under themselves.
	LeaderID int64
}

// People manages the people assisted by the program.
type People struct {
	api  *api.Client
	role Roler
}

func NewPeople(a *api.Client, role Roler) *People {
	return &People{api: a, role: role}
}

// List returns all people visible to the signed-in user (the backend
// scopes the list by leader for non-admins).
func (s *People) List(ctx context.Context) ([]models.PersonHelped, error) {
	return s.api.ListPeopleHelped(ctx)
}

// Create validates in and registers a new person.
func (s *People) Create(ctx context.Context, in PersonInput) (*models.PersonHelped, error) {
	person, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	return s.api.CreatePersonHelped(ctx, *person)
}

// Update validates in and replaces the person identified by id.
func (s *People) Update(ctx context.Context, id int64, in PersonInput) (*models.PersonHelped, error) {
	person, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	return s.api.UpdatePersonHelped(ctx, id, *person)
}

// Delete removes a person.
func (s *People) Delete(ctx context.Context, id int64) error {
	return s.api.DeletePersonHelped(ctx, id)
}

func (s *People) validate(in PersonInput) (*models.PersonHelped, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	ddd, phone, err := format.SplitPhone(in.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	birth, err := format.ParseInputDate(in.Birth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	person := &models.PersonHelped{
		Name:  name,
		DDD:   ddd,
		Phone: phone,
		Birth: format.FormatBackendDate(birth),
	}
	// Leader assignment is an admin-only field; for everyone else the
	// backend infers the leader from the token.
	if s.role.IsAdmin() {
		person.LeaderID = in.LeaderID
	}
	return person, nil
}
