// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// Resource is the API collection path segment.
const Resource = "users"

// ErrNotFound is returned by Find when no user has the requested id.
var ErrNotFound = errors.New("user not found")

// Store reads and mutates users through the OctoFit API.
type Store struct {
	api *apiclient.Client
}

// New creates a new user store.
func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// List returns every user in API order. TeamName carries the API's
// team_name when it sent one; callers resolve the rest against the team list.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	out, err := apiclient.ListInto(ctx, s.api, Resource, decode)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// Find locates a user by id in a fresh listing. The API has no filter
// parameter, so this is a full fetch.
func (s *Store) Find(ctx context.Context, id string) (models.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Create POSTs a new user.
func (s *Store) Create(ctx context.Context, d models.UserDraft) error {
	if err := s.api.Create(ctx, Resource, d); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update PUTs the draft to users/<id>/.
func (s *Store) Update(ctx context.Context, d models.UserDraft) error {
	if err := s.api.Update(ctx, Resource, d.ID, d); err != nil {
		return fmt.Errorf("update user %s: %w", d.ID, err)
	}
	return nil
}

// Delete removes users/<id>/.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, Resource, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// ResolveTeamNames fills TeamName from names (team id -> name) for users the
// API sent without a team_name. A team reference with no match is shown as-is.
func ResolveTeamNames(users []models.User, names map[string]string) {
	for i := range users {
		u := &users[i]
		if u.TeamName != "" || u.Team == "" {
			continue
		}
		if n, ok := names[u.Team]; ok && n != "" {
			u.TeamName = n
		} else {
			u.TeamName = u.Team
		}
	}
}

type wire struct {
	ID        json.RawMessage `json:"id"`
	Username  json.RawMessage `json:"username"`
	Email     json.RawMessage `json:"email"`
	FirstName json.RawMessage `json:"first_name"`
	LastName  json.RawMessage `json:"last_name"`
	Team      json.RawMessage `json:"team"`
	TeamName  json.RawMessage `json:"team_name"`
}

func decode(_ int, raw json.RawMessage) models.User {
	var w wire
	_ = json.Unmarshal(raw, &w)
	return models.User{
		ID:        models.Text(w.ID),
		Username:  models.Text(w.Username),
		Email:     models.Text(w.Email),
		FirstName: models.Text(w.FirstName),
		LastName:  models.Text(w.LastName),
		Team:      models.Text(w.Team),
		TeamName:  models.Text(w.TeamName),
	}
}
