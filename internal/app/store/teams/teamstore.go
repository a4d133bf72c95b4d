// internal/app/store/teams/teamstore.go
package teamstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// Resource is the API collection path segment.
const Resource = "teams"

// Store reads teams from the OctoFit API.
type Store struct {
	api *apiclient.Client
}

// New creates a new team store.
func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// List returns every team in API order.
func (s *Store) List(ctx context.Context) ([]models.Team, error) {
	out, err := apiclient.ListInto(ctx, s.api, Resource, decode)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return out, nil
}

// Names indexes team names by id.
func Names(teams []models.Team) map[string]string {
	m := make(map[string]string, len(teams))
	for _, t := range teams {
		if t.ID != "" {
			m[t.ID] = t.Name
		}
	}
	return m
}

type wire struct {
	ID          json.RawMessage `json:"id"`
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	CreatedAt   json.RawMessage `json:"created_at"`
}

func decode(_ int, raw json.RawMessage) models.Team {
	var w wire
	_ = json.Unmarshal(raw, &w)
	return models.Team{
		ID:          models.Text(w.ID),
		Name:        models.Text(w.Name),
		Description: models.Text(w.Description),
		CreatedAt:   models.ParseDate(models.Text(w.CreatedAt)),
	}
}
