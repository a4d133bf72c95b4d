// internal/app/store/workouts/workoutstore.go
package workoutstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// Resource is the API collection path segment.
const Resource = "workouts"

// Store reads workout suggestions from the OctoFit API.
type Store struct {
	api *apiclient.Client
}

// New creates a new workout store.
func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// List returns every workout in API order.
func (s *Store) List(ctx context.Context) ([]models.Workout, error) {
	out, err := apiclient.ListInto(ctx, s.api, Resource, decode)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return out, nil
}

type wire struct {
	ID          json.RawMessage `json:"id"`
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	Difficulty  json.RawMessage `json:"difficulty"`
	Duration    json.RawMessage `json:"duration"`
	Category    json.RawMessage `json:"category"`
}

func decode(_ int, raw json.RawMessage) models.Workout {
	var w wire
	_ = json.Unmarshal(raw, &w)
	return models.Workout{
		ID:          models.Text(w.ID),
		Name:        models.Text(w.Name),
		Description: models.Text(w.Description),
		Difficulty:  models.Text(w.Difficulty),
		Duration:    models.Num(w.Duration),
		Category:    models.Text(w.Category),
	}
}
