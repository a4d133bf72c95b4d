// internal/app/store/activities/activitystore.go
package activitystore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// Resource is the API collection path segment.
const Resource = "activities"

// Store reads activities from the OctoFit API.
type Store struct {
	api *apiclient.Client
}

// New creates a new activity store.
func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// List returns every activity in API order.
func (s *Store) List(ctx context.Context) ([]models.Activity, error) {
	out, err := apiclient.ListInto(ctx, s.api, Resource, decode)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return out, nil
}

type wire struct {
	ID           json.RawMessage `json:"id"`
	User         json.RawMessage `json:"user"`
	UserName     json.RawMessage `json:"user_name"`
	UserID       json.RawMessage `json:"user_id"`
	ActivityType json.RawMessage `json:"activity_type"`
	Duration     json.RawMessage `json:"duration"`
	Distance     json.RawMessage `json:"distance"`
	Calories     json.RawMessage `json:"calories"`
	Date         json.RawMessage `json:"date"`
}

func decode(_ int, raw json.RawMessage) models.Activity {
	var w wire
	_ = json.Unmarshal(raw, &w) // non-objects become an empty record
	return models.Activity{
		ID:           models.Text(w.ID),
		User:         models.FirstText(w.UserName, w.User, w.UserID),
		ActivityType: models.Text(w.ActivityType),
		Duration:     models.Num(w.Duration),
		Distance:     models.Num(w.Distance),
		Calories:     models.Num(w.Calories),
		Date:         models.ParseDate(models.Text(w.Date)),
	}
}
