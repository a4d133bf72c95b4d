// internal/app/store/leaderboard/leaderboardstore.go
package leaderboardstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// Resource is the API collection path segment.
const Resource = "leaderboard"

// Store reads the leaderboard from the OctoFit API. The server owns the
// ordering; entries are returned exactly as sent.
type Store struct {
	api *apiclient.Client
}

// New creates a new leaderboard store.
func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// List returns the leaderboard in server order.
func (s *Store) List(ctx context.Context) ([]models.LeaderboardEntry, error) {
	out, err := apiclient.ListInto(ctx, s.api, Resource, decode)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return out, nil
}

type wire struct {
	ID              json.RawMessage `json:"id"`
	Username        json.RawMessage `json:"username"`
	UserName        json.RawMessage `json:"user_name"`
	TotalPoints     json.RawMessage `json:"total_points"`
	Points          json.RawMessage `json:"points"`
	ActivitiesCount json.RawMessage `json:"activities_count"`
	ActivityCount   json.RawMessage `json:"activity_count"`
}

func decode(i int, raw json.RawMessage) models.LeaderboardEntry {
	var w wire
	_ = json.Unmarshal(raw, &w)

	key := models.Text(w.ID)
	if key == "" {
		key = strconv.Itoa(i)
	}
	zero := models.N(0)
	return models.LeaderboardEntry{
		Key:             key,
		Username:        models.FirstText(w.Username, w.UserName),
		TotalPoints:     models.Num(w.TotalPoints).Or(models.Num(w.Points)).Or(zero),
		ActivitiesCount: models.Num(w.ActivitiesCount).Or(models.Num(w.ActivityCount)).Or(zero),
	}
}
