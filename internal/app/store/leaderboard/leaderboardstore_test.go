package leaderboardstore_test

import (
	"context"
	"net/http"
	"testing"

	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	"github.com/dalemusser/octofit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_KeepsServerOrder(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/leaderboard/", http.StatusOK,
		`[{"username":"x","total_points":5},{"username":"y","total_points":9}]`)

	got, err := leaderboardstore.New(api.Client(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "x", got[0].Username, "no client-side re-sort by points")
	assert.Equal(t, "y", got[1].Username)
	assert.Equal(t, "0", got[0].Key, "positional key when id is missing")
	assert.Equal(t, "1", got[1].Key)
}

func TestList_FieldFallbacks(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/leaderboard/", http.StatusOK, `{"results":[
		{"id":"e1","user_name":"ada","points":12,"activity_count":4},
		{"id":"e2","username":"bob","total_points":0,"points":3},
		{"id":"e3","username":"cy"}
	]}`)

	got, err := leaderboardstore.New(api.Client(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "e1", got[0].Key)
	assert.Equal(t, "ada", got[0].Username)
	assert.Equal(t, "12", got[0].TotalPoints.String())
	assert.Equal(t, "4", got[0].ActivitiesCount.String())

	assert.Equal(t, "3", got[1].TotalPoints.String(), "zero total_points falls back to points")
	assert.Equal(t, "0", got[1].ActivitiesCount.String())

	assert.Equal(t, "0", got[2].TotalPoints.String())
	assert.Equal(t, "0", got[2].ActivitiesCount.String())
}
