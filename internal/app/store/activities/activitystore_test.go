package activitystore_test

import (
	"context"
	"net/http"
	"testing"

	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	"github.com/dalemusser/octofit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_NormalizesFallbacks(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/activities/", http.StatusOK, `{"results":[
		{"id":1,"user_name":"ada","user":3,"activity_type":"Run","duration":30,"distance":5.5,"calories":300,"date":"2025-03-07T10:00:00Z"},
		{"id":2,"user":"bob","activity_type":"Swim","duration":"45","distance":null,"calories":200,"date":"2025-03-08"},
		{"id":3,"user_id":"65f0aa","activity_type":"Yoga"}
	]}`)

	got, err := activitystore.New(api.Client(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "ada", got[0].User, "user_name wins over user")
	assert.Equal(t, "5.5", got[0].Distance.String())
	assert.Equal(t, "3/7/2025", got[0].Date.String())

	assert.Equal(t, "bob", got[1].User)
	assert.Equal(t, "45", got[1].Duration.String())
	assert.False(t, got[1].Distance.Valid)

	assert.Equal(t, "65f0aa", got[2].User)
	assert.Equal(t, "", got[2].Date.String())
}

func TestList_BareArrayAndNonObjects(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/activities/", http.StatusOK, `[{"id":"a"}, 7, "x"]`)

	got, err := activitystore.New(api.Client(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3, "records are never dropped")
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "", got[1].ID)
}

func TestList_Error(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/activities/", http.StatusBadGateway, `bad gateway`)

	_, err := activitystore.New(api.Client(t)).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list activities")
	assert.Equal(t, 1, api.Count(http.MethodGet, "/api/activities/"), "no retry")
}
