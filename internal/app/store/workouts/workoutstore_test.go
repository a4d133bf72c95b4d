package workoutstore_test

import (
	"context"
	"net/http"
	"testing"

	workoutstore "github.com/dalemusser/octofit/internal/app/store/workouts"
	"github.com/dalemusser/octofit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/workouts/", http.StatusOK,
		`{"results":[{"id":4,"name":"Intervals","description":"Sprint repeats","difficulty":"Hard","duration":25,"category":"Cardio"}]}`)

	got, err := workoutstore.New(api.Client(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "Hard", got[0].Difficulty)
	assert.Equal(t, "25", got[0].Duration.String())
	assert.Equal(t, "Cardio", got[0].Category)
}

func TestList_UnrecognizedShapeIsEmpty(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/workouts/", http.StatusOK, `{"detail":"maintenance"}`)

	got, err := workoutstore.New(api.Client(t)).List(context.Background())
	require.NoError(t, err, "unknown payload shapes are not errors")
	assert.Empty(t, got)
}
