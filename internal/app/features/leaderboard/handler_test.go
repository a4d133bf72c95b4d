package leaderboard

import (
	"context"
	"net/http"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/resources"
	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/octofit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func renderView(t *testing.T, status int, body string) string {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/leaderboard/", status, body)
	logger := zap.NewNop()
	h := NewHandler(leaderboardstore.New(api.Client(t)), uierrors.NewErrorLogger(logger), logger)

	table, ok := h.mount(context.Background())
	require.True(t, ok)
	return testutil.Execute(t, testutil.ParseTemplates(t, resources.FS, FS), "leaderboard_view", table)
}

func TestView_RanksFollowAPIOrder(t *testing.T) {
	out := renderView(t, http.StatusOK, `[{"username":"x","total_points":5},{"username":"y","total_points":9}]`)

	require.Equal(t, 2, testutil.CountRows(out))
	ix, iy := strings.Index(out, "<strong>x</strong>"), strings.Index(out, "<strong>y</strong>")
	require.True(t, ix >= 0 && iy >= 0)
	assert.Less(t, ix, iy, "x is rank 1 even with fewer points")
	assert.Contains(t, out, `title="Rank 1">🥇`)
	assert.Contains(t, out, `title="Rank 2">🥈`)
	assert.Contains(t, out, `Total Competitors: <span class="badge bg-info">2</span>`)
}

func TestView_PodiumAndPlainRanks(t *testing.T) {
	out := renderView(t, http.StatusOK, `{"results":[
		{"id":"a","username":"a","total_points":40,"activities_count":4},
		{"id":"b","username":"b","total_points":30},
		{"id":"c","user_name":"c","points":20,"activity_count":2},
		{"id":"d","username":"d"}
	]}`)

	assert.Equal(t, 4, testutil.CountRows(out))
	assert.Contains(t, out, `data-key="a" class="table-warning"`)
	assert.Contains(t, out, `data-key="b" class="table-secondary"`)
	assert.Contains(t, out, `data-key="c" class="table-danger"`)
	assert.Contains(t, out, `<tr data-key="d">`)
	assert.Contains(t, out, `<h4 class="mb-0">4</h4>`)
	assert.Contains(t, out, `<span class="badge bg-success fs-6">20</span>`, "points fallback")
	assert.Contains(t, out, `<span class="badge bg-info fs-6">2</span>`, "activity_count fallback")
}

func TestView_EmptyAndFailed(t *testing.T) {
	assert.Contains(t, renderView(t, http.StatusOK, `[]`), "No leaderboard data found.")

	failed := renderView(t, http.StatusBadGateway, ``)
	assert.Contains(t, failed, "HTTP error! status: 502")
	assert.NotContains(t, failed, "<table")
}

func TestToRow(t *testing.T) {
	e := models.LeaderboardEntry{Key: "k", Username: "u", TotalPoints: models.N(12), ActivitiesCount: models.N(3)}

	first := toRow(0, e)
	assert.Equal(t, entryRow{Key: "k", Rank: 1, Medal: "🥇", RowClass: "table-warning", Username: "u", TotalPoints: "12", ActivitiesCount: "3"}, first)

	tenth := toRow(9, e)
	assert.Equal(t, 10, tenth.Rank)
	assert.Empty(t, tenth.Medal)
	assert.Empty(t, tenth.RowClass)
}
