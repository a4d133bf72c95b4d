package teams

import (
	"context"
	"errors"
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/resources"
	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/octofit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, status int, body string) *Handler {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/teams/", status, body)
	logger := zap.NewNop()
	return NewHandler(teamstore.New(api.Client(t)), uierrors.NewErrorLogger(logger), logger)
}

func renderView(t *testing.T, h *Handler) string {
	t.Helper()
	table, ok := h.mount(context.Background())
	require.True(t, ok)
	return testutil.Execute(t, testutil.ParseTemplates(t, resources.FS, FS), "teams_view", table)
}

func TestView_Ready(t *testing.T) {
	h := newTestHandler(t, http.StatusOK, `{"results":[
		{"id":1,"name":"Blue","description":"Swimmers\nand divers","created_at":"2025-01-15T00:00:00Z"},
		{"id":2,"name":"Red","description":"<b>Runners</b><script>alert(1)</script>"},
		{"id":3,"name":"Green"}
	]}`)

	out := renderView(t, h)

	assert.Equal(t, 3, testutil.CountRows(out))
	assert.Contains(t, out, `Total Teams: <span class="badge bg-info">3</span>`)
	assert.Contains(t, out, "Swimmers\nand divers")
	assert.Contains(t, out, "&lt;b&gt;Runners&lt;/b&gt;&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "1/15/2025")
}

func TestView_DescriptionKeepsAngleBrackets(t *testing.T) {
	h := newTestHandler(t, http.StatusOK, `[{"id":1,"name":"Gym","description":"Use <reps> x <sets> format"}]`)

	out := renderView(t, h)

	assert.Contains(t, out, "<td>Use &lt;reps&gt; x &lt;sets&gt; format</td>")
}

func TestView_Failed(t *testing.T) {
	h := newTestHandler(t, http.StatusNotFound, `{"detail":"Not found."}`)

	out := renderView(t, h)

	assert.Contains(t, out, "HTTP error! status: 404")
	assert.NotContains(t, out, "<table")
}

func TestView_Empty(t *testing.T) {
	out := renderView(t, newTestHandler(t, http.StatusOK, `[]`))
	assert.Contains(t, out, "No teams found.")
	assert.Contains(t, out, `Total Teams: <span class="badge bg-info">0</span>`)
}

type failingLister struct{ err error }

func (f failingLister) List(context.Context) ([]models.Team, error) { return nil, f.err }

func TestView_TransportFailureMessage(t *testing.T) {
	h := NewHandler(failingLister{err: errors.New("dial tcp: refused")}, nil, zap.NewNop())

	table, ok := h.mount(context.Background())
	require.True(t, ok)
	assert.True(t, table.IsFailed())
	assert.Equal(t, "Failed to fetch: the OctoFit API could not be reached.", table.Error)
	assert.Empty(t, table.Rows)
}
