// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ServeList renders the page shell in its loading state.
// GET /users
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Users", "/"),
		Table:  resourceview.Pending[userRow](viewName),
	}
	templates.Render(w, r, "users_list", data)
}

// ServeTable mounts the view: users and teams are fetched concurrently and
// joined before rendering.
// GET /users/table
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.mount(r.Context())
	if !ok {
		return
	}

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "users_view", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Users", "/"),
		Table:  table,
	}
	templates.Render(w, r, "users_list", data)
}

func (h *Handler) mount(ctx context.Context) (resourceview.Table[userRow], bool) {
	v := resourceview.View[models.User]{Name: viewName, Load: h.Users.List, Log: h.Log}

	var (
		state resourceview.State[models.User]
		ok    bool
		teams []models.Team
		g     errgroup.Group
	)
	g.Go(func() error {
		state, ok = v.Mount(ctx)
		return nil
	})
	g.Go(func() error {
		teams = h.loadTeams(ctx)
		return nil
	})
	_ = g.Wait()

	if !ok {
		return resourceview.Table[userRow]{}, false
	}
	userstore.ResolveTeamNames(state.Data, teamstore.Names(teams))
	return resourceview.Render(v.Name, state, toRow), true
}

// loadTeams never fails its caller: a missing team list only costs the
// selector its options and the table its team names.
func (h *Handler) loadTeams(ctx context.Context) []models.Team {
	teams, err := h.Teams.List(ctx)
	if err != nil {
		if !apiclient.IsCanceled(err) {
			h.Log.Warn("error fetching teams", zap.Error(err))
		}
		return nil
	}
	return teams
}
