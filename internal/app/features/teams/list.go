// internal/app/features/teams/list.go
package teams

import (
	"context"
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList renders the page shell. The view starts loading and the browser
// mounts it by requesting the table fragment.
// GET /teams
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Teams", "/"),
		Table:  resourceview.Pending[teamRow](viewName),
	}
	templates.Render(w, r, "teams_list", data)
}

// ServeTable mounts the view: one fetch, scoped to this request.
// GET /teams/table
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.mount(r.Context())
	if !ok {
		return
	}

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "teams_view", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Teams", "/"),
		Table:  table,
	}
	templates.Render(w, r, "teams_list", data)
}

func (h *Handler) mount(ctx context.Context) (resourceview.Table[teamRow], bool) {
	v := resourceview.View[models.Team]{Name: viewName, Load: h.Store.List, Log: h.Log}
	state, ok := v.Mount(ctx)
	if !ok {
		return resourceview.Table[teamRow]{}, false
	}
	return resourceview.Render(v.Name, state, toRow), true
}
