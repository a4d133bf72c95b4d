// internal/app/features/activities/list.go
package activities

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
// GET /activities
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Activities", "/"),
		Table:  resourceview.Pending[activityRow](viewName),
	}
	templates.Render(w, r, "activities_list", data)
}

// ServeTable mounts the view: one fetch, scoped to this request.
// GET /activities/table
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.mount(r.Context())
	if !ok {
		return
	}

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "activities_view", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Activities", "/"),
		Table:  table,
	}
	templates.Render(w, r, "activities_list", data)
}

func (h *Handler) mount(ctx context.Context) (resourceview.Table[activityRow], bool) {
	v := resourceview.View[models.Activity]{Name: viewName, Load: h.Store.List, Log: h.Log}
	state, ok := v.Mount(ctx)
	if !ok {
		return resourceview.Table[activityRow]{}, false
	}
	return resourceview.Render(v.Name, state, toRow), true
}
