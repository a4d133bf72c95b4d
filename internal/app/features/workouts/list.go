// internal/app/features/workouts/list.go
package workouts

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
// GET /workouts
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Workouts", "/"),
		Table:  resourceview.Pending[workoutRow](viewName),
	}
	templates.Render(w, r, "workouts_list", data)
}

// ServeTable mounts the view: one fetch, scoped to this request.
// GET /workouts/table
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.mount(r.Context())
	if !ok {
		return
	}

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "workouts_view", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Workouts", "/"),
		Table:  table,
	}
	templates.Render(w, r, "workouts_list", data)
}

func (h *Handler) mount(ctx context.Context) (resourceview.Table[workoutRow], bool) {
	v := resourceview.View[models.Workout]{Name: viewName, Load: h.Store.List, Log: h.Log}
	state, ok := v.Mount(ctx)
	if !ok {
		return resourceview.Table[workoutRow]{}, false
	}
	return resourceview.Render(v.Name, state, toRow), true
}
