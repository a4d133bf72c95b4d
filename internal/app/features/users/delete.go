// internal/app/features/users/delete.go
package users

import (
	"net/http"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/formutil"
	"github.com/dalemusser/octofit/internal/app/system/limits"
	"github.com/dalemusser/octofit/internal/app/system/normalize"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// ServeDelete shows the confirmation prompt. Nothing is deleted here.
// GET /users/{id}/delete
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.Users.Find(r.Context(), id)
	if err != nil {
		h.findFailed(w, r, id, err)
		return
	}

	h.renderDelete(w, r, deleteData{ID: u.ID, Username: u.Username, Action: deleteURL(u.ID)})
}

// HandleDelete issues the DELETE only when the prompt was confirmed.
// POST /users/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxUserFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.HTMXBadRequest(w, r, "Bad request.", "/users")
		return
	}

	if r.PostFormValue("confirm") != "yes" {
		h.redirect(w, r)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete user")
	defer cancel()

	err := h.Users.Delete(ctx, id)
	h.Audit.UserDeleted(r, id, err)
	if err != nil {
		msg := apiclient.Message(err)
		h.Log.Warn("error deleting user", zap.String("user_id", id), zap.Error(err))
		uierrors.SetAlert(w, "Error deleting user: "+msg)

		data := deleteData{
			ID:       id,
			Username: normalize.Username(r.PostFormValue("username")),
			Action:   deleteURL(id),
		}
		data.SetError(msg)
		h.renderDelete(w, r, data)
		return
	}
	h.finish(w, r, msgDeleted)
}

func (h *Handler) renderDelete(w http.ResponseWriter, r *http.Request, data deleteData) {
	if isHTMX(r) {
		data.CSRFToken = csrf.Token(r)
		templates.RenderSnippet(w, "users_delete_modal", data)
		return
	}
	formutil.SetBase(&data.Base, w, r, "Delete User", "/users")
	templates.Render(w, r, "users_delete_page", data)
}
