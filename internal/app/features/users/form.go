// internal/app/features/users/form.go
package users

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/flash"
	"github.com/dalemusser/octofit/internal/app/system/formutil"
	"github.com/dalemusser/octofit/internal/app/system/inputval"
	"github.com/dalemusser/octofit/internal/app/system/navigation"
	"github.com/dalemusser/octofit/internal/app/system/limits"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

func isHTMX(r *http.Request) bool { return r.Header.Get("HX-Request") != "" }

// ServeNew renders the add form with an empty draft.
// GET /users/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, h.newForm(r.Context()))
}

// newForm builds the add form. A team fetch failure is logged by loadTeams
// and leaves only the "No Team" choice.
func (h *Handler) newForm(ctx context.Context) formData {
	return formData{
		Draft:  models.UserDraft{},
		Teams:  teamOptions(h.loadTeams(ctx), ""),
		Action: "/users",
	}
}

// ServeEdit renders the edit form pre-populated from the user's current
// record, located in a fresh listing.
// GET /users/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.Users.Find(r.Context(), id)
	if err != nil {
		h.findFailed(w, r, id, err)
		return
	}

	data := formData{
		Draft:  u.Draft(),
		Teams:  teamOptions(h.loadTeams(r.Context()), u.Team),
		IsEdit: true,
		Action: editURL(u.ID),
	}
	h.renderForm(w, r, data)
}

// HandleCreate submits the add form as a POST to the API.
// POST /users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxUserFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.HTMXBadRequest(w, r, "Bad request.", "/users")
		return
	}
	d := draftFromForm(r)
	d.ID = ""
	data := formData{Draft: d, Action: "/users"}

	if res := inputval.Validate(inputFrom(d)); res.HasErrors() {
		h.renderInvalid(w, r, data, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create user")
	defer cancel()

	err := h.Users.Create(ctx, d)
	h.Audit.UserCreated(r, d.Username, err)
	if err != nil {
		h.saveFailed(w, r, data, err)
		return
	}
	h.finish(w, r, msgCreated)
}

// HandleUpdate submits the edit form as a PUT to the API.
// POST /users/{id}/edit
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxUserFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.HTMXBadRequest(w, r, "Bad request.", "/users")
		return
	}
	d := draftFromForm(r)
	d.ID = id
	data := formData{Draft: d, IsEdit: true, Action: editURL(id)}

	if res := inputval.Validate(inputFrom(d)); res.HasErrors() {
		h.renderInvalid(w, r, data, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update user")
	defer cancel()

	err := h.Users.Update(ctx, d)
	h.Audit.UserUpdated(r, id, d.Username, err)
	if err != nil {
		h.saveFailed(w, r, data, err)
		return
	}
	h.finish(w, r, msgUpdated)
}

// draftFromForm reads the draft exactly as typed. Only validation sees
// trimmed values.
func draftFromForm(r *http.Request) models.UserDraft {
	return models.UserDraft{
		Username:  r.PostFormValue("username"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Team:      r.PostFormValue("team"),
	}
}

// renderInvalid re-renders the form after a failed server-side check. No
// request reached the API.
func (h *Handler) renderInvalid(w http.ResponseWriter, r *http.Request, data formData, msg string) {
	data.Teams = teamOptions(h.loadTeams(r.Context()), data.Draft.Team)
	data.SetError(msg)
	h.renderForm(w, r, data)
}

// saveFailed raises the blocking alert and keeps the form open with the
// draft echoed back.
func (h *Handler) saveFailed(w http.ResponseWriter, r *http.Request, data formData, err error) {
	msg := apiclient.Message(err)
	h.Log.Warn("error saving user",
		zap.String("user_id", data.Draft.ID),
		zap.String("username", data.Draft.Username),
		zap.Error(err))

	uierrors.SetAlert(w, "Error saving user: "+msg)
	data.Teams = teamOptions(h.loadTeams(r.Context()), data.Draft.Team)
	data.SetError(msg)
	h.renderForm(w, r, data)
}

// findFailed answers a form request whose user could not be loaded.
func (h *Handler) findFailed(w http.ResponseWriter, r *http.Request, id string, err error) {
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		uierrors.HTMXNotFound(w, r, "User not found.", "/users")
	case apiclient.IsCanceled(err):
		h.Log.Debug("user lookup canceled", zap.String("user_id", id))
	default:
		h.ErrLog.HTMXLogServerError(w, r, "error loading user", err, apiclient.Message(err), "/users")
	}
}

// renderForm writes the modal snippet for htmx and the full page otherwise.
func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, data formData) {
	if isHTMX(r) {
		data.CSRFToken = csrf.Token(r)
		templates.RenderSnippet(w, "users_form_modal", data)
		return
	}
	formutil.SetBase(&data.Base, w, r, data.Heading(), "/users")
	templates.Render(w, r, "users_form_page", data)
}

// finish records the confirmation and sends the browser back to the list,
// which mounts again and re-runs its fetch.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, msg string) {
	if h.Flash != nil {
		if err := h.Flash.Add(w, r, flash.KindSuccess, msg); err != nil {
			h.Log.Warn("could not store flash", zap.Error(err))
		}
	}
	h.redirect(w, r)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	dest := navigation.SafeBackURL(r, navigation.UsersBackURL)
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
