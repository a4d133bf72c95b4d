package users

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/table", h.ServeTable)
	r.Get("/new", h.ServeNew)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleUpdate)
	r.Get("/{id}/delete", h.ServeDelete)
	r.Post("/{id}/delete", h.HandleDelete)
	return r
}
