package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves /users for any authenticated caller.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/me", h.Profile)
	return r
}
