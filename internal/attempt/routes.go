package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves /attempts.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{attemptID}", h.Result)
	r.Post("/{attemptID}/grade", h.Grade)
	return r
}

// QuizRoutes serves the attempt endpoints nested under /quizzes.
func QuizRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/{quizID}/attempts", h.Begin)
	r.Get("/{quizID}/attempts", h.History)
	return r
}
