package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves the admin authoring API. generate, when set, handles drafted question generation.
func Routes(h *Handler, generate http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Post("/courses", h.CreateCourse)
	r.Post("/courses/{courseID}/quizzes", h.CreateQuiz)
	r.Get("/courses/{courseID}/quizzes", h.ListQuizzesByCourse)

	r.Get("/quizzes/{quizID}", h.GetQuiz)
	r.Put("/quizzes/{quizID}", h.UpdateSettings)
	r.Post("/quizzes/{quizID}/questions", h.AddQuestion)
	r.Post("/quizzes/{quizID}/publish", h.Publish)
	r.Post("/quizzes/{quizID}/deactivate", h.Deactivate)
	if generate != nil {
		r.Post("/quizzes/{quizID}/questions/generate", generate)
	}
	return r
}
