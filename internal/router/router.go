package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/learnhub/internal/aiquiz"
	"github.com/saulo-duarte/learnhub/internal/attempt"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/certificate"
	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/metrics"
	"github.com/saulo-duarte/learnhub/internal/middlewares"
	"github.com/saulo-duarte/learnhub/internal/progress"
	"github.com/saulo-duarte/learnhub/internal/user"
)

type RouterConfig struct {
	CORSOrigins        []string
	UserHandler        *user.Handler
	AuthHandler        *auth.Handler
	CatalogHandler     *catalog.Handler
	EnrollmentHandler  *enrollment.Handler
	AttemptHandler     *attempt.Handler
	ProgressHandler    *progress.Handler
	CertificateHandler *certificate.Handler
	AIQuizHandler      *aiquiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/certificates/verify", cfg.CertificateHandler.Verify)
	r.Post("/auth/logout", cfg.AuthHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))

		r.Get("/courses", cfg.CatalogHandler.ListCourses)
		r.Get("/courses/{courseID}", cfg.CatalogHandler.GetCourse)
		r.Get("/courses/{courseID}/quiz", cfg.CatalogHandler.GetActiveQuiz)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleStudent))

			r.Mount("/quizzes", attempt.QuizRoutes(cfg.AttemptHandler))
			r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
			r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
			r.Mount("/enrollments", enrollment.Routes(cfg.EnrollmentHandler))

			r.Get("/certificates", cfg.CertificateHandler.List)
			r.Get("/courses/{courseID}/enrollment", cfg.EnrollmentHandler.Status)
			r.Post("/courses/{courseID}/enroll", cfg.EnrollmentHandler.Enroll)
			r.Post("/courses/{courseID}/certificate", cfg.CertificateHandler.Generate)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))

			var generate http.HandlerFunc
			if cfg.AIQuizHandler != nil {
				generate = cfg.AIQuizHandler.GenerateQuestions
			}
			r.Mount("/admin", catalog.Routes(cfg.CatalogHandler, generate))
		})
	})
	return r
}
