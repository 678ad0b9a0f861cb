package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/learnhub/internal/config"
	util "github.com/saulo-duarte/learnhub/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for course")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, course)
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := util.URLParamUUID(r, "courseID")
	if !ok {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, course)
}

// GetActiveQuiz returns the quiz a student can take for a course.
func (h *Handler) GetActiveQuiz(w http.ResponseWriter, r *http.Request) {
	courseID, ok := util.URLParamUUID(r, "courseID")
	if !ok {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.GetActiveQuizByCourse(r.Context(), courseID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, ToQuizOverview(quiz))
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	courseID, ok := util.URLParamUUID(r, "courseID")
	if !ok {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), courseID, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) ListQuizzesByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := util.URLParamUUID(r, "courseID")
	if !ok {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	quizzes, err := h.service.ListQuizzesByCourse(r.Context(), courseID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	var dto AddQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for question")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), quizID, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.UpdateSettings(r.Context(), quizID, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.Publish(r.Context(), quizID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.Deactivate(r.Context(), quizID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}
