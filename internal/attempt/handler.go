package attempt

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/config"
	util "github.com/saulo-duarte/learnhub/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	resp, err := h.service.BeginAttempt(r.Context(), identity, quizID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attemptID, ok := util.URLParamUUID(r, "attemptID")
	if !ok {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	var req GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid grading payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GradeAttempt(r.Context(), identity, attemptID, Submission(req.Answers))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attemptID, ok := util.URLParamUUID(r, "attemptID")
	if !ok {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetResult(r.Context(), identity, attemptID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.ListAttempts(r.Context(), identity, quizID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}
