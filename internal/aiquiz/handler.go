package aiquiz

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

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, ok := util.URLParamUUID(r, "quizID")
	if !ok {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid draft request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.DraftQuestions(r.Context(), quizID, req)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}
