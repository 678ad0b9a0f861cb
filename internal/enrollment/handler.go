package enrollment

import (
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

func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, ok := util.URLParamUUID(r, "courseID")
	if !ok {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	e, err := h.service.Enroll(r.Context(), identity, courseID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	enrollments, err := h.service.ListByUser(r.Context(), identity)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, enrollments)
}

// Status reports whether the caller is enrolled in a course.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, ok := util.URLParamUUID(r, "courseID")
	if !ok {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	enrolled, err := h.service.IsEnrolled(r.Context(), identity.UserID, courseID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, StatusResponse{CourseID: courseID, Enrolled: enrolled})
}
