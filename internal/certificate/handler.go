package certificate

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.service.ListCertificates(r.Context(), identity)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
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

	cert, err := h.service.GenerateCertificate(r.Context(), identity, courseID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, cert)
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token required", http.StatusBadRequest)
		return
	}

	entry, err := h.service.Verify(r.Context(), token)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, entry)
}
