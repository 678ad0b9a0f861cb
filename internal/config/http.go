package config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/learnhub/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode response")
	}
}

type ErrorResponse struct {
	Error    string                `json:"error"`
	Message  string                `json:"message"`
	Redirect string                `json:"redirect,omitempty"`
	Fields   []apperror.FieldError `json:"fields,omitempty"`
}

// Error writes err as an ErrorResponse. Store failures are logged and answered with a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	resp := ErrorResponse{
		Error:    string(kind),
		Redirect: RedirectFor(kind),
	}

	if kind == apperror.StoreUnavailable {
		WithContext(r.Context()).WithError(err).Error("Request failed on backing store")
		resp.Message = "something went wrong, please try again later"
	} else {
		var ae *apperror.Error
		if errors.As(err, &ae) {
			resp.Message = ae.Message
			resp.Fields = ae.Fields
		}
	}

	JSON(w, StatusFor(kind), resp)
}

func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.Validation:
		return http.StatusBadRequest
	case apperror.NotEnrolled, apperror.AttemptNotOwned, apperror.QuizNotPassed:
		return http.StatusForbidden
	case apperror.QuizNotFound, apperror.AttemptNotFound, apperror.CourseNotFound, apperror.CertificateNotFound:
		return http.StatusNotFound
	case apperror.QuizInactive, apperror.AlreadyPassed, apperror.AlreadyGraded, apperror.TimeLimitExceeded:
		return http.StatusConflict
	case apperror.NotEnoughQuestions:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusServiceUnavailable
	}
}

// RedirectFor names the safe page a client should send the user to after a refused operation.
func RedirectFor(kind apperror.Kind) string {
	switch kind {
	case apperror.NotEnrolled, apperror.QuizNotFound, apperror.QuizInactive, apperror.CourseNotFound:
		return "/courses"
	case apperror.AlreadyPassed, apperror.AttemptNotFound, apperror.AttemptNotOwned,
		apperror.AlreadyGraded, apperror.TimeLimitExceeded, apperror.QuizNotPassed:
		return "/dashboard"
	default:
		return ""
	}
}
