package attempt_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/attempt"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/config"
)

func newRouter(f *fixture, as auth.Identity) http.Handler {
	h := attempt.NewHandler(f.svc)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), as)))
		})
	})
	r.Mount("/quizzes", attempt.QuizRoutes(h))
	r.Mount("/attempts", attempt.Routes(h))
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerFlow(t *testing.T) {
	f := newFixture(t, config.PassPolicyLastWriteWins)
	router := newRouter(f, f.student)

	rec := do(t, router, http.MethodPost, "/quizzes/"+f.quiz.ID.String()+"/attempts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "is_correct")
	var begun attempt.BeginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&begun))

	gradePath := "/attempts/" + begun.AttemptID.String() + "/grade"
	rec = do(t, router, http.MethodPost, gradePath, attempt.GradeRequest{Answers: f.answers(4)})
	require.Equal(t, http.StatusOK, rec.Code)
	var graded attempt.GradedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&graded))
	assert.Equal(t, 80.0, graded.Attempt.Percentage)
	assert.True(t, graded.Progress.Passed)

	rec = do(t, router, http.MethodPost, gradePath, attempt.GradeRequest{Answers: f.answers(5)})
	assert.Equal(t, http.StatusConflict, rec.Code)
	var errResp config.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "ALREADY_GRADED", errResp.Error)
	assert.Equal(t, "/dashboard", errResp.Redirect)

	rec = do(t, router, http.MethodGet, "/attempts/"+begun.AttemptID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/quizzes/"+f.quiz.ID.String()+"/attempts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []attempt.AttemptResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&history))
	assert.Len(t, history, 1)
}

func TestHandlerErrors(t *testing.T) {
	f := newFixture(t, config.PassPolicyLastWriteWins)

	t.Run("NotEnrolled", func(t *testing.T) {
		rec := do(t, newRouter(f, f.stranger(t)), http.MethodPost, "/quizzes/"+f.quiz.ID.String()+"/attempts", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_ENROLLED")
	})

	t.Run("BadID", func(t *testing.T) {
		rec := do(t, newRouter(f, f.student), http.MethodPost, "/quizzes/not-a-uuid/attempts", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("BadBody", func(t *testing.T) {
		begun := f.begin(t)
		req := httptest.NewRequest(http.MethodPost, "/attempts/"+begun.AttemptID.String()+"/grade", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		newRouter(f, f.student).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		h := attempt.NewHandler(f.svc)
		r := chi.NewRouter()
		r.Mount("/quizzes", attempt.QuizRoutes(h))

		rec := do(t, r, http.MethodPost, "/quizzes/"+f.quiz.ID.String()+"/attempts", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
