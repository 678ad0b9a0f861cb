package container_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/learnhub/internal/attempt"
	"github.com/saulo-duarte/learnhub/internal/auth"
	"github.com/saulo-duarte/learnhub/internal/catalog"
	"github.com/saulo-duarte/learnhub/internal/certificate"
	"github.com/saulo-duarte/learnhub/internal/config"
	"github.com/saulo-duarte/learnhub/internal/container"
	"github.com/saulo-duarte/learnhub/internal/enrollment"
	"github.com/saulo-duarte/learnhub/internal/memstore"
)

type client struct {
	t     *testing.T
	h     http.Handler
	token string
}

func (c client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler, userID, role string) client {
	t.Helper()
	token, err := auth.GenerateJWT(userID, role, time.Minute)
	require.NoError(t, err)
	return client{t: t, h: h, token: token}
}

func TestLifecycleOverHTTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "learnhub-test-secret-long-enough-for-hs256")
	auth.Init()

	ctx := context.Background()
	db := memstore.New()

	student, err := db.AddUser("Ada", auth.RoleStudent)
	require.NoError(t, err)
	admin, err := db.AddUser("Root", auth.RoleAdmin)
	require.NoError(t, err)
	course, err := db.AddCourse("Go Fundamentals", "Rob")
	require.NoError(t, err)
	quiz, err := db.AddQuiz(course.ID, 5, 70, 30, true)
	require.NoError(t, err)

	codec, err := config.NewCodec("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	settings := &config.Settings{
		CORSOrigins:      []string{"*"},
		EnforceTimeLimit: true,
		TimeLimitGrace:   30 * time.Second,
		PassPolicy:       config.PassPolicyLastWriteWins,
		GeminiModel:      "gemini-2.0-flash",
	}
	stores := &container.Stores{
		Users:        db.Users(),
		Catalog:      db.CatalogStore(),
		Enrollments:  db.EnrollmentStore(),
		Progress:     db.ProgressStore(),
		Attempts:     db.AttemptStore(),
		Certificates: db.CertificateStore(),
	}
	h := container.Build(ctx, settings, stores, codec).Router(settings.CORSOrigins)

	anon := client{t: t, h: h}
	me := login(t, h, student.ID.String(), auth.RoleStudent)
	root := login(t, h, admin.ID.String(), auth.RoleAdmin)

	assert.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodGet, "/progress", nil).Code)
	rec := me.do(http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"student"`)

	rec = me.do(http.MethodGet, "/courses?q=fundamentals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var courses []catalog.Course
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&courses))
	require.Len(t, courses, 1)
	coursePath := "/courses/" + courses[0].ID.String()

	assert.Equal(t, http.StatusOK, me.do(http.MethodGet, coursePath, nil).Code)
	assert.Equal(t, http.StatusNotFound, me.do(http.MethodGet, "/courses/"+uuid.NewString(), nil).Code)

	rec = me.do(http.MethodGet, coursePath+"/quiz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "is_correct")
	var overview catalog.QuizOverview
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&overview))
	assert.Equal(t, quiz.ID, overview.ID)
	assert.Equal(t, 5, overview.TotalQuestions)

	beginPath := "/quizzes/" + overview.ID.String() + "/attempts"
	assert.Equal(t, http.StatusForbidden, me.do(http.MethodPost, beginPath, nil).Code)
	assert.Equal(t, http.StatusForbidden, root.do(http.MethodPost, beginPath, nil).Code)

	var status enrollment.StatusResponse
	rec = me.do(http.MethodGet, coursePath+"/enrollment", nil)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.False(t, status.Enrolled)

	rec = me.do(http.MethodPost, coursePath+"/enroll", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = me.do(http.MethodGet, coursePath+"/enrollment", nil)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.True(t, status.Enrolled)

	rec = me.do(http.MethodPost, beginPath, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var begun attempt.BeginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&begun))
	require.Len(t, begun.Questions, 5)

	// seeded quizzes mark "Option A" correct
	answers := map[string]string{}
	for _, q := range begun.Questions {
		for _, o := range q.Options {
			if o.Text == "Option A" {
				answers[q.ID.String()] = o.ID.String()
			}
		}
	}
	rec = me.do(http.MethodPost, "/attempts/"+begun.AttemptID.String()+"/grade", map[string]interface{}{"answers": answers})
	require.Equal(t, http.StatusOK, rec.Code)
	var graded attempt.GradedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&graded))
	assert.Equal(t, 100.0, graded.Attempt.Percentage)

	rec = me.do(http.MethodPost, beginPath, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = me.do(http.MethodPost, coursePath+"/certificate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var issued certificate.IssuedCertificate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&issued))
	assert.Equal(t, 100.0, issued.Score)

	rec = anon.do(http.MethodGet, "/certificates/verify?token="+url.QueryEscape(issued.VerificationToken), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), issued.CertificateID)

	assert.Equal(t, http.StatusOK, me.do(http.MethodGet, "/certificates", nil).Code)
	assert.Equal(t, http.StatusOK, me.do(http.MethodGet, "/progress/"+quiz.ID.String(), nil).Code)

	adminQuiz := "/admin/quizzes/" + quiz.ID.String()
	assert.Equal(t, http.StatusForbidden, me.do(http.MethodGet, adminQuiz, nil).Code)
	assert.Equal(t, http.StatusOK, root.do(http.MethodGet, adminQuiz, nil).Code)
}
