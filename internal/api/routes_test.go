package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reptrack/reptrack/internal/api"
	"reptrack/reptrack/internal/catalog"
	"reptrack/reptrack/internal/service"
	"reptrack/reptrack/internal/storage"
	"reptrack/reptrack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender records the last delivered sign-in code instead of sending it.
type stubSender struct{ code string }

func (s *stubSender) SendCode(_ context.Context, _, code string) error {
	s.code = code
	return nil
}

type testServer struct {
	router *gin.Engine
	sender *stubSender
	stores api.Stores
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := storage.NewMemoryStore()
	stores := api.Stores{
		Plans:     store.NewPlanStore(kv),
		Schedules: store.NewScheduleStore(kv),
		Workouts:  store.NewWorkoutStore(kv),
	}
	sender := &stubSender{}
	authService := service.NewAuthService(sender, "test-secret", time.Hour, time.Minute)
	planService := service.NewPlanService(stores.Plans, stores.Schedules)

	router := gin.New()
	api.SetupRoutes(router, authEnabled, authService, planService, stores, catalog.Default())

	return &testServer{
		router: router,
		sender: sender,
		stores: stores,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func validPlanRequest() api.SavePlanRequest {
	return api.SavePlanRequest{
		Name: "Push Day",
		Exercises: []api.PlanExerciseRequest{
			{Name: "Bench Press", TargetSets: 3},
		},
	}
}

func TestPing(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlanEndpoints(t *testing.T) {
	ts := newTestServer(t, false)

	// Create.
	rec := ts.do(t, http.MethodPost, "/api/v1/plans", validPlanRequest(), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Push Day", created.Name)
	require.Len(t, created.Exercises, 1)
	assert.NotEmpty(t, created.Exercises[0].ID, "exercise IDs are assigned server-side")

	// List shows the new plan first.
	rec = ts.do(t, http.MethodGet, "/api/v1/plans", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Update.
	update := validPlanRequest()
	update.Name = "Heavy Push Day"
	rec = ts.do(t, http.MethodPut, "/api/v1/plans/"+created.ID, update, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Heavy Push Day", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "updates keep the original creation time")

	// Delete.
	rec = ts.do(t, http.MethodDelete, "/api/v1/plans/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = ts.do(t, http.MethodGet, "/api/v1/plans", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreatePlanValidationFailure(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/api/v1/plans", api.SavePlanRequest{Name: "Push Day"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp api.ValidationFailedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []service.ValidationIssue{service.IssueNoExercises}, resp.Issues)
}

func TestUpdateUnknownPlan(t *testing.T) {
	ts := newTestServer(t, false)
	rec := ts.do(t, http.MethodPut, "/api/v1/plans/nope", validPlanRequest(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePlanClearsScheduleSlots(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/api/v1/plans", validPlanRequest(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	scheduleReq := map[string]interface{}{
		"name": "Split",
		"weekdays": map[string]string{
			"monday": created.ID,
		},
	}
	rec = ts.do(t, http.MethodPost, "/api/v1/schedules", scheduleReq, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodDelete, "/api/v1/plans/"+created.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	items := ts.stores.Schedules.Items()
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Weekdays["monday"])
}

func TestCreateScheduleRejectsUnknownWeekday(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/api/v1/schedules", map[string]interface{}{
		"name":     "Split",
		"weekdays": map[string]string{"funday": "some-plan"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateScheduleRejectsDanglingPlan(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/api/v1/schedules", map[string]interface{}{
		"name":     "Split",
		"weekdays": map[string]string{"monday": "no-such-plan"},
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCatalogSearchEndpoint(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodGet, "/api/v1/catalog/search?q=chest&limit=3", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []api.CatalogResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 3)
	for _, result := range results {
		assert.Positive(t, result.Score)
	}

	// No query, no results.
	rec = ts.do(t, http.MethodGet, "/api/v1/catalog/search", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/catalog/search?q=chest&limit=zero", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddlewareGuardsStateRoutes(t *testing.T) {
	ts := newTestServer(t, true)

	rec := ts.do(t, http.MethodGet, "/api/v1/plans", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// OTP flow yields a token that unlocks the protected routes.
	rec = ts.do(t, http.MethodPost, "/api/v1/auth/otp", map[string]string{"email": "user@example.com"}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	require.NotEmpty(t, ts.sender.code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/verify", map[string]string{
		"email": "user@example.com",
		"code":  ts.sender.code,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var verified api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verified))
	require.NotEmpty(t, verified.Token)

	authz := map[string]string{"Authorization": "Bearer " + verified.Token}
	rec = ts.do(t, http.MethodGet, "/api/v1/plans", nil, authz)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/me", nil, authz)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"user@example.com"}`, rec.Body.String())
}

func TestVerifyWithWrongCodeIsUnauthorized(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/otp", map[string]string{"email": "user@example.com"}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	wrong := "000000"
	if ts.sender.code == wrong {
		wrong = "000001"
	}
	rec = ts.do(t, http.MethodPost, "/api/v1/auth/verify", map[string]string{
		"email": "user@example.com",
		"code":  wrong,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
