package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/database"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/queue"
	"github.com/exegete-ai/exegete/pkg/services"
	testutil "github.com/exegete-ai/exegete/test/util"
)

type apiHarness struct {
	server  *Server
	router  *gin.Engine
	jobs    *services.JobService
	outputs *services.OutputService
}

func newTestServer(t *testing.T) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, db := testutil.NewSQLiteClient(t)
	dbc := database.NewClientFromEnt(client, db)

	cfg := &config.Config{
		Settings: config.DefaultSettings(),
		Engines: config.NewEngineRegistry(map[string]*config.EngineDefinition{
			"dialectical": {Key: "dialectical", Name: "Dialectical Analysis", Category: "structural"},
		}),
		Chains: config.NewChainRegistry(map[string]*config.ChainDefinition{
			"core": {Key: "core", Engines: []string{"dialectical"}},
		}),
		Stances:             config.NewStanceRegistry(nil),
		Operationalizations: config.NewOperationalizationRegistry(nil),
		Workflows:           config.NewWorkflowRegistry(nil),
		Views:               config.NewViewRegistry(nil),
		Transformations:     config.NewTransformationRegistry(nil),
	}

	jobs := services.NewJobService(client, 5, 3*time.Hour)
	outputs := services.NewOutputService(client)
	documents := services.NewDocumentService(client)

	server := NewServer(cfg, dbc, jobs, outputs, documents, nil, nil, nil, queue.NewCancelRegistry())
	return &apiHarness{
		server:  server,
		router:  server.Router(),
		jobs:    jobs,
		outputs: outputs,
	}
}

func (h *apiHarness) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc), "body: %s", rec.Body.String())
	return doc
}

func apiPlan(planID string) *models.ExecutionPlan {
	return &models.ExecutionPlan{
		PlanID:      planID,
		TargetWork:  models.WorkMeta{Title: "Target"},
		WorkflowKey: "standard",
		Phases: []models.PhaseSpec{
			{PhaseNumber: 1.0, PhaseName: "foundation", ChainKey: "core"},
		},
	}
}

func TestCreateJobInlinePlan(t *testing.T) {
	h := newTestServer(t)

	rec := h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan("plan-api-1")})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doc := decode(t, rec)
	assert.Equal(t, "pending", doc["status"])
	assert.NotEmpty(t, doc["job_id"])
	assert.NotEmpty(t, doc["cancel_token"])

	// Retried POST with the same plan lands on the live job
	rec = h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan("plan-api-1")})
	require.Equal(t, http.StatusOK, rec.Code)
	again := decode(t, rec)
	assert.Equal(t, true, again["existing"])
	assert.Equal(t, doc["job_id"], again["job_id"])
}

func TestCreateJobValidation(t *testing.T) {
	h := newTestServer(t)

	rec := h.do(t, http.MethodPost, "/api/v1/jobs", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["detail"], "plan_id or plan")

	rec = h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{PlanID: "never-generated"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Broken dependency graph is rejected before job creation
	bad := apiPlan("plan-api-bad")
	bad.Phases[0].DependsOn = []float64{9.0}
	rec = h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: bad})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelJobTokenEnforcement(t *testing.T) {
	h := newTestServer(t)

	created := decode(t, h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan("plan-api-2")}))
	jobID := created["job_id"].(string)

	rec := h.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel",
		CancelJobRequest{CancelToken: "wrong-token"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel",
		CancelJobRequest{CancelToken: created["cancel_token"].(string)})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decode(t, rec)["status"])
}

func TestGetJobStatusDocument(t *testing.T) {
	h := newTestServer(t)

	created := decode(t, h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan("plan-api-3")}))
	jobID := created["job_id"].(string)

	rec := h.do(t, http.MethodGet, "/api/v1/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode(t, rec)
	assert.Equal(t, "plan-api-3", doc["plan_id"])
	assert.Contains(t, doc, "progress")
	assert.Contains(t, doc, "totals")
	assert.NotContains(t, doc, "error")

	rec = h.do(t, http.MethodGet, "/api/v1/jobs/no-such-job", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode(t, rec), "detail")
}

func TestDeleteJobTerminalOnly(t *testing.T) {
	h := newTestServer(t)

	created := decode(t, h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan("plan-api-4")}))
	jobID := created["job_id"].(string)

	rec := h.do(t, http.MethodDelete, "/api/v1/jobs/"+jobID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	h.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel",
		CancelJobRequest{CancelToken: created["cancel_token"].(string)})

	rec = h.do(t, http.MethodDelete, "/api/v1/jobs/"+jobID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/jobs/"+jobID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPhaseProseEndpoint(t *testing.T) {
	h := newTestServer(t)
	ctx := context.Background()

	created := decode(t, h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan("plan-api-5")}))
	jobID := created["job_id"].(string)

	_, err := h.outputs.Persist(ctx, services.PersistParams{
		JobID:       jobID,
		PhaseNumber: 1.0,
		EngineKey:   "dialectical",
		PassNumber:  1,
		Role:        "extraction",
		Content:     "the phase prose",
	})
	require.NoError(t, err)

	rec := h.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/phases/1.0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode(t, rec)
	outputs := doc["outputs"].([]interface{})
	require.Len(t, outputs, 1)
	assert.Equal(t, "the phase prose", outputs[0].(map[string]interface{})["content"])

	rec = h.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/phases/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := h.do(t, http.MethodPost, "/api/v1/documents", CreateDocumentRequest{
		Title:   "Phenomenology of Spirit",
		Author:  "Hegel",
		Role:    "target",
		Content: "the full text",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	docID := created["document_id"].(string)
	assert.Equal(t, float64(13), created["char_count"])

	// Role defaults to prior_work
	rec = h.do(t, http.MethodPost, "/api/v1/documents", CreateDocumentRequest{
		Title: "Science of Logic", Content: "the prior text",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "prior_work", decode(t, rec)["role"])

	rec = h.do(t, http.MethodPost, "/api/v1/documents", CreateDocumentRequest{
		Title: "Fragment", Role: "chapter", Content: "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/documents", map[string]interface{}{"title": "No Content"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/documents?role=target", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode(t, rec)
	assert.Equal(t, float64(1), listed["total"])

	rec = h.do(t, http.MethodGet, "/api/v1/documents/"+docID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "the full text", decode(t, rec)["content"])

	rec = h.do(t, http.MethodDelete, "/api/v1/documents/"+docID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = h.do(t, http.MethodDelete, "/api/v1/documents/"+docID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := h.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode(t, rec)
	assert.Equal(t, "healthy", doc["status"])
	assert.Equal(t, false, doc["llm_configured"])
	db := doc["database"].(map[string]interface{})
	assert.Equal(t, "healthy", db["status"])
}

func TestOrchestratorEndpointsRequireLLM(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{
		"/api/v1/orchestrator/plan",
		"/api/v1/orchestrator/plan/adaptive",
		"/api/v1/orchestrator/analyze",
	} {
		rec := h.do(t, http.MethodPost, path, map[string]interface{}{})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
		assert.Contains(t, decode(t, rec)["detail"], "no LLM configured")
	}
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := h.do(t, http.MethodGet, "/api/v1/catalog/engines", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	engines := decode(t, rec)["engines"].([]interface{})
	require.Len(t, engines, 1)
	assert.Equal(t, "dialectical", engines[0].(map[string]interface{})["key"])

	rec = h.do(t, http.MethodGet, "/api/v1/catalog/chains", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "version")
}

func TestListJobsPagination(t *testing.T) {
	h := newTestServer(t)
	for _, id := range []string{"plan-list-1", "plan-list-2", "plan-list-3"} {
		rec := h.do(t, http.MethodPost, "/api/v1/jobs", CreateJobRequest{Plan: apiPlan(id)})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := h.do(t, http.MethodGet, "/api/v1/jobs?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode(t, rec)
	assert.Equal(t, float64(3), doc["total"])
	assert.Len(t, doc["jobs"], 2)
}
