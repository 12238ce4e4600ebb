package api

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/models"
)

// CreateJobRequest accepts either a plan id from a prior plan endpoint call
// or a complete inline plan.
type CreateJobRequest struct {
	PlanID  string                `json:"plan_id,omitempty"`
	Plan    *models.ExecutionPlan `json:"plan,omitempty"`
	Request *models.PlanRequest   `json:"request,omitempty"`
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan := req.Plan
	request := req.Request
	if plan == nil && req.PlanID != "" {
		stored, storedReq, ok := s.plans.get(req.PlanID)
		if !ok {
			detail(c, http.StatusNotFound, "plan id not found; generate a plan first or inline the plan")
			return
		}
		plan = stored
		request = storedReq
	}
	if plan == nil {
		detail(c, http.StatusBadRequest, "either plan_id or plan is required")
		return
	}
	if err := plan.Validate(); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.jobs.Create(c.Request.Context(), plan, request, docMapOf(plan))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"job_id":       result.Job.ID,
		"status":       result.Job.Status,
		"existing":     result.Existing,
		"cancel_token": result.CancelToken,
	})
}

// ListJobs handles GET /api/v1/jobs.
func (s *Server) ListJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobs, total, err := s.jobs.List(c.Request.Context(), limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]gin.H, len(jobs))
	for i, job := range jobs {
		items[i] = jobSummary(job)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items, "total": total, "limit": limit, "offset": offset})
}

// GetJob handles GET /api/v1/jobs/:id. The read also runs stale detection.
func (s *Server) GetJob(c *gin.Context) {
	job, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobStatusDoc(job))
}

// CancelJobRequest carries the creation-time cancel token.
type CancelJobRequest struct {
	CancelToken string `json:"cancel_token" binding:"required"`
}

// CancelJob handles POST /api/v1/jobs/:id/cancel. The persisted status is
// the cold path; when the job runs on this process the in-memory flag fires
// too and the runners observe it at the next check.
func (s *Server) CancelJob(c *gin.Context) {
	var req CancelJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.jobs.Cancel(c.Request.Context(), c.Param("id"), req.CancelToken)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	local := s.registry.Cancel(job.ID)
	c.JSON(http.StatusOK, gin.H{"job_id": job.ID, "status": job.Status, "local": local})
}

// JobResults handles GET /api/v1/jobs/:id/results.
func (s *Server) JobResults(c *gin.Context) {
	job, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	keys := make([]string, 0, len(job.PhaseResults))
	for k := range job.PhaseResults {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseFloat(keys[i], 64)
		b, _ := strconv.ParseFloat(keys[j], 64)
		return a < b
	})
	phases := make([]gin.H, 0, len(keys))
	for _, k := range keys {
		phases = append(phases, gin.H{"phase": k, "result": job.PhaseResults[k]})
	}
	c.JSON(http.StatusOK, gin.H{"job_id": job.ID, "status": job.Status, "phases": phases})
}

// PhaseProse handles GET /api/v1/jobs/:id/phases/:n: the full prose of one
// phase, available for failed jobs too.
func (s *Server) PhaseProse(c *gin.Context) {
	phase, err := strconv.ParseFloat(c.Param("n"), 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "phase number must be numeric")
		return
	}

	outputs, err := s.outputs.ListByPhase(c.Request.Context(), c.Param("id"), phase)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]gin.H, len(outputs))
	for i, o := range outputs {
		items[i] = gin.H{
			"output_id":     o.ID,
			"engine_key":    o.EngineKey,
			"pass_number":   o.PassNumber,
			"work_key":      o.WorkKey,
			"stance_key":    o.StanceKey,
			"role":          o.Role,
			"content":       o.Content,
			"model_used":    o.ModelUsed,
			"input_tokens":  o.InputTokens,
			"output_tokens": o.OutputTokens,
		}
	}
	c.JSON(http.StatusOK, gin.H{"job_id": c.Param("id"), "phase": phase, "outputs": items})
}

// DeleteJob handles DELETE /api/v1/jobs/:id. Terminal states only; the
// cascade removes outputs and cache rows.
func (s *Server) DeleteJob(c *gin.Context) {
	if err := s.jobs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// docMapOf collects the plan's work-title → document-id bindings.
func docMapOf(plan *models.ExecutionPlan) map[string]string {
	docMap := make(map[string]string)
	if plan.TargetWork.DocumentID != "" {
		docMap[plan.TargetWork.Title] = plan.TargetWork.DocumentID
	}
	for _, w := range plan.PriorWorks {
		if w.DocumentID != "" {
			docMap[w.Title] = w.DocumentID
		}
	}
	return docMap
}

func jobSummary(job *ent.AnalysisJob) gin.H {
	return gin.H{
		"job_id":     job.ID,
		"plan_id":    job.PlanID,
		"status":     job.Status,
		"created_at": job.CreatedAt,
	}
}

// jobStatusDoc is the always-well-formed status document. Failed jobs carry
// an error string; cancelled jobs carry progress but no error.
func jobStatusDoc(job *ent.AnalysisJob) gin.H {
	doc := gin.H{
		"job_id":       job.ID,
		"plan_id":      job.PlanID,
		"workflow_key": job.WorkflowKey,
		"status":       job.Status,
		"progress": gin.H{
			"current_phase":      job.CurrentPhase,
			"current_phase_name": job.CurrentPhaseName,
			"detail":             job.ProgressDetail,
			"completed_phases":   job.CompletedPhases,
		},
		"totals": gin.H{
			"llm_calls":     job.TotalLlmCalls,
			"input_tokens":  job.TotalInputTokens,
			"output_tokens": job.TotalOutputTokens,
		},
		"created_at": job.CreatedAt,
	}
	if job.StartedAt != nil {
		doc["started_at"] = job.StartedAt
	}
	if job.CompletedAt != nil {
		doc["completed_at"] = job.CompletedAt
	}
	if job.Status == "failed" && job.ErrorMessage != nil {
		doc["error"] = *job.ErrorMessage
	}
	return doc
}
