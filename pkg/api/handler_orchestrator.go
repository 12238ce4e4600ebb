package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exegete-ai/exegete/pkg/models"
)

// Plan handles POST /api/v1/orchestrator/plan: fixed-workflow planning.
func (s *Server) Plan(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := s.planner.GenerateFixedPlan(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.plans.put(plan, &req)
	c.JSON(http.StatusOK, plan)
}

// PlanAdaptive handles POST /api/v1/orchestrator/plan/adaptive:
// objective-driven planning over sampled work profiles.
func (s *Server) PlanAdaptive(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Objective == "" {
		detail(c, http.StatusBadRequest, "adaptive planning requires an objective")
		return
	}

	plan, err := s.planner.GenerateAdaptivePlan(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.plans.put(plan, &req)
	c.JSON(http.StatusOK, plan)
}

// Analyze handles POST /api/v1/orchestrator/analyze: plan and enqueue in
// one call. The queue picks the job up; poll GET /jobs/:id for progress.
func (s *Server) Analyze(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := s.planner.GeneratePlan(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.plans.put(plan, &req)

	result, err := s.jobs.Create(c.Request.Context(), plan, &req, docMapOf(plan))
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
		"plan_id":      plan.PlanID,
		"status":       result.Job.Status,
		"existing":     result.Existing,
		"cancel_token": result.CancelToken,
		"phases":       len(plan.Phases),
	})
}

// Catalog listings.

// ListEngines handles GET /api/v1/catalog/engines.
func (s *Server) ListEngines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"engines": s.cfg.Engines.ListSummaries()})
}

// ListChains handles GET /api/v1/catalog/chains.
func (s *Server) ListChains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chains": s.cfg.Chains.ListSummaries()})
}

// ListViews handles GET /api/v1/catalog/views.
func (s *Server) ListViews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"views": s.cfg.Views.ListSummaries()})
}

// ListWorkflows handles GET /api/v1/catalog/workflows.
func (s *Server) ListWorkflows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workflows": s.cfg.Workflows.ListSummaries()})
}
