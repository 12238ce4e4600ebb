package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Compose handles POST /api/v1/presenter/compose/:id: refine, prepare,
// assemble in one call.
func (s *Server) Compose(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	slim, _ := strconv.ParseBool(c.DefaultQuery("slim", "false"))
	result, err := s.presenter.Compose(c.Request.Context(), c.Param("id"), slim)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Prepare handles POST /api/v1/presenter/prepare/:id. force=true bypasses
// the cache and overwrites every row.
func (s *Server) Prepare(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	stats, err := s.presenter.Prepare(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RefineViews handles POST /api/v1/presenter/refine-views/:id.
func (s *Server) RefineViews(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	ref, err := s.presenter.RefineViews(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job_id":         ref.JobID,
		"refined_views":  ref.RefinedViews,
		"change_summary": ref.ChangeSummary,
		"model_used":     ref.ModelUsed,
	})
}

// PolishViewRequest names the interpretive school to rewrite under.
type PolishViewRequest struct {
	School string `json:"school" binding:"required"`
	Force  bool   `json:"force,omitempty"`
}

// PolishView handles POST /api/v1/presenter/polish/:id/:view_key.
func (s *Server) PolishView(c *gin.Context) {
	if !s.requireLLM(c) {
		return
	}
	var req PolishViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := s.presenter.Polish(c.Request.Context(), c.Param("id"), c.Param("view_key"), req.School, req.Force)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job_id":     entry.JobID,
		"view_key":   entry.ViewKey,
		"school_key": entry.SchoolKey,
		"prose":      entry.Prose,
		"model_used": entry.ModelUsed,
	})
}

// PresentPage handles GET /api/v1/presenter/page/:id. Slim mode omits
// prose; callers re-fetch individual views on demand.
func (s *Server) PresentPage(c *gin.Context) {
	slim, _ := strconv.ParseBool(c.DefaultQuery("slim", "false"))
	page, err := s.presenter.Page(c.Request.Context(), c.Param("id"), slim)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PresentView handles GET /api/v1/presenter/view/:id/:view_key.
func (s *Server) PresentView(c *gin.Context) {
	payload, err := s.presenter.View(c.Request.Context(), c.Param("id"), c.Param("view_key"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// PresentStatus handles GET /api/v1/presenter/status/:id.
func (s *Server) PresentStatus(c *gin.Context) {
	status, err := s.presenter.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
