// Package api exposes the HTTP surface: job lifecycle, documents, the
// presenter pipeline, and the orchestrator planning endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/database"
	"github.com/exegete-ai/exegete/pkg/planner"
	"github.com/exegete-ai/exegete/pkg/presenter"
	"github.com/exegete-ai/exegete/pkg/queue"
	"github.com/exegete-ai/exegete/pkg/services"
	"github.com/exegete-ai/exegete/pkg/version"
)

// Server wires the service layer into HTTP handlers. Planner and presenter
// may be partially nil when no API key is configured; their endpoints then
// return service-unavailable while everything else keeps working.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	jobs      *services.JobService
	outputs   *services.OutputService
	documents *services.DocumentService
	planner   *planner.Planner // nil without an API key
	presenter *presenter.Service
	pool      *queue.WorkerPool
	registry  *queue.CancelRegistry
	plans     *planStore

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, db *database.Client, jobs *services.JobService, outputs *services.OutputService, documents *services.DocumentService, pl *planner.Planner, pres *presenter.Service, pool *queue.WorkerPool, registry *queue.CancelRegistry) *Server {
	return &Server{
		cfg:       cfg,
		db:        db,
		jobs:      jobs,
		outputs:   outputs,
		documents: documents,
		planner:   pl,
		presenter: pres,
		pool:      pool,
		registry:  registry,
		plans:     newPlanStore(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.Health)
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version.Version, "commit": version.Commit})
	})

	v1 := router.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		jobs.POST("", s.CreateJob)
		jobs.GET("", s.ListJobs)
		jobs.GET("/:id", s.GetJob)
		jobs.POST("/:id/cancel", s.CancelJob)
		jobs.GET("/:id/results", s.JobResults)
		jobs.GET("/:id/phases/:n", s.PhaseProse)
		jobs.DELETE("/:id", s.DeleteJob)

		docs := v1.Group("/documents")
		docs.POST("", s.CreateDocument)
		docs.GET("", s.ListDocuments)
		docs.GET("/:id", s.GetDocument)
		docs.DELETE("/:id", s.DeleteDocument)

		pres := v1.Group("/presenter")
		pres.POST("/compose/:id", s.Compose)
		pres.POST("/prepare/:id", s.Prepare)
		pres.POST("/refine-views/:id", s.RefineViews)
		pres.POST("/polish/:id/:view_key", s.PolishView)
		pres.GET("/page/:id", s.PresentPage)
		pres.GET("/view/:id/:view_key", s.PresentView)
		pres.GET("/status/:id", s.PresentStatus)

		orch := v1.Group("/orchestrator")
		orch.POST("/plan", s.Plan)
		orch.POST("/plan/adaptive", s.PlanAdaptive)
		orch.POST("/analyze", s.Analyze)

		catalog := v1.Group("/catalog")
		catalog.GET("/engines", s.ListEngines)
		catalog.GET("/chains", s.ListChains)
		catalog.GET("/views", s.ListViews)
		catalog.GET("/workflows", s.ListWorkflows)
	}

	return router
}

// Start begins serving on addr.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requireLLM guards LLM-consuming endpoints.
func (s *Server) requireLLM(c *gin.Context) bool {
	if s.planner == nil {
		detail(c, http.StatusServiceUnavailable, "no LLM configured: set ANTHROPIC_API_KEY")
		return false
	}
	return true
}
