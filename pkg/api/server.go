// Package api provides the HTTP surface of the distribution core: the
// agent-facing wire protocol under /client, and the operator-facing
// control surface under /api/v1/operator.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/resources"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// SweepStatus is the read-only view of the reclamation sweeper the health
// probe reports; implemented by queue.Sweeper.
type SweepStatus interface {
	LastSweep() (scanned, reclaimed, failed int, ok bool)
}

// Server is the HTTP API server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client

	agents    *services.AgentService
	tasks     *services.TaskService
	attacks   *services.AttackService
	campaigns *services.CampaignService
	matcher   *services.MatcherService

	benchmarks  *services.BenchmarkService  // nil until set
	agentErrors *services.AgentErrorService // nil until set
	progress    *services.ProgressService   // nil until set
	results     *services.ResultService     // nil until set
	projects    *services.ProjectService    // nil until set
	hashLists   *services.HashListService   // nil until set
	resourceSvc *services.ResourceService   // nil until set
	registry    resources.Registry          // nil until set
	sweeper     SweepStatus                 // optional
	poller      *resources.Poller           // optional
}

// NewServer creates the API server and registers its routes. The remaining
// services are wired via Set* before Start; ValidateWiring catches gaps at
// boot rather than as request-time 500s.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	agents *services.AgentService,
	tasks *services.TaskService,
	attacks *services.AttackService,
	campaigns *services.CampaignService,
	matcher *services.MatcherService,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		cfg:       cfg,
		dbClient:  dbClient,
		agents:    agents,
		tasks:     tasks,
		attacks:   attacks,
		campaigns: campaigns,
		matcher:   matcher,
	}
	s.setupRoutes()
	return s
}

// SetBenchmarkService wires the benchmark ingestion service.
func (s *Server) SetBenchmarkService(svc *services.BenchmarkService) { s.benchmarks = svc }

// SetAgentErrorService wires the agent error ingestion service.
func (s *Server) SetAgentErrorService(svc *services.AgentErrorService) { s.agentErrors = svc }

// SetProgressService wires the progress ingestor.
func (s *Server) SetProgressService(svc *services.ProgressService) { s.progress = svc }

// SetResultService wires the result ingestor.
func (s *Server) SetResultService(svc *services.ResultService) { s.results = svc }

// SetProjectService wires project CRUD for the operator surface.
func (s *Server) SetProjectService(svc *services.ProjectService) { s.projects = svc }

// SetHashListService wires hash list CRUD and the hash list export.
func (s *Server) SetHashListService(svc *services.HashListService) { s.hashLists = svc }

// SetResourceService wires resource upload-handle issuance and signing.
func (s *Server) SetResourceService(svc *services.ResourceService) { s.resourceSvc = svc }

// SetRegistry wires the object-store registry used to sign hash list
// download URLs for the Attack DTO.
func (s *Server) SetRegistry(r resources.Registry) { s.registry = r }

// SetSweeper wires the reclamation sweeper's status view into the health
// probe. Optional: health simply omits the check when absent.
func (s *Server) SetSweeper(sw SweepStatus) { s.sweeper = sw }

// SetResourcePoller wires the readiness poller's status view into the
// health probe. Optional.
func (s *Server) SetResourcePoller(p *resources.Poller) { s.poller = p }

// ValidateWiring checks that every required Set* call happened. Call after
// wiring and before Start.
func (s *Server) ValidateWiring() error {
	var errs []error
	if s.benchmarks == nil {
		errs = append(errs, fmt.Errorf("benchmarks not set (call SetBenchmarkService)"))
	}
	if s.agentErrors == nil {
		errs = append(errs, fmt.Errorf("agentErrors not set (call SetAgentErrorService)"))
	}
	if s.progress == nil {
		errs = append(errs, fmt.Errorf("progress not set (call SetProgressService)"))
	}
	if s.results == nil {
		errs = append(errs, fmt.Errorf("results not set (call SetResultService)"))
	}
	if s.projects == nil {
		errs = append(errs, fmt.Errorf("projects not set (call SetProjectService)"))
	}
	if s.hashLists == nil {
		errs = append(errs, fmt.Errorf("hashLists not set (call SetHashListService)"))
	}
	if s.resourceSvc == nil {
		errs = append(errs, fmt.Errorf("resourceSvc not set (call SetResourceService)"))
	}
	if s.registry == nil {
		errs = append(errs, fmt.Errorf("registry not set (call SetRegistry)"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("server wiring incomplete: %w", errors.Join(errs...))
	}
	return nil
}

// setupRoutes registers every route of both API surfaces.
func (s *Server) setupRoutes() {
	s.engine.Use(securityHeaders())
	s.engine.Use(bodyLimit(s.cfg.HTTP.MaxBodyBytes))

	s.engine.GET("/health", s.healthHandler)

	// Agent API. Registration is the only unauthenticated
	// endpoint; everything else runs behind the bearer middleware.
	client := s.engine.Group("/client")
	client.POST("/agents", s.registerAgentHandler)

	authed := client.Group("")
	authed.Use(s.agentAuth())
	authed.GET("/agents/:id", s.getAgentHandler)
	authed.POST("/agents/:id/benchmark", s.submitBenchmarksHandler)
	authed.POST("/agents/:id/heartbeat", s.heartbeatHandler)
	authed.GET("/tasks/next", s.nextTaskHandler)
	authed.GET("/attacks/:id", s.getAttackHandler)
	authed.POST("/tasks/:id/status", s.submitStatusHandler)
	authed.POST("/tasks/:id/cracks", s.submitCracksHandler)
	authed.POST("/tasks/:id/error", s.reportErrorHandler)
	authed.POST("/tasks/:id/abandon", s.abandonTaskHandler)
	authed.POST("/tasks/:id/confirm_cancel", s.confirmCancelHandler)

	// Operator API: server-internal, summarized contract.
	// Operator authentication/session management is out of scope
	// and expected in front of this surface.
	op := s.engine.Group("/api/v1/operator")
	op.POST("/projects", s.createProjectHandler)
	op.POST("/projects/:id/invitations", s.createInvitationHandler)
	op.POST("/hash_lists", s.createHashListHandler)
	op.GET("/hash_lists/:id", s.getHashListHandler)
	op.POST("/campaigns", s.createCampaignHandler)
	op.GET("/campaigns", s.listCampaignsHandler)
	op.GET("/campaigns/:id", s.getCampaignHandler)
	op.POST("/campaigns/:id/activate", s.campaignLifecycleHandler("activate"))
	op.POST("/campaigns/:id/pause", s.campaignLifecycleHandler("pause"))
	op.POST("/campaigns/:id/resume", s.campaignLifecycleHandler("resume"))
	op.POST("/campaigns/:id/stop", s.campaignLifecycleHandler("stop"))
	op.POST("/campaigns/:id/reset", s.campaignLifecycleHandler("reset"))
	op.POST("/campaigns/:id/archive", s.campaignLifecycleHandler("archive"))
	op.POST("/campaigns/:id/unarchive", s.campaignLifecycleHandler("unarchive"))
	op.POST("/campaigns/:id/attacks", s.createAttackHandler)
	op.POST("/campaigns/:id/attacks/reorder", s.reorderAttacksHandler)
	op.POST("/attacks/:id/reset", s.attackEventHandler("reset"))
	op.POST("/attacks/:id/cancel", s.attackEventHandler("cancel"))
	op.POST("/attacks/:id/abandon", s.attackEventHandler("abandon"))
	op.POST("/resources", s.createResourceHandler)
	op.GET("/resources/:id", s.getResourceHandler)
	op.POST("/agents/:id/state", s.setAgentStateHandler)
	op.DELETE("/agents/:id", s.deleteAgentHandler)
	op.GET("/health", s.healthHandler)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: s.cfg.HTTP.ReadHeaderTimeout(),
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on a pre-created listener, for tests that need a
// random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.engine}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the underlying handler for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
