package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// registerAgentHandler handles POST /client/agents: the one-time exchange of
// an operator-issued invitation token for an agent row and bearer token.
func (s *Server) registerAgentHandler(c *gin.Context) {
	var req models.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ag, token, err := s.agents.Register(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	projects, err := s.agents.ProjectIDs(c.Request.Context(), ag.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.RegisterAgentResponse{
		AgentID:  ag.ID,
		Token:    token,
		Projects: projects,
	})
}

// getAgentHandler handles GET /client/agents/:id. An agent can only read its
// own profile; any other id is not-found, indistinguishable from absence.
func (s *Server) getAgentHandler(c *gin.Context) {
	ag, ok := s.pathAgent(c)
	if !ok {
		return
	}

	projects, err := s.agents.ProjectIDs(c.Request.Context(), ag.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AgentDTO{
		ID:             ag.ID,
		HostName:       ag.HostName,
		State:          string(ag.State),
		AdvancedConfig: ag.AdvancedConfig,
		Devices:        ag.Devices,
		Projects:       projects,
	})
}

// submitBenchmarksHandler handles POST /client/agents/:id/benchmark.
func (s *Server) submitBenchmarksHandler(c *gin.Context) {
	ag, ok := s.pathAgent(c)
	if !ok {
		return
	}

	var entries []models.HashcatBenchmark
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.benchmarks.Submit(c.Request.Context(), ag, entries); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// heartbeatHandler handles POST /client/agents/:id/heartbeat. A body of
// {state: "stopped"} announces shutdown: held tasks are released via
// abandon and the agent is told to stop; anything else is a plain
// keep-alive, idempotent
func (s *Server) heartbeatHandler(c *gin.Context) {
	ag, ok := s.pathAgent(c)
	if !ok {
		return
	}

	var req models.HeartbeatRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	if req.State != nil && *req.State == "stopped" {
		if err := s.agents.Shutdown(c.Request.Context(), ag); err != nil {
			mapServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.HeartbeatResponse{Command: models.HeartbeatCommandStop})
		return
	}

	resp, err := s.agents.Heartbeat(c.Request.Context(), ag, c.ClientIP())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// pathAgent resolves the :id path parameter against the authenticated
// agent, writing the enumeration-safe 404 on any mismatch.
func (s *Server) pathAgent(c *gin.Context) (*ent.Agent, bool) {
	ag := currentAgent(c)
	if ag == nil {
		unauthorized(c)
		return nil, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id != ag.ID {
		notFound(c)
		return nil, false
	}
	return ag, true
}
