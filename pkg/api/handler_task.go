package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// nextTaskHandler handles GET /client/tasks/next: the matcher either hands
// the agent a freshly-claimed slice, asks it to benchmark first, or reports
// no work.
func (s *Server) nextTaskHandler(c *gin.Context) {
	ag := currentAgent(c)
	if ag == nil {
		unauthorized(c)
		return
	}

	claimed, status, err := s.matcher.SelectTask(c.Request.Context(), ag)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	switch status {
	case services.SelectionBenchmarkRequired:
		c.JSON(http.StatusOK, models.NextTaskResponse{Status: models.NextTaskStatusBenchmarkRequired})
	case services.SelectionNoWork:
		c.JSON(http.StatusOK, models.NextTaskResponse{Status: models.NextTaskStatusNoWork})
	case services.SelectionTask:
		attackID, err := s.tasks.AttackID(c.Request.Context(), claimed)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		dto := models.TaskDTO{
			ID:       claimed.ID,
			AttackID: attackID,
			Status:   string(claimed.State),
			Skip:     &claimed.KeyspaceOffset,
			Limit:    &claimed.KeyspaceLimit,
		}
		if claimed.StartDate != nil {
			dto.StartDate = *claimed.StartDate
		}
		c.JSON(http.StatusOK, models.NextTaskResponse{Task: &dto})
	}
}

// submitStatusHandler handles POST /client/tasks/:id/status: one
// HashcatStatus frame for a running task, rejected with 409 when the task
// is not leased to the caller.
func (s *Server) submitStatusHandler(c *gin.Context) {
	ag, t, ok := s.leasedTask(c)
	if !ok {
		return
	}

	var frame models.HashcatStatusDTO
	if err := c.ShouldBindJSON(&frame); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := s.progress.Submit(c.Request.Context(), t, ag.ID, frame); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// submitCracksHandler handles POST /client/tasks/:id/cracks: a batch of
// cracked hashes, deduplicated server-side.
func (s *Server) submitCracksHandler(c *gin.Context) {
	ag, t, ok := s.leasedTask(c)
	if !ok {
		return
	}

	var entries []models.CrackEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := s.results.Submit(c.Request.Context(), t, ag.ID, entries); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reportErrorHandler handles POST /client/tasks/:id/error. Fatal severity
// fails the task.
func (s *Server) reportErrorHandler(c *gin.Context) {
	ag := currentAgent(c)
	if ag == nil {
		unauthorized(c)
		return
	}

	var report models.AgentErrorReport
	if err := c.ShouldBindJSON(&report); err != nil {
		badRequest(c, err)
		return
	}

	var t *ent.Task
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		loaded, err := s.tasks.GetWithAgent(c.Request.Context(), id)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		t = loaded
	}

	if _, err := s.agentErrors.Report(c.Request.Context(), ag, t, report); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abandonTaskHandler handles POST /client/tasks/:id/abandon: voluntary
// surrender of a slice; the task re-queues for another agent.
func (s *Server) abandonTaskHandler(c *gin.Context) {
	_, t, ok := s.leasedTask(c)
	if !ok {
		return
	}

	if _, err := s.tasks.ApplyEvent(c.Request.Context(), t, services.TaskTransitionInput{
		Event: statemachine.TaskEventAbandon,
	}); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// confirmCancelHandler handles POST /client/tasks/:id/confirm_cancel: the
// agent acknowledging a cancel signal it observed. Idempotent — a task the
// cancel cascade already failed acknowledges as a no-op.
func (s *Server) confirmCancelHandler(c *gin.Context) {
	ag := currentAgent(c)
	if ag == nil {
		unauthorized(c)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	t, err := s.tasks.GetWithAgent(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if statemachine.TaskState(t.State).Terminal() {
		c.Status(http.StatusNoContent)
		return
	}
	if t.Edges.Agent == nil || t.Edges.Agent.ID != ag.ID || !t.CancelRequested {
		mapServiceError(c, services.NewStateConflictError("task", string(t.State), "confirm_cancel"))
		return
	}

	if _, err := s.tasks.ApplyEvent(c.Request.Context(), t, services.TaskTransitionInput{
		Event: statemachine.TaskEventCancel,
	}); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// leasedTask loads the :id task with its agent edge and verifies the caller
// holds its lease, mapping violations to 409.
func (s *Server) leasedTask(c *gin.Context) (*ent.Agent, *ent.Task, bool) {
	ag := currentAgent(c)
	if ag == nil {
		unauthorized(c)
		return nil, nil, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return nil, nil, false
	}
	t, err := s.tasks.GetWithAgent(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return nil, nil, false
	}
	if t.State != task.StateRunning || t.Edges.Agent == nil || t.Edges.Agent.ID != ag.ID {
		mapServiceError(c, services.NewStateConflictError("task", string(t.State), "submit"))
		return nil, nil, false
	}
	return ag, t, true
}
