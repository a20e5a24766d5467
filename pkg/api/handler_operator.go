package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/auth"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// createProjectHandler handles POST /api/v1/operator/projects.
func (s *Server) createProjectHandler(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := s.projects.Create(c.Request.Context(), req.Name)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ProjectResponse{
		ID: created.ID, Name: created.Name, CreatedAt: created.CreatedAt,
	})
}

// createInvitationHandler handles POST /api/v1/operator/projects/:id/invitations:
// mints the one-time credential a new agent exchanges at registration.
func (s *Server) createInvitationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := s.projects.Get(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	token := auth.IssueInvitation(id, s.cfg.Auth.InvitationSecret)
	c.JSON(http.StatusCreated, models.InvitationResponse{
		ProjectID: id, InvitationToken: token,
	})
}

// createHashListHandler handles POST /api/v1/operator/hash_lists.
func (s *Server) createHashListHandler(c *gin.Context) {
	var req models.CreateHashListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	items := make([]services.HashItemInput, 0, len(req.Hashes))
	for _, h := range req.Hashes {
		items = append(items, services.HashItemInput{HashValue: h.Hash, Metadata: h.Metadata})
	}
	created, err := s.hashLists.Create(c.Request.Context(), req.ProjectID, req.Name, req.HashMode, items)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hashListResponse(created, req.ProjectID))
}

// getHashListHandler handles GET /api/v1/operator/hash_lists/:id.
func (s *Server) getHashListHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	hl, err := s.hashLists.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hashListResponse(hl, 0))
}

func hashListResponse(hl *ent.HashList, projectID int64) models.HashListResponse {
	return models.HashListResponse{
		ID:             hl.ID,
		ProjectID:      projectID,
		Name:           hl.Name,
		HashMode:       hl.HashMode,
		UncrackedCount: hl.UncrackedCount,
	}
}

// createCampaignHandler handles POST /api/v1/operator/campaigns.
func (s *Server) createCampaignHandler(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := s.campaigns.Create(c.Request.Context(), services.CreateCampaignInput{
		ProjectID:  req.ProjectID,
		HashListID: req.HashListID,
		Name:       req.Name,
		Priority:   req.Priority,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaignResponse(created, req.ProjectID, req.HashListID))
}

// listCampaignsHandler handles GET /api/v1/operator/campaigns?project_id=N.
func (s *Server) listCampaignsHandler(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Query("project_id"), 10, 64)
	if err != nil {
		badRequest(c, err)
		return
	}
	list, err := s.campaigns.List(c.Request.Context(), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]models.CampaignResponse, 0, len(list))
	for _, camp := range list {
		out = append(out, campaignResponse(camp, projectID, 0))
	}
	c.JSON(http.StatusOK, out)
}

// getCampaignHandler handles GET /api/v1/operator/campaigns/:id.
func (s *Server) getCampaignHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	camp, err := s.campaigns.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaignResponse(camp, 0, 0))
}

func campaignResponse(camp *ent.Campaign, projectID, hashListID int64) models.CampaignResponse {
	return models.CampaignResponse{
		ID:         camp.ID,
		ProjectID:  projectID,
		Name:       camp.Name,
		Priority:   string(camp.Priority),
		State:      string(camp.State),
		HashListID: hashListID,
		CreatedAt:  camp.CreatedAt,
		UpdatedAt:  camp.UpdatedAt,
	}
}

// campaignLifecycleHandler builds the POST /campaigns/:id/<action> handler
// for one lifecycle action.
func (s *Server) campaignLifecycleHandler(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		camp, err := s.campaigns.Get(c.Request.Context(), id)
		if err != nil {
			mapServiceError(c, err)
			return
		}

		switch action {
		case "activate":
			_, err = s.campaigns.ApplyEvent(c.Request.Context(), camp, statemachine.CampaignEventActivate)
		case "archive":
			_, err = s.campaigns.ApplyEvent(c.Request.Context(), camp, statemachine.CampaignEventArchive)
		case "unarchive":
			_, err = s.campaigns.ApplyEvent(c.Request.Context(), camp, statemachine.CampaignEventUnarchive)
		case "pause":
			err = s.campaigns.Pause(c.Request.Context(), camp)
		case "resume":
			err = s.campaigns.Resume(c.Request.Context(), camp)
		case "stop":
			err = s.campaigns.Stop(c.Request.Context(), camp)
		case "reset":
			err = s.campaigns.Reset(c.Request.Context(), camp)
		}
		if err != nil {
			mapServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// createAttackHandler handles POST /api/v1/operator/campaigns/:id/attacks.
func (s *Server) createAttackHandler(c *gin.Context) {
	campaignID, ok := pathID(c)
	if !ok {
		return
	}
	var req models.CreateAttackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := s.campaigns.Get(c.Request.Context(), campaignID); err != nil {
		mapServiceError(c, err)
		return
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	}
	created, err := s.attacks.Create(c.Request.Context(), services.CreateAttackInput{
		CampaignID: campaignID,
		Position:   position,
		AttackMode: req.AttackMode,
		Mask:       req.Mask,
		CustomCharsets: [4]string{
			req.CustomCharset1, req.CustomCharset2, req.CustomCharset3, req.CustomCharset4,
		},
		IncrementMode:     req.IncrementMode,
		IncrementMinimum:  req.IncrementMinimum,
		IncrementMaximum:  req.IncrementMaximum,
		WorkloadProfile:   req.WorkloadProfile,
		Optimized:         req.Optimized,
		DisableMarkov:     req.DisableMarkov,
		ClassicMarkov:     req.ClassicMarkov,
		MarkovThreshold:   req.MarkovThreshold,
		SlowCandidateGens: req.SlowCandidateGenerators,
		WordListID:        req.WordListID,
		RuleListID:        req.RuleListID,
		MaskListID:        req.MaskListID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.AttackResponse{
		ID:         created.ID,
		CampaignID: campaignID,
		Position:   created.Position,
		AttackMode: string(created.AttackMode),
		State:      string(created.State),
	})
}

// reorderAttacksHandler handles POST /api/v1/operator/campaigns/:id/attacks/reorder.
func (s *Server) reorderAttacksHandler(c *gin.Context) {
	campaignID, ok := pathID(c)
	if !ok {
		return
	}
	var req models.ReorderAttacksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.attacks.Reorder(c.Request.Context(), campaignID, req.AttackIDsInOrder); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// attackEventHandler builds the POST /attacks/:id/<event> handler for one
// operator-driven attack event.
func (s *Server) attackEventHandler(event string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		attk, err := s.attacks.Get(c.Request.Context(), id)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		if _, err := s.attacks.ApplyEvent(c.Request.Context(), attk, statemachine.AttackEvent(event)); err != nil {
			mapServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// createResourceHandler handles POST /api/v1/operator/resources: mints the
// upload handle the operator pushes the file bytes to.
func (s *Server) createResourceHandler(c *gin.Context) {
	var req models.ResourceUploadHandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, uploadURL, err := s.resourceSvc.CreateUploadHandle(c.Request.Context(), services.CreateUploadHandleInput{
		Name:       req.Name,
		Kind:       req.Kind,
		Sensitive:  req.Sensitive,
		ProjectIDs: req.ProjectIDs,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ResourceUploadHandleResponse{
		ResourceID: created.ID,
		UploadURL:  uploadURL,
		FileHandle: created.FileHandle,
	})
}

// getResourceHandler handles GET /api/v1/operator/resources/:id.
func (s *Server) getResourceHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := s.resourceSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          res.ID,
		"name":        res.Name,
		"kind":        string(res.Kind),
		"file_handle": res.FileHandle,
		"line_count":  res.LineCount,
		"sensitive":   res.Sensitive,
	})
}

// setAgentStateHandler handles POST /api/v1/operator/agents/:id/state:
// operator enable/disable. Disabling releases any task the agent holds.
func (s *Server) setAgentStateHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.AgentAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ag, err := s.agents.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	updated, err := s.agents.SetState(c.Request.Context(), ag, req.State)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": updated.ID, "state": string(updated.State)})
}

// deleteAgentHandler handles DELETE /api/v1/operator/agents/:id.
func (s *Server) deleteAgentHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ag, err := s.agents.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.agents.Delete(c.Request.Context(), ag); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter, writing the
// enumeration-safe 404 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return id, true
}
