package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// getAttackHandler handles GET /client/attacks/:id: the complete attack
// configuration the agent needs to run a slice, with presigned resource
// URLs and the hash list download descriptor.
func (s *Server) getAttackHandler(c *gin.Context) {
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

	attk, err := s.attacks.GetForAgent(c.Request.Context(), id, ag.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	dto, err := s.buildAttackDTO(c, attk)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// buildAttackDTO projects a fully-loaded attack row onto the wire contract.
func (s *Server) buildAttackDTO(c *gin.Context, attk *ent.Attack) (*models.AttackDTO, error) {
	hashList := attk.Edges.Campaign.Edges.HashList

	dto := attackConfigDTO(attk)
	dto.HashListID = hashList.ID
	dto.HashMode = hashList.HashMode
	dto.URL = fmt.Sprintf("/client/attacks/%d", attk.ID)

	var err error
	if dto.WordList, err = s.signResource(c, attk.Edges.WordList); err != nil {
		return nil, err
	}
	if dto.RuleList, err = s.signResource(c, attk.Edges.RuleList); err != nil {
		return nil, err
	}
	if dto.MaskList, err = s.signResource(c, attk.Edges.MaskList); err != nil {
		return nil, err
	}

	// The serialized hash list lives in the object store under a handle
	// derived from its ID; the export pipeline that writes it is outside
	// the core, so a not-yet-exported list degrades to an empty URL
	// rather than failing the whole attack fetch.
	signed, err := s.registry.SignDownload(c.Request.Context(), hashListHandle(hashList.ID))
	if err != nil {
		slog.Warn("hash list export not yet available", "hash_list_id", hashList.ID, "error", err)
	} else {
		dto.HashListURL = signed.URL
		dto.HashListChecksum = signed.Checksum
	}

	return dto, nil
}

// attackConfigDTO maps the attack row's own columns; resource and hash list
// fields are filled in by the caller.
func attackConfigDTO(attk *ent.Attack) *models.AttackDTO {
	return &models.AttackDTO{
		ID:                      attk.ID,
		AttackMode:              string(attk.AttackMode),
		AttackModeHashcat:       models.AttackModeHashcat(string(attk.AttackMode)),
		Mask:                    attk.Mask,
		IncrementMode:           attk.IncrementMode,
		IncrementMinimum:        attk.IncrementMinimum,
		IncrementMaximum:        attk.IncrementMaximum,
		Optimized:               attk.Optimized,
		SlowCandidateGenerators: attk.SlowCandidateGenerators,
		WorkloadProfile:         attk.WorkloadProfile,
		DisableMarkov:           attk.DisableMarkov,
		ClassicMarkov:           attk.ClassicMarkov,
		MarkovThreshold:         attk.MarkovThreshold,
		LeftRule:                attk.LeftRule,
		RightRule:               attk.RightRule,
		CustomCharset1:          attk.CustomCharset1,
		CustomCharset2:          attk.CustomCharset2,
		CustomCharset3:          attk.CustomCharset3,
		CustomCharset4:          attk.CustomCharset4,
	}
}

// signResource builds the AttackResourceFile descriptor for an attached
// resource edge, or nil when the attack doesn't reference one.
func (s *Server) signResource(c *gin.Context, res *ent.Resource) (*models.AttackResourceFile, error) {
	if res == nil {
		return nil, nil
	}
	signed, err := s.resourceSvc.SignDownload(c.Request.Context(), res)
	if err != nil {
		return nil, err
	}
	return &models.AttackResourceFile{
		ID:          res.ID,
		DownloadURL: signed.URL,
		Checksum:    signed.Checksum,
		FileName:    res.Name,
	}, nil
}

// hashListHandle is the object-store handle convention for serialized hash
// lists.
func hashListHandle(hashListID int64) string {
	return fmt.Sprintf("hashlists/%d", hashListID)
}
