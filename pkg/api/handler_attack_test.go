package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

func TestAttackConfigDTO(t *testing.T) {
	attk := &ent.Attack{
		ID:                      7,
		AttackMode:              attack.AttackModeHybridMask,
		Mask:                    "?d?d?d?d",
		IncrementMode:           true,
		IncrementMinimum:        1,
		IncrementMaximum:        4,
		Optimized:               true,
		SlowCandidateGenerators: false,
		WorkloadProfile:         3,
		DisableMarkov:           true,
		MarkovThreshold:         0,
		LeftRule:                "l",
		CustomCharset1:          "abcdef",
	}

	dto := attackConfigDTO(attk)

	assert.Equal(t, int64(7), dto.ID)
	assert.Equal(t, "hybrid_mask", dto.AttackMode)
	assert.Equal(t, 7, dto.AttackModeHashcat)
	assert.Equal(t, "?d?d?d?d", dto.Mask)
	assert.True(t, dto.IncrementMode)
	assert.Equal(t, 1, dto.IncrementMinimum)
	assert.Equal(t, 4, dto.IncrementMaximum)
	assert.True(t, dto.Optimized)
	assert.True(t, dto.DisableMarkov)
	assert.Equal(t, "l", dto.LeftRule)
	assert.Equal(t, "abcdef", dto.CustomCharset1)
	assert.Empty(t, dto.CustomCharset2)
}

func TestAttackModeHashcat(t *testing.T) {
	assert.Equal(t, 0, models.AttackModeHashcat("dictionary"))
	assert.Equal(t, 3, models.AttackModeHashcat("mask"))
	assert.Equal(t, 6, models.AttackModeHashcat("hybrid_dictionary"))
	assert.Equal(t, 7, models.AttackModeHashcat("hybrid_mask"))
	assert.Equal(t, -1, models.AttackModeHashcat("combinator"))
}

func TestHashListHandle(t *testing.T) {
	assert.Equal(t, "hashlists/42", hashListHandle(42))
}
