package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, ProgressPercentage(5000, 10000), 0.001)
	assert.InDelta(t, 0.0, ProgressPercentage(0, 10000), 0.001)
	assert.InDelta(t, 100.0, ProgressPercentage(10000, 10000), 0.001)

	// Bounded: overshoot clamps, degenerate totals derive zero.
	assert.InDelta(t, 100.0, ProgressPercentage(20000, 10000), 0.001)
	assert.InDelta(t, 0.0, ProgressPercentage(5, 0), 0.001)
	assert.InDelta(t, 0.0, ProgressPercentage(-1, 10000), 0.001)
}

func TestEstimatedFinish(t *testing.T) {
	stop := time.Date(2026, 7, 1, 15, 4, 5, 0, time.UTC)

	// Plain mask and dictionary attacks pass hashcat's estimate through.
	got := EstimatedFinish("dictionary", false, &stop)
	require.NotNil(t, got)
	assert.Equal(t, stop, *got)

	got = EstimatedFinish("mask", false, &stop)
	require.NotNil(t, got)

	// A mask attack over an explicit mask list derives nil: the keyspace
	// shape makes hashcat's estimate unreliable.
	assert.Nil(t, EstimatedFinish("mask", true, &stop))

	// Mask lists on hybrid modes keep the estimate; only pure mask-list
	// attacks are affected.
	assert.NotNil(t, EstimatedFinish("hybrid_mask", true, &stop))

	// No estimate in: none out.
	assert.Nil(t, EstimatedFinish("dictionary", false, nil))
}
