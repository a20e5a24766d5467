package agentrpc

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/pkg/agentrpc/agentrpcpb"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

func TestFrameToDTO(t *testing.T) {
	start := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	frame := &agentrpcpb.StatusFrame{
		TaskId:          9,
		Session:         "cs-9",
		Status:          3,
		Target:          "md5",
		ProgressDone:    500,
		ProgressTotal:   10000,
		RestorePoint:    480,
		RecoveredHashes: []string{"1/3"},
		Rejected:        2,
		Devices: []*agentrpcpb.DeviceStatus{
			{Id: 1, Name: "RTX 4090", Type: "GPU", Speed: 100000000, Utilization: 98, Temperature: 71},
			{Id: 2, Name: "CPU", Type: "CPU", Speed: 1000, Utilization: 10, Temperature: -1},
		},
		TimeStartUnix: start.Unix(),
		HashcatGuess:  "password?d?d",
	}

	dto := frameToDTO(frame)

	assert.Equal(t, "cs-9", dto.Session)
	assert.Equal(t, 3, dto.StatusCode)
	assert.Equal(t, [2]int64{500, 10000}, dto.Progress)
	require.Len(t, dto.Devices, 2)
	assert.Equal(t, -1, dto.Devices[1].Temperature)
	require.NotNil(t, dto.TimeStart)
	assert.Equal(t, start.Unix(), dto.TimeStart.Unix())
	// Unset estimated_stop stays nil rather than becoming the epoch.
	assert.Nil(t, dto.EstimatedStop)
}

func TestRejectedClassification(t *testing.T) {
	ack := rejected(&agentrpcpb.Ack{TaskId: 4}, services.ErrLeaseMismatch)
	assert.False(t, ack.Accepted)
	assert.Equal(t, "conflict", ack.Error)

	ack = rejected(&agentrpcpb.Ack{TaskId: 4}, fmt.Errorf("%w: task 4", services.ErrNotFound))
	assert.Equal(t, "not found", ack.Error)

	ack = rejected(&agentrpcpb.Ack{TaskId: 4}, fmt.Errorf("disk full"))
	assert.Equal(t, "error", ack.Error)
}
