package keyspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

func TestMaskKeyspace(t *testing.T) {
	tests := []struct {
		name string
		mask string
		want int64
	}{
		{"four digits", "?d?d?d?d", 10000},
		{"lower and digits", "?l?l?d", 26 * 26 * 10},
		{"all charset", "?a?a", 95 * 95},
		{"literal prefix", "pass?d?d", 100},
		{"binary byte", "?b", 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaskKeyspace(tt.mask, [4]string{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskKeyspace_CustomCharsets(t *testing.T) {
	got, err := MaskKeyspace("?1?2", [4]string{"abcdef", "0123"})
	require.NoError(t, err)
	assert.Equal(t, int64(6*4), got)
}

func TestMaskKeyspace_Errors(t *testing.T) {
	_, err := MaskKeyspace("?d?", [4]string{})
	assert.Error(t, err, "dangling ? must be rejected")

	_, err = MaskKeyspace("?1", [4]string{})
	assert.Error(t, err, "empty custom charset must be rejected")

	_, err = MaskKeyspace("", [4]string{})
	assert.Error(t, err, "empty mask has no positions")
}

func TestPlan_Dictionary(t *testing.T) {
	// Word list of 1000 lines x rule list of 10 lines = 10000.
	total, phases, err := Plan(Inputs{
		Mode:              ModeDictionary,
		WordListLineCount: int64p(1000),
		RuleListLineCount: int64p(10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), total)
	require.Len(t, phases, 1)
	assert.Equal(t, int64(10000), phases[0].Keyspace)
}

func TestPlan_DictionaryWithoutRules(t *testing.T) {
	total, _, err := Plan(Inputs{
		Mode:              ModeDictionary,
		WordListLineCount: int64p(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), total, "rule multiplier defaults to 1")
}

func TestPlan_UnreadyResources(t *testing.T) {
	_, _, err := Plan(Inputs{Mode: ModeDictionary})
	assert.ErrorIs(t, err, ErrResourcesNotReady)

	_, _, err = Plan(Inputs{Mode: ModeHybridMask, Mask: "?d?d"})
	assert.ErrorIs(t, err, ErrResourcesNotReady)
}

func TestPlan_HybridMultiplies(t *testing.T) {
	total, _, err := Plan(Inputs{
		Mode:              ModeHybridDictionary,
		Mask:              "?d?d",
		WordListLineCount: int64p(100),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100*100), total)
}

func TestPlan_IncrementPhases(t *testing.T) {
	total, phases, err := Plan(Inputs{
		Mode:             ModeMask,
		Mask:             "?d?d?d?d",
		IncrementMode:    true,
		IncrementMinimum: 1,
		IncrementMaximum: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10+100+1000+10000), total)
	require.Len(t, phases, 4)
	assert.Equal(t, int64(10), phases[0].Keyspace)
	assert.Equal(t, int64(10000), phases[3].Keyspace)
}

func TestPlan_IncrementRangeValidation(t *testing.T) {
	_, _, err := Plan(Inputs{
		Mode: ModeMask, Mask: "?d?d",
		IncrementMode: true, IncrementMinimum: 3, IncrementMaximum: 1,
	})
	assert.Error(t, err)

	_, _, err = Plan(Inputs{
		Mode: ModeMask, Mask: "?d?d",
		IncrementMode: true, IncrementMinimum: 1, IncrementMaximum: 5,
	})
	assert.Error(t, err, "increment length past mask length must be rejected")
}

func TestSlices_CoverKeyspaceExactly(t *testing.T) {
	phases := []Phase{{Keyspace: 10000}}
	slices, err := Slices(phases, 3000)
	require.NoError(t, err)

	// Coverage: sum of limits equals total, no overlap, contiguous from 0.
	var cursor, sum int64
	for _, s := range slices {
		assert.Equal(t, cursor, s.Skip, "slices must be contiguous")
		cursor += s.Limit
		sum += s.Limit
	}
	assert.Equal(t, int64(10000), sum)
	// 3000+3000+3000+1000: the last slice absorbs the remainder.
	require.Len(t, slices, 4)
	assert.Equal(t, int64(1000), slices[3].Limit)
}

func TestSlices_NeverSpanIncrementPhases(t *testing.T) {
	phases := []Phase{
		{MaskLength: 1, Keyspace: 10},
		{MaskLength: 2, Keyspace: 100},
	}
	slices, err := Slices(phases, 64)
	require.NoError(t, err)

	// Phase one ends at offset 10; no slice may straddle it.
	for _, s := range slices {
		straddles := s.Skip < 10 && s.Skip+s.Limit > 10
		assert.False(t, straddles, "slice [%d, %d) spans a phase boundary", s.Skip, s.Skip+s.Limit)
	}
	var sum int64
	for _, s := range slices {
		sum += s.Limit
	}
	assert.Equal(t, int64(110), sum)
}

func TestTargetSliceSize(t *testing.T) {
	// 10^8 H/s at a 60s target: slices sized for about a minute of work.
	assert.Equal(t, int64(6_000_000_000), TargetSliceSize(1e8, 60))

	// No benchmark data falls back to the probe size.
	assert.Equal(t, ProbeSliceSize, TargetSliceSize(0, 60))
	assert.Equal(t, ProbeSliceSize, TargetSliceSize(-1, 60))
	assert.Equal(t, ProbeSliceSize, TargetSliceSize(1e8, 0))

	// Tiny rates still produce a positive slice.
	assert.Equal(t, int64(1), TargetSliceSize(0.001, 10))
}

func TestPlan_MaskList(t *testing.T) {
	total, _, err := Plan(Inputs{
		Mode:          ModeMask,
		MaskListMasks: []string{"?d?d", "?l?l"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100+676), total)
}
