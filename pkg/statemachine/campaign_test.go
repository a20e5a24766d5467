package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCampaign_Lifecycle(t *testing.T) {
	next, err := ApplyCampaign(CampaignDraft, CampaignEventActivate)
	require.NoError(t, err)
	assert.Equal(t, CampaignActive, next)

	next, err = ApplyCampaign(CampaignActive, CampaignEventArchive)
	require.NoError(t, err)
	assert.Equal(t, CampaignArchived, next)

	next, err = ApplyCampaign(CampaignArchived, CampaignEventUnarchive)
	require.NoError(t, err)
	assert.Equal(t, CampaignActive, next)
}

func TestApplyCampaign_Vetoes(t *testing.T) {
	_, err := ApplyCampaign(CampaignActive, CampaignEventActivate)
	assert.Error(t, err)

	_, err = ApplyCampaign(CampaignArchived, CampaignEventArchive)
	assert.Error(t, err)

	_, err = ApplyCampaign(CampaignDraft, CampaignEventUnarchive)
	assert.Error(t, err)
}

func TestDeriveCampaignState(t *testing.T) {
	tests := []struct {
		name          string
		current       CampaignState
		allTerminal   bool
		allExhausted  bool
		uncracked     int
		want          CampaignState
		wantDerived   bool
	}{
		{
			name:    "active with live attacks stays active",
			current: CampaignActive, allTerminal: false, uncracked: 3,
			want: CampaignActive, wantDerived: false,
		},
		{
			name:    "all terminal and fully cracked completes",
			current: CampaignActive, allTerminal: true, uncracked: 0,
			want: CampaignCompleted, wantDerived: true,
		},
		{
			name:    "all exhausted with uncracked left completes",
			current: CampaignActive, allTerminal: true, allExhausted: true, uncracked: 2,
			want: CampaignCompleted, wantDerived: true,
		},
		{
			name:    "terminal mix with uncracked left stays active",
			current: CampaignActive, allTerminal: true, allExhausted: false, uncracked: 2,
			want: CampaignActive, wantDerived: false,
		},
		{
			name:    "draft is never derived into",
			current: CampaignDraft, allTerminal: true, uncracked: 0,
			want: CampaignDraft, wantDerived: false,
		},
		{
			name:    "archived is never derived into",
			current: CampaignArchived, allTerminal: true, uncracked: 0,
			want: CampaignArchived, wantDerived: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, derived := DeriveCampaignState(tt.current, tt.allTerminal, tt.allExhausted, tt.uncracked)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDerived, derived)
		})
	}
}
