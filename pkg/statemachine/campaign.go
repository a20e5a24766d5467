package statemachine

import "fmt"

// CampaignState mirrors the generated ent/campaign.State enum values.
type CampaignState string

const (
	CampaignDraft     CampaignState = "draft"
	CampaignActive    CampaignState = "active"
	CampaignCompleted CampaignState = "completed"
	CampaignArchived  CampaignState = "archived"
)

// CampaignEvent covers the operator-driven transitions; completion is
// derived (see DeriveCampaignState), not event-driven.
type CampaignEvent string

const (
	CampaignEventActivate CampaignEvent = "activate"
	CampaignEventArchive  CampaignEvent = "archive"
	CampaignEventUnarchive CampaignEvent = "unarchive"
)

// CampaignGuardError mirrors GuardError for the campaign machine.
type CampaignGuardError struct {
	State CampaignState
	Event CampaignEvent
}

func (e *CampaignGuardError) Error() string {
	return fmt.Sprintf("campaign: event %q not valid from state %q", e.Event, e.State)
}

// ApplyCampaign computes the operator-driven campaign transitions.
func ApplyCampaign(from CampaignState, event CampaignEvent) (CampaignState, error) {
	veto := func() (CampaignState, error) {
		return "", &CampaignGuardError{State: from, Event: event}
	}

	switch event {
	case CampaignEventActivate:
		if from != CampaignDraft {
			return veto()
		}
		return CampaignActive, nil
	case CampaignEventArchive:
		if from == CampaignArchived {
			return veto()
		}
		return CampaignArchived, nil
	case CampaignEventUnarchive:
		if from != CampaignArchived {
			return veto()
		}
		return CampaignActive, nil
	default:
		return veto()
	}
}

// DeriveCampaignState computes the campaign's derived terminal state from
// its attacks and hash list: completed once every attack is terminal and
// either the hash list's uncracked count is zero or every attack is
// exhausted. Returns the current state unchanged (and
// false) if no derivation applies — draft and archived are never derived
// into, and active campaigns with non-terminal attacks stay active.
func DeriveCampaignState(current CampaignState, allAttacksTerminal, allAttacksExhausted bool, uncrackedCount int) (CampaignState, bool) {
	if current != CampaignActive {
		return current, false
	}
	if !allAttacksTerminal {
		return current, false
	}
	if uncrackedCount == 0 || allAttacksExhausted {
		return CampaignCompleted, true
	}
	return current, false
}
