// Package session implements the entry-session state machine: configuring,
// recording one category at a time, and exporting.
package session

import (
	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/records"
)

// Phase is the coarse state of a session
type Phase int

const (
	Configuring Phase = iota
	Recording
	Exporting
)

func (p Phase) String() string {
	switch p {
	case Configuring:
		return "configuring"
	case Recording:
		return "recording"
	case Exporting:
		return "exporting"
	default:
		return "unknown"
	}
}

// State is the whole session value. Transition never mutates a State it is
// given, so older values stay valid snapshots.
type State struct {
	Phase Phase
	// Draft is the editable configuration; it pre-fills the form after a return to selection
	Draft models.SessionConfig
	// Config is the frozen configuration, set when recording starts
	Config models.SessionConfig
	// Plans lists the category passes in recording order
	Plans []records.Plan
	// Active indexes Plans while recording
	Active   int
	Sets     []models.RecordSet
	Warnings []models.Warning
}

// NewState returns a configuring session pre-filled with draft
func NewState(draft models.SessionConfig) State {
	return State{Phase: Configuring, Draft: draft.Clone()}
}

// ActivePlan returns the category pass awaiting submission
func (s State) ActivePlan() (records.Plan, bool) {
	if s.Phase != Recording || s.Active < 0 || s.Active >= len(s.Plans) {
		return records.Plan{}, false
	}
	return s.Plans[s.Active], true
}

// Progress returns the number of submitted category passes and the total
func (s State) Progress() (done, total int) {
	switch s.Phase {
	case Recording:
		return s.Active, len(s.Plans)
	case Exporting:
		return len(s.Plans), len(s.Plans)
	default:
		return 0, 0
	}
}

// RecordSets returns the record sets that hold rows, in recording order
func (s State) RecordSets() []models.RecordSet {
	out := make([]models.RecordSet, 0, len(s.Sets))
	for _, set := range s.Sets {
		if set.Len() > 0 {
			out = append(out, set.Clone())
		}
	}
	return out
}
