package session

import (
	"errors"
	"fmt"

	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/records"
	"github.com/shreeramghimire/salmonometer/internal/validation"
)

// ErrInvalidAction is returned when an action is not valid in the current phase
var ErrInvalidAction = errors.New("action not valid in current phase")

// Action is a user-driven event
type Action interface {
	Name() string
}

// Configure replaces the draft configuration
type Configure struct {
	Config models.SessionConfig
}

// Start validates and freezes the draft, then begins recording
type Start struct{}

// Submit carries the rows of the active category pass
type Submit struct {
	Rows []records.RawRow
}

// ReturnToSelection abandons recording or export and goes back to configuring
type ReturnToSelection struct{}

func (Configure) Name() string         { return "configure" }
func (Start) Name() string             { return "start" }
func (Submit) Name() string            { return "submit" }
func (ReturnToSelection) Name() string { return "return_to_selection" }

// Transition applies a to s and returns the next state. On error the returned
// state is s itself; a failed action never changes the session.
func Transition(s State, a Action) (State, error) {
	switch act := a.(type) {
	case Configure:
		return configure(s, act)
	case Start:
		return start(s)
	case Submit:
		return submit(s, act)
	case ReturnToSelection:
		return returnToSelection(s), nil
	default:
		return s, fmt.Errorf("%w: unsupported action %T", ErrInvalidAction, a)
	}
}

func configure(s State, act Configure) (State, error) {
	if s.Phase != Configuring {
		return s, fmt.Errorf("%w: cannot configure while %s", ErrInvalidAction, s.Phase)
	}
	next := s
	next.Draft = act.Config.Clone()
	return next, nil
}

func start(s State) (State, error) {
	if s.Phase != Configuring {
		return s, fmt.Errorf("%w: cannot start while %s", ErrInvalidAction, s.Phase)
	}

	result := validation.New().ValidateConfig(s.Draft)
	if err := result.Err(); err != nil {
		return s, err
	}

	frozen := s.Draft.Clone()
	plans, warnings, err := records.Resolve(frozen)
	if err != nil {
		return s, err
	}
	if len(plans) == 0 {
		return s, validation.NothingToRecord()
	}

	sets := make([]models.RecordSet, len(plans))
	for i, plan := range plans {
		sets[i] = records.NewRecordSet(plan)
	}

	return State{
		Phase:    Recording,
		Draft:    s.Draft.Clone(),
		Config:   frozen,
		Plans:    plans,
		Active:   0,
		Sets:     sets,
		Warnings: warnings,
	}, nil
}

func submit(s State, act Submit) (State, error) {
	plan, ok := s.ActivePlan()
	if !ok {
		return s, fmt.Errorf("%w: cannot submit while %s", ErrInvalidAction, s.Phase)
	}

	rows, err := records.Build(s.Config, plan, act.Rows)
	if err != nil {
		return s, err
	}

	next := s
	next.Sets = make([]models.RecordSet, len(s.Sets))
	copy(next.Sets, s.Sets)
	set := s.Sets[s.Active].Clone()
	set.Rows = append(set.Rows, rows...)
	next.Sets[s.Active] = set

	next.Active = s.Active + 1
	if next.Active >= len(s.Plans) {
		next.Phase = Exporting
	}
	return next, nil
}

// returnToSelection discards every submitted row and keeps the configuration
// as the pre-filled draft. It is idempotent.
func returnToSelection(s State) State {
	if s.Phase == Configuring {
		return s
	}
	return NewState(s.Config)
}
