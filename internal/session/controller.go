package session

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/logger"
	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/records"
)

// Controller owns one session and feeds every action through Transition.
// It is not safe for concurrent use; the TUI and the record command drive it
// from a single goroutine.
type Controller struct {
	id         string
	state      State
	guidelines *catalog.Guidelines
	log        *log.Logger
}

// NewController starts a configuring session pre-filled with draft.
// guidelines may be nil, in which case every welfare indicator reports a missing image.
func NewController(draft models.SessionConfig, guidelines *catalog.Guidelines) *Controller {
	id := uuid.New().String()
	c := &Controller{
		id:         id,
		state:      NewState(draft),
		guidelines: guidelines,
		log:        logger.With("session", id),
	}
	c.log.Debug("Session created")
	return c
}

// ID identifies the session in logs and artifact metadata
func (c *Controller) ID() string {
	return c.id
}

// State returns the current state value
func (c *Controller) State() State {
	return c.state
}

// Dispatch applies an action. A rejected action leaves the session untouched.
func (c *Controller) Dispatch(a Action) error {
	from := c.state.Phase
	next, err := Transition(c.state, a)
	if err != nil {
		c.log.Warn("Action rejected", "action", a.Name(), "phase", from, "error", err)
		return err
	}

	if _, ok := a.(Start); ok {
		next.Warnings = append(next.Warnings, c.assetWarnings(next)...)
	}
	c.state = next

	c.log.Debug("Session transition", "action", a.Name(), "from", from, "to", next.Phase)
	if _, ok := a.(Start); ok {
		for _, w := range next.Warnings {
			c.log.Warn(w.Message, "kind", w.Kind, "category", w.Category)
		}
	}
	return nil
}

func (c *Controller) assetWarnings(s State) []models.Warning {
	var warnings []models.Warning
	for _, plan := range s.Plans {
		if plan.Entry.ID != catalog.WelfareIndicators {
			continue
		}
		names := make([]string, 0, len(plan.Params))
		for _, p := range plan.Params {
			if p.ID != catalog.ImageParam.ID {
				names = append(names, p.Name)
			}
		}
		for _, name := range c.guidelines.Missing(names) {
			warnings = append(warnings, models.MissingAssetWarning(name))
		}
	}
	return warnings
}

// Configure replaces the draft configuration
func (c *Controller) Configure(cfg models.SessionConfig) error {
	return c.Dispatch(Configure{Config: cfg})
}

// Start validates the draft and begins recording
func (c *Controller) Start() error {
	return c.Dispatch(Start{})
}

// Submit records the rows of the active category
func (c *Controller) Submit(rows []records.RawRow) error {
	return c.Dispatch(Submit{Rows: rows})
}

// ReturnToSelection discards recorded rows and goes back to configuring
func (c *Controller) ReturnToSelection() error {
	return c.Dispatch(ReturnToSelection{})
}

// Preview returns copies of the record sets holding rows
func (c *Controller) Preview() []models.RecordSet {
	return c.state.RecordSets()
}

// Export renders every non-empty record set in the requested formats.
// It is only valid once every category has been submitted and never changes the session.
func (c *Controller) Export(formats []export.Format) ([]export.File, error) {
	if c.state.Phase != Exporting {
		return nil, fmt.Errorf("%w: cannot export while %s", ErrInvalidAction, c.state.Phase)
	}
	files, err := export.RenderAll(c.state.Config.Group, c.state.RecordSets(), formats)
	if err != nil {
		c.log.Error("Export failed", "error", err)
		return nil, err
	}
	c.log.Info("Session exported", "files", len(files))
	return files, nil
}
