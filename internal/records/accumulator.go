package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/condition"
	"github.com/shreeramghimire/salmonometer/internal/models"
)

var (
	// ErrRowCount is returned when a submission does not carry one row per fish or location
	ErrRowCount = errors.New("wrong number of rows")
	// ErrUnknownParam is returned for a field that is not an active parameter of the category
	ErrUnknownParam = errors.New("unknown parameter")
)

// ValueError reports a field whose raw input is outside its value domain
type ValueError struct {
	Row   int // 1-based
	Param string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("row %d, %s: %v", e.Row, e.Param, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// RawRow is the unparsed input of one form row, keyed by parameter id.
// Location is only read for per-location categories.
type RawRow struct {
	Location string            `yaml:"location,omitempty"`
	Values   map[string]string `yaml:",inline"`
}

// Build parses a whole submission for plan into rows. It is all-or-nothing:
// any invalid field rejects the submission and no rows are returned.
// Fish rows are numbered 1..n in submission order.
func Build(cfg models.SessionConfig, plan Plan, raw []RawRow) ([]models.Row, error) {
	want := ExpectedRows(cfg, plan)
	if len(raw) != want {
		return nil, fmt.Errorf("%w: %s expects %d rows, got %d", ErrRowCount, plan.Entry.Name, want, len(raw))
	}

	active := make(map[string]catalog.Param, len(plan.Params))
	for _, p := range plan.Params {
		active[p.ID] = p
	}

	rows := make([]models.Row, 0, len(raw))
	for i, in := range raw {
		for key := range in.Values {
			p, ok := active[key]
			if !ok || p.Derived {
				return nil, fmt.Errorf("%w %q for %s (row %d)", ErrUnknownParam, key, plan.Entry.Name, i+1)
			}
		}

		row := models.Row{
			Group:  cfg.Group,
			Date:   cfg.Date,
			Values: make(map[string]any, len(plan.Params)),
		}
		if plan.Entry.Scope == catalog.PerLocation {
			row.Location = strings.TrimSpace(in.Location)
			if row.Location == "" {
				row.Location = DefaultLocation(i + 1)
			}
		} else {
			row.Fish = i + 1
		}

		for _, p := range plan.Params {
			if p.Derived {
				continue
			}
			v, err := p.Domain.Parse(in.Values[p.ID])
			if err != nil {
				return nil, &ValueError{Row: i + 1, Param: p.Column(), Err: err}
			}
			row.Values[p.ID] = v
		}

		if plan.Entry.ID == catalog.ProductionData {
			applyProduction(cfg, row.Values)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// applyProduction normalizes length and weight to cm and g, then derives the condition factor
func applyProduction(cfg models.SessionConfig, values map[string]any) {
	length, _ := values[catalog.ParamLength].(float64)
	weight, _ := values[catalog.ParamWeight].(float64)
	length = condition.ToCentimeters(length, cfg.LengthUnit)
	weight = condition.ToGrams(weight, cfg.WeightUnit)
	values[catalog.ParamLength] = length
	values[catalog.ParamWeight] = weight
	values[catalog.ParamConditionFactor] = condition.Factor(weight, length)
}
