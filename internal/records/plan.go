// Package records turns raw per-row form input into typed record set rows.
package records

import (
	"fmt"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/models"
)

// Plan is one category pass of a session: the category and its active parameters
type Plan struct {
	Entry  catalog.Entry
	Params []catalog.Param
}

// Inputs returns the active parameters the user fills in
func (p Plan) Inputs() []catalog.Param {
	out := make([]catalog.Param, 0, len(p.Params))
	for _, param := range p.Params {
		if !param.Derived {
			out = append(out, param)
		}
	}
	return out
}

// Resolve orders the selected categories by catalog order and fixes their active
// parameters. Categories left with no parameters are skipped with a warning.
// cfg must already have passed validation.
func Resolve(cfg models.SessionConfig) ([]Plan, []models.Warning, error) {
	var plans []Plan
	var warnings []models.Warning

	for _, entry := range catalog.Categories() {
		if !cfg.HasCategory(entry.ID) {
			continue
		}

		var selection []string
		switch {
		case entry.ID == catalog.WelfareIndicators:
			selection = cfg.WelfareIndicators
		case entry.Selectable:
			if ids, ok := cfg.SubParams[entry.ID]; ok {
				selection = ids
				if selection == nil {
					selection = []string{}
				}
			}
		}

		params, err := entry.Select(selection)
		if err != nil {
			return nil, nil, err
		}
		if len(params) == 0 {
			warnings = append(warnings, models.EmptyParameterSelectionWarning(entry))
			continue
		}
		if entry.ID == catalog.WelfareIndicators && cfg.AttachImages {
			params = append(params, catalog.ImageParam)
		}
		plans = append(plans, Plan{Entry: entry, Params: params})
	}

	return plans, warnings, nil
}

// Schema returns the column schema of a plan: Group, Date, then Fish or Location, then parameters
func Schema(plan Plan) []models.Column {
	cols := []models.Column{
		{Name: constants.ColumnGroup, Role: models.RoleGroup, Kind: catalog.KindText, Decimals: -1},
		{Name: constants.ColumnDate, Role: models.RoleDate, Kind: catalog.KindText, Decimals: -1},
	}
	if plan.Entry.Scope == catalog.PerLocation {
		cols = append(cols, models.Column{Name: constants.ColumnLocation, Role: models.RoleLocation, Kind: catalog.KindText, Decimals: -1})
	} else {
		cols = append(cols, models.Column{Name: constants.ColumnFish, Role: models.RoleFish, Kind: catalog.KindCount, Decimals: -1})
	}
	for _, p := range plan.Params {
		cols = append(cols, models.Column{
			Key:      p.ID,
			Name:     p.Column(),
			Role:     models.RoleValue,
			Kind:     p.Domain.Kind,
			Decimals: p.Decimals,
		})
	}
	return cols
}

// NewRecordSet creates the empty record set of a plan; its schema never changes afterwards
func NewRecordSet(plan Plan) models.RecordSet {
	return models.RecordSet{
		Category: plan.Entry.ID,
		Slug:     plan.Entry.Slug,
		Sheet:    plan.Entry.Name,
		Columns:  Schema(plan),
		Rows:     []models.Row{},
	}
}

// ExpectedRows returns how many rows a submission for plan must carry
func ExpectedRows(cfg models.SessionConfig, plan Plan) int {
	if plan.Entry.Scope == catalog.PerLocation {
		return cfg.LocationCount
	}
	return cfg.FishCount
}

// DefaultLocation labels the n-th sampling location (1-based)
func DefaultLocation(n int) string {
	return fmt.Sprintf("Location %d", n)
}
