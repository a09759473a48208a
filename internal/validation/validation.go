package validation

import (
	"fmt"
	"strings"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/models"
)

// IssueType represents the constraint a session configuration violates
type IssueType string

const (
	IssueMissingGroup       IssueType = "missing_group"
	IssueMissingDate        IssueType = "missing_date"
	IssueFishCountRange     IssueType = "fish_count_range"
	IssueLocationCountRange IssueType = "location_count_range"
	IssueNoCategories       IssueType = "no_categories"
	IssueUnknownCategory    IssueType = "unknown_category"
	IssueDuplicateCategory  IssueType = "duplicate_category"
	IssueUnknownIndicator   IssueType = "unknown_indicator"
	IssueUnknownParameter   IssueType = "unknown_parameter"
	IssueFixedParameters    IssueType = "fixed_parameters"
	IssueUnknownUnit        IssueType = "unknown_unit"
	IssueNothingToRecord    IssueType = "nothing_to_record"
)

// Issue is a single violated constraint
type Issue struct {
	Type        IssueType
	Description string
	Category    catalog.ID // if applicable
}

// ConfigurationError blocks the transition from configuring to recording.
// It lists every violated constraint, not only the first.
type ConfigurationError struct {
	Issues []Issue
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid configuration: " + e.Issues[0].Description
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Description
	}
	return fmt.Sprintf("invalid configuration (%d problems): %s", len(e.Issues), strings.Join(parts, "; "))
}

// Has reports whether the error contains an issue of the given type
func (e *ConfigurationError) Has(t IssueType) bool {
	for _, issue := range e.Issues {
		if issue.Type == t {
			return true
		}
	}
	return false
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Err returns a *ConfigurationError, or nil when the configuration is valid
func (r *Result) Err() error {
	if !r.HasIssues() {
		return nil
	}
	return &ConfigurationError{Issues: append([]Issue{}, r.Issues...)}
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "Configuration is valid."
	}
	report := "Configuration problems:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

func (r *Result) add(t IssueType, cat catalog.ID, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Type: t, Category: cat, Description: fmt.Sprintf(format, args...)})
}

// Validator checks a session configuration before recording starts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateConfig checks every constraint of cfg and collects the violations
func (v *Validator) ValidateConfig(cfg models.SessionConfig) Result {
	result := Result{}

	if strings.TrimSpace(cfg.Group) == "" {
		result.add(IssueMissingGroup, "", "group name is required")
	}
	if cfg.Date.IsZero() {
		result.add(IssueMissingDate, "", "date is required")
	}
	if cfg.FishCount < constants.MinFishCount || cfg.FishCount > constants.MaxFishCount {
		result.add(IssueFishCountRange, "", "fish count must be between %d and %d, got %d",
			constants.MinFishCount, constants.MaxFishCount, cfg.FishCount)
	}
	if cfg.HasCategory(catalog.WaterQuality) &&
		(cfg.LocationCount < constants.MinLocationCount || cfg.LocationCount > constants.MaxLocationCount) {
		result.add(IssueLocationCountRange, catalog.WaterQuality, "location count must be between %d and %d, got %d",
			constants.MinLocationCount, constants.MaxLocationCount, cfg.LocationCount)
	}

	if len(cfg.Categories) == 0 {
		result.add(IssueNoCategories, "", "select at least one category")
	}
	seen := make(map[catalog.ID]bool, len(cfg.Categories))
	for _, id := range cfg.Categories {
		if _, ok := catalog.Lookup(id); !ok {
			result.add(IssueUnknownCategory, id, "unknown category %q", id)
			continue
		}
		if seen[id] {
			result.add(IssueDuplicateCategory, id, "category %q selected twice", id)
		}
		seen[id] = true
	}

	if cfg.HasCategory(catalog.WelfareIndicators) && cfg.WelfareIndicators != nil {
		welfare, _ := catalog.Lookup(catalog.WelfareIndicators)
		for _, ind := range cfg.WelfareIndicators {
			if _, ok := welfare.Param(ind); !ok {
				result.add(IssueUnknownIndicator, catalog.WelfareIndicators, "unknown welfare indicator %q", ind)
			}
		}
	}

	for id, params := range cfg.SubParams {
		if !cfg.HasCategory(id) {
			continue // overrides for unselected categories are ignored
		}
		entry, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		if !entry.Selectable {
			result.add(IssueFixedParameters, id, "%s has a fixed parameter set", entry.Name)
			continue
		}
		for _, p := range params {
			if _, ok := entry.Param(p); !ok {
				result.add(IssueUnknownParameter, id, "unknown parameter %q for %s", p, entry.Name)
			}
		}
	}

	if cfg.HasCategory(catalog.ProductionData) {
		if cfg.LengthUnit != constants.LengthCM && cfg.LengthUnit != constants.LengthInch {
			result.add(IssueUnknownUnit, catalog.ProductionData, "unknown length unit %q", cfg.LengthUnit)
		}
		if cfg.WeightUnit != constants.WeightGram && cfg.WeightUnit != constants.WeightKilogram {
			result.add(IssueUnknownUnit, catalog.ProductionData, "unknown weight unit %q", cfg.WeightUnit)
		}
	}

	return result
}

// NothingToRecord builds the error returned when every selected category was skipped
func NothingToRecord() error {
	return &ConfigurationError{Issues: []Issue{{
		Type:        IssueNothingToRecord,
		Description: "every selected category has an empty parameter selection",
	}}}
}
