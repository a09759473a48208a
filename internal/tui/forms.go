package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/records"
)

// ConfigFormModel holds the configuration form's bound values
type ConfigFormModel struct {
	Group             string
	Date              string
	FishCount         string
	LocationCount     string
	Categories        []catalog.ID
	WelfareIndicators []string
	SubParams         map[catalog.ID]*[]string
	LengthUnit        constants.LengthUnit
	WeightUnit        constants.WeightUnit
	AttachImages      bool
}

// NewConfigFormModel pre-fills the form from a draft configuration
func NewConfigFormModel(draft models.SessionConfig) *ConfigFormModel {
	fm := &ConfigFormModel{
		Group:         draft.Group,
		FishCount:     strconv.Itoa(draft.FishCount),
		LocationCount: strconv.Itoa(draft.LocationCount),
		Categories:    append([]catalog.ID{}, draft.Categories...),
		LengthUnit:    draft.LengthUnit,
		WeightUnit:    draft.WeightUnit,
		AttachImages:  draft.AttachImages,
		SubParams:     make(map[catalog.ID]*[]string),
	}
	if !draft.Date.IsZero() {
		fm.Date = draft.DateString()
	}

	welfare, _ := catalog.Lookup(catalog.WelfareIndicators)
	fm.WelfareIndicators = selectedIDs(welfare, draft.WelfareIndicators, draft.WelfareIndicators != nil)

	for _, entry := range catalog.Categories() {
		if !entry.Selectable {
			continue
		}
		ids, ok := draft.SubParams[entry.ID]
		sel := selectedIDs(entry, ids, ok)
		fm.SubParams[entry.ID] = &sel
	}
	return fm
}

// selectedIDs returns the explicit selection, or every parameter id when there is none
func selectedIDs(entry catalog.Entry, ids []string, explicit bool) []string {
	if explicit {
		return append([]string{}, ids...)
	}
	out := make([]string, 0, len(entry.Params))
	for _, p := range entry.Inputs() {
		out = append(out, p.ID)
	}
	return out
}

// Config converts the form values into a session configuration.
// Field-level checks are left to the validation package.
func (fm *ConfigFormModel) Config() (models.SessionConfig, error) {
	cfg := models.SessionConfig{
		Group:             strings.TrimSpace(fm.Group),
		Categories:        append([]catalog.ID{}, fm.Categories...),
		WelfareIndicators: append([]string{}, fm.WelfareIndicators...),
		LengthUnit:        fm.LengthUnit,
		WeightUnit:        fm.WeightUnit,
		AttachImages:      fm.AttachImages,
		SubParams:         make(map[catalog.ID][]string, len(fm.SubParams)),
	}

	date, err := time.Parse(constants.DateFormat, strings.TrimSpace(fm.Date))
	if err != nil {
		return cfg, fmt.Errorf("date must be YYYY-MM-DD")
	}
	cfg.Date = date

	if cfg.FishCount, err = strconv.Atoi(strings.TrimSpace(fm.FishCount)); err != nil {
		return cfg, fmt.Errorf("fish count must be a whole number")
	}
	if cfg.LocationCount, err = strconv.Atoi(strings.TrimSpace(fm.LocationCount)); err != nil {
		return cfg, fmt.Errorf("location count must be a whole number")
	}

	for id, sel := range fm.SubParams {
		cfg.SubParams[id] = append([]string{}, (*sel)...)
	}
	return cfg, nil
}

func validateIntRange(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func paramOptions(entry catalog.Entry, selected []string) []huh.Option[string] {
	on := make(map[string]bool, len(selected))
	for _, id := range selected {
		on[id] = true
	}
	opts := make([]huh.Option[string], 0, len(entry.Params))
	for _, p := range entry.Inputs() {
		opts = append(opts, huh.NewOption(p.Column(), p.ID).Selected(on[p.ID]))
	}
	return opts
}

// NewConfigForm builds the configuration form. Parameter groups are hidden
// unless their category is selected.
func NewConfigForm(fm *ConfigFormModel) *huh.Form {
	categoryOpts := make([]huh.Option[catalog.ID], 0)
	selected := make(map[catalog.ID]bool, len(fm.Categories))
	for _, id := range fm.Categories {
		selected[id] = true
	}
	for _, entry := range catalog.Categories() {
		categoryOpts = append(categoryOpts, huh.NewOption(entry.Name, entry.ID).Selected(selected[entry.ID]))
	}

	hasCategory := func(id catalog.ID) bool {
		for _, c := range fm.Categories {
			if c == id {
				return true
			}
		}
		return false
	}

	welfare, _ := catalog.Lookup(catalog.WelfareIndicators)

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Group").
				Description("Fish group or pen name").
				Value(&fm.Group).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("group name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title(fmt.Sprintf("Number of fish (%d-%d)", constants.MinFishCount, constants.MaxFishCount)).
				Value(&fm.FishCount).
				Validate(validateIntRange(constants.MinFishCount, constants.MaxFishCount)),
			huh.NewMultiSelect[catalog.ID]().
				Title("Categories").
				Options(categoryOpts...).
				Value(&fm.Categories).
				Validate(func(ids []catalog.ID) error {
					if len(ids) == 0 {
						return fmt.Errorf("select at least one category")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Welfare indicators").
				Description("Each is scored 0 (none) to 3 (severe)").
				Options(paramOptions(welfare, fm.WelfareIndicators)...).
				Value(&fm.WelfareIndicators),
			huh.NewConfirm().
				Title("Attach an image to each fish?").
				Value(&fm.AttachImages),
		).WithHideFunc(func() bool { return !hasCategory(catalog.WelfareIndicators) }),
		huh.NewGroup(
			huh.NewSelect[constants.LengthUnit]().
				Title("Length unit").
				Options(
					huh.NewOption("Centimetres", constants.LengthCM),
					huh.NewOption("Inches", constants.LengthInch),
				).
				Value(&fm.LengthUnit),
			huh.NewSelect[constants.WeightUnit]().
				Title("Weight unit").
				Options(
					huh.NewOption("Grams", constants.WeightGram),
					huh.NewOption("Kilograms", constants.WeightKilogram),
				).
				Value(&fm.WeightUnit),
		).WithHideFunc(func() bool { return !hasCategory(catalog.ProductionData) }),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Number of sampling locations (%d-%d)", constants.MinLocationCount, constants.MaxLocationCount)).
				Value(&fm.LocationCount).
				Validate(validateIntRange(constants.MinLocationCount, constants.MaxLocationCount)),
		).WithHideFunc(func() bool { return !hasCategory(catalog.WaterQuality) }),
	}

	for _, entry := range catalog.Categories() {
		if !entry.Selectable {
			continue
		}
		sel := fm.SubParams[entry.ID]
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(entry.Name+" parameters").
				Description("A category with no parameters is skipped").
				Options(paramOptions(entry, *sel)...).
				Value(sel),
		).WithHideFunc(func() bool { return !hasCategory(entry.ID) }))
	}

	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

// RowInputs holds the bound values of one fish or location
type RowInputs struct {
	Location string
	Values   map[string]*string
}

// RecordFormModel holds the bound values of one category pass
type RecordFormModel struct {
	Plan records.Plan
	Rows []*RowInputs
}

// NewRecordFormModel allocates empty inputs for every expected row
func NewRecordFormModel(cfg models.SessionConfig, plan records.Plan) *RecordFormModel {
	n := records.ExpectedRows(cfg, plan)
	fm := &RecordFormModel{Plan: plan, Rows: make([]*RowInputs, n)}
	for i := range fm.Rows {
		row := &RowInputs{Values: make(map[string]*string)}
		if plan.Entry.Scope == catalog.PerLocation {
			row.Location = records.DefaultLocation(i + 1)
		}
		for _, p := range plan.Inputs() {
			row.Values[p.ID] = new(string)
		}
		fm.Rows[i] = row
	}
	return fm
}

// RawRows returns the submission for the session controller; blank fields are left out
func (fm *RecordFormModel) RawRows() []records.RawRow {
	out := make([]records.RawRow, len(fm.Rows))
	for i, row := range fm.Rows {
		raw := records.RawRow{Location: strings.TrimSpace(row.Location), Values: make(map[string]string)}
		for id, v := range row.Values {
			if s := strings.TrimSpace(*v); s != "" {
				raw.Values[id] = s
			}
		}
		out[i] = raw
	}
	return out
}

// NewRecordForm builds one page per fish (or location) for the plan's inputs.
// Welfare fields point at the indicator's guideline image when one exists.
func NewRecordForm(fm *RecordFormModel, guidelines *catalog.Guidelines) *huh.Form {
	inputs := fm.Plan.Inputs()
	groups := make([]*huh.Group, 0, len(fm.Rows))

	for i, row := range fm.Rows {
		fields := make([]huh.Field, 0, len(inputs)+1)
		if fm.Plan.Entry.Scope == catalog.PerLocation {
			fields = append(fields, huh.NewInput().
				Title("Location").
				Value(&row.Location))
		}
		for _, p := range inputs {
			fields = append(fields, huh.NewInput().
				Title(p.Column()).
				Description(fieldDescription(fm.Plan.Entry, p, guidelines)).
				Value(row.Values[p.ID]).
				Validate(func(s string) error {
					_, err := p.Domain.Parse(s)
					return err
				}))
		}

		title := fmt.Sprintf("%s: fish %d of %d", fm.Plan.Entry.Name, i+1, len(fm.Rows))
		if fm.Plan.Entry.Scope == catalog.PerLocation {
			title = fmt.Sprintf("%s: location %d of %d", fm.Plan.Entry.Name, i+1, len(fm.Rows))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(title))
	}

	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

func fieldDescription(entry catalog.Entry, p catalog.Param, guidelines *catalog.Guidelines) string {
	desc := p.Domain.Describe()
	if entry.ID != catalog.WelfareIndicators || p.ID == catalog.ImageParam.ID {
		return desc
	}
	if path, ok := guidelines.Lookup(p.Name); ok {
		return desc + " | guide: " + path
	}
	return desc + " | no reference image"
}
