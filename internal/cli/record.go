package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/records"
	"github.com/shreeramghimire/salmonometer/internal/session"
	"github.com/shreeramghimire/salmonometer/internal/validation"
)

// Sheet is a YAML entry sheet: a session configuration plus the rows of every category.
// Categories and entry keys accept a category id, slug or name.
type Sheet struct {
	Group             string                      `yaml:"group"`
	Date              string                      `yaml:"date"`
	FishCount         int                         `yaml:"fish_count"`
	LocationCount     int                         `yaml:"location_count"`
	Categories        []string                    `yaml:"categories"`
	WelfareIndicators []string                    `yaml:"welfare_indicators"`
	Parameters        map[string][]string         `yaml:"parameters"`
	LengthUnit        constants.LengthUnit        `yaml:"length_unit"`
	WeightUnit        constants.WeightUnit        `yaml:"weight_unit"`
	AttachImages      bool                        `yaml:"attach_images"`
	Entries           map[string][]records.RawRow `yaml:"entries"`
}

// LoadSheet reads an entry sheet from disk
func LoadSheet(path string) (Sheet, error) {
	var sheet Sheet
	data, err := os.ReadFile(path)
	if err != nil {
		return sheet, fmt.Errorf("failed to read sheet: %w", err)
	}
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return sheet, fmt.Errorf("failed to parse sheet %s: %w", path, err)
	}
	return sheet, nil
}

// SessionConfig overlays the sheet on a draft configuration
func (s Sheet) SessionConfig(draft models.SessionConfig) (models.SessionConfig, error) {
	cfg := draft.Clone()
	cfg.Group = s.Group
	if s.Date != "" {
		d, err := time.Parse(constants.DateFormat, strings.TrimSpace(s.Date))
		if err != nil {
			return cfg, fmt.Errorf("sheet date %q: want YYYY-MM-DD", s.Date)
		}
		cfg.Date = d
	}
	if s.FishCount != 0 {
		cfg.FishCount = s.FishCount
	}
	if s.LocationCount != 0 {
		cfg.LocationCount = s.LocationCount
	}
	if s.LengthUnit != "" {
		cfg.LengthUnit = s.LengthUnit
	}
	if s.WeightUnit != "" {
		cfg.WeightUnit = s.WeightUnit
	}
	if s.AttachImages {
		cfg.AttachImages = true
	}
	if s.WelfareIndicators != nil {
		cfg.WelfareIndicators = make([]string, len(s.WelfareIndicators))
		for i, name := range s.WelfareIndicators {
			cfg.WelfareIndicators[i] = catalog.Key(name)
		}
	}

	cfg.Categories = make([]catalog.ID, 0, len(s.Categories))
	for _, name := range s.Categories {
		id, err := catalog.ParseID(name)
		if err != nil {
			return cfg, err
		}
		cfg.Categories = append(cfg.Categories, id)
	}

	for name, params := range s.Parameters {
		id, err := catalog.ParseID(name)
		if err != nil {
			return cfg, err
		}
		if cfg.SubParams == nil {
			cfg.SubParams = make(map[catalog.ID][]string)
		}
		keys := make([]string, len(params))
		for i, p := range params {
			keys[i] = catalog.Key(p)
		}
		cfg.SubParams[id] = keys
	}
	return cfg, nil
}

// EntriesFor returns the rows given for a category
func (s Sheet) EntriesFor(id catalog.ID) ([]records.RawRow, error) {
	for name, rows := range s.Entries {
		got, err := catalog.ParseID(name)
		if err != nil {
			return nil, err
		}
		if got == id {
			return rows, nil
		}
	}
	return nil, fmt.Errorf("sheet has no entries for %s", id)
}

type RecordCmd struct {
	Sheet  string   `help:"YAML entry sheet." type:"existingfile" required:"" short:"s"`
	Format []string `help:"Export formats (csv, xlsx, sqlite); defaults to output.formats." short:"f"`
	DryRun bool     `help:"Validate and preview without writing files."`
}

func (c *RecordCmd) Run(ctx *Context) error {
	sheet, err := LoadSheet(c.Sheet)
	if err != nil {
		return err
	}
	formats, err := ctx.Formats(c.Format)
	if err != nil {
		return err
	}
	guides, err := ctx.Guidelines()
	if err != nil {
		return err
	}

	draft := ctx.Config.SessionDraft(time.Now())
	out := ctx.out()
	if c.DryRun {
		cfg, err := sheet.SessionConfig(draft)
		if err != nil {
			return err
		}
		result := validation.New().ValidateConfig(cfg)
		fmt.Fprintln(out, strings.TrimRight(result.FormatReport(), "\n"))
		if err := result.Err(); err != nil {
			return err
		}
	}

	ctrl, err := RunSheet(sheet, draft, guides)
	if err != nil {
		return err
	}
	for _, w := range ctrl.State().Warnings {
		fmt.Fprintln(out, w.String())
	}

	files, err := ctrl.Export(formats)
	if err != nil {
		return err
	}
	if c.DryRun {
		for _, set := range ctrl.Preview() {
			fmt.Fprintf(out, "%s: %d rows\n", set.Sheet, set.Len())
		}
		for _, f := range files {
			fmt.Fprintf(out, "  would write %s (%d bytes)\n", f.Name, len(f.Data))
		}
		return nil
	}

	sink, err := ctx.OpenSink(context.Background())
	if err != nil {
		return err
	}
	for _, f := range files {
		art, err := sink.Put(context.Background(), f.Name, f.Data, f.ContentType)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ %s -> %s\n", art.Name, art.Location)
	}
	return nil
}

// RunSheet drives a whole session from a sheet, ending in the exporting phase
func RunSheet(sheet Sheet, draft models.SessionConfig, guides *catalog.Guidelines) (*session.Controller, error) {
	cfg, err := sheet.SessionConfig(draft)
	if err != nil {
		return nil, err
	}

	ctrl := session.NewController(cfg, guides)
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	for {
		plan, ok := ctrl.State().ActivePlan()
		if !ok {
			break
		}
		rows, err := sheet.EntriesFor(plan.Entry.ID)
		if err != nil {
			return nil, err
		}
		if err := ctrl.Submit(rows); err != nil {
			return nil, fmt.Errorf("%s: %w", plan.Entry.Name, err)
		}
	}
	return ctrl, nil
}

