package session

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/records"
	"github.com/shreeramghimire/salmonometer/internal/validation"
)

func testDraft(categories ...catalog.ID) models.SessionConfig {
	cfg := models.DefaultSessionConfig(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	cfg.Group = "GroupA"
	cfg.FishCount = 3
	cfg.Categories = categories
	return cfg
}

func blankRows(n int) []records.RawRow {
	rows := make([]records.RawRow, n)
	for i := range rows {
		rows[i] = records.RawRow{Values: map[string]string{}}
	}
	return rows
}

func mustTransition(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Transition(s, a)
	if err != nil {
		t.Fatalf("Transition(%s) error = %v", a.Name(), err)
	}
	return next
}

func TestStartFreezesConfigAndOrdersCategories(t *testing.T) {
	draft := testDraft(catalog.LiceCount, catalog.WelfareIndicators)
	s := mustTransition(t, NewState(draft), Start{})

	if s.Phase != Recording {
		t.Fatalf("Phase = %s, want recording", s.Phase)
	}
	if len(s.Plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(s.Plans))
	}
	if s.Plans[0].Entry.ID != catalog.WelfareIndicators || s.Plans[1].Entry.ID != catalog.LiceCount {
		t.Errorf("plans not in catalog order: %s, %s", s.Plans[0].Entry.ID, s.Plans[1].Entry.ID)
	}
	if plan, ok := s.ActivePlan(); !ok || plan.Entry.ID != catalog.WelfareIndicators {
		t.Errorf("ActivePlan() = %v, %v", plan.Entry.ID, ok)
	}

	draft.Categories[0] = catalog.WaterQuality
	if s.Config.Categories[0] != catalog.LiceCount {
		t.Error("frozen config shares memory with the draft")
	}
}

func TestConfigurationErrorBlocksStart(t *testing.T) {
	draft := testDraft()
	draft.Group = ""
	s := NewState(draft)

	next, err := Transition(s, Start{})
	var cfgErr *validation.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Transition(start) error = %v, want ConfigurationError", err)
	}
	if !cfgErr.Has(validation.IssueMissingGroup) || !cfgErr.Has(validation.IssueNoCategories) {
		t.Errorf("issues = %v", cfgErr.Issues)
	}
	if !reflect.DeepEqual(next, s) {
		t.Error("failed start changed the state")
	}
}

func TestFullSessionProducesRowsPerCategory(t *testing.T) {
	draft := testDraft(catalog.WelfareIndicators, catalog.LiceCount, catalog.WaterQuality)
	draft.LocationCount = 2
	s := mustTransition(t, NewState(draft), Start{})

	s = mustTransition(t, s, Submit{Rows: blankRows(3)})
	if done, total := s.Progress(); done != 1 || total != 3 {
		t.Errorf("Progress() = %d/%d, want 1/3", done, total)
	}
	s = mustTransition(t, s, Submit{Rows: blankRows(3)})
	if s.Phase != Recording {
		t.Fatalf("Phase = %s before the last category", s.Phase)
	}
	s = mustTransition(t, s, Submit{Rows: blankRows(2)})

	if s.Phase != Exporting {
		t.Fatalf("Phase = %s, want exporting", s.Phase)
	}
	want := map[catalog.ID]int{catalog.WelfareIndicators: 3, catalog.LiceCount: 3, catalog.WaterQuality: 2}
	for _, set := range s.RecordSets() {
		if set.Len() != want[set.Category] {
			t.Errorf("%s has %d rows, want %d", set.Category, set.Len(), want[set.Category])
		}
	}

	if _, err := Transition(s, Submit{Rows: blankRows(3)}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("submit while exporting error = %v, want ErrInvalidAction", err)
	}
}

func TestRejectedSubmissionKeepsState(t *testing.T) {
	s := mustTransition(t, NewState(testDraft(catalog.LiceCount)), Start{})

	bad := blankRows(3)
	bad[1].Values["sessile"] = "-1"
	next, err := Transition(s, Submit{Rows: bad})
	var valErr *records.ValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want ValueError", err)
	}
	if valErr.Row != 2 {
		t.Errorf("ValueError.Row = %d, want 2", valErr.Row)
	}
	if !reflect.DeepEqual(next, s) {
		t.Error("rejected submission changed the state")
	}

	if _, err := Transition(s, Submit{Rows: blankRows(2)}); !errors.Is(err, records.ErrRowCount) {
		t.Errorf("short submission error = %v, want ErrRowCount", err)
	}
}

func TestSubmitDoesNotAliasPreviousState(t *testing.T) {
	s0 := mustTransition(t, NewState(testDraft(catalog.LiceCount, catalog.WelfareIndicators)), Start{})
	s1 := mustTransition(t, s0, Submit{Rows: blankRows(3)})

	if s0.Sets[0].Len() != 0 {
		t.Errorf("previous state gained %d rows", s0.Sets[0].Len())
	}
	if s1.Sets[0].Len() != 3 {
		t.Errorf("next state has %d rows, want 3", s1.Sets[0].Len())
	}
}

func TestReturnToSelectionPrefillsDraft(t *testing.T) {
	draft := testDraft(catalog.WelfareIndicators, catalog.ProductionData)
	draft.WelfareIndicators = []string{"fin_condition", "eye_damage"}
	s := mustTransition(t, NewState(draft), Start{})
	s = mustTransition(t, s, Submit{Rows: blankRows(3)})

	back := mustTransition(t, s, ReturnToSelection{})
	if back.Phase != Configuring {
		t.Fatalf("Phase = %s, want configuring", back.Phase)
	}
	if back.Draft.Group != "GroupA" || back.Draft.FishCount != 3 {
		t.Errorf("draft not pre-filled: %+v", back.Draft)
	}
	if !reflect.DeepEqual(back.Draft.WelfareIndicators, draft.WelfareIndicators) {
		t.Errorf("draft indicators = %v", back.Draft.WelfareIndicators)
	}
	if len(back.Sets) != 0 || len(back.Plans) != 0 {
		t.Error("recorded data survived return to selection")
	}

	again := mustTransition(t, back, ReturnToSelection{})
	if !reflect.DeepEqual(again, back) {
		t.Error("return to selection is not idempotent")
	}
}

func TestReturnToSelectionFromExporting(t *testing.T) {
	s := mustTransition(t, NewState(testDraft(catalog.LiceCount)), Start{})
	s = mustTransition(t, s, Submit{Rows: blankRows(3)})
	s = mustTransition(t, s, ReturnToSelection{})

	if s.Phase != Configuring || len(s.RecordSets()) != 0 {
		t.Errorf("Phase = %s with %d record sets", s.Phase, len(s.RecordSets()))
	}
	s = mustTransition(t, s, Start{})
	if s.Phase != Recording {
		t.Errorf("restart Phase = %s", s.Phase)
	}
}

func TestEmptySelectionSkipsCategory(t *testing.T) {
	draft := testDraft(catalog.LiceCount, catalog.AminoAcidProfile)
	draft.SubParams = map[catalog.ID][]string{catalog.AminoAcidProfile: {}}
	s := mustTransition(t, NewState(draft), Start{})

	if len(s.Plans) != 1 || s.Plans[0].Entry.ID != catalog.LiceCount {
		t.Fatalf("plans = %v", s.Plans)
	}
	if len(s.Warnings) != 1 || s.Warnings[0].Kind != models.WarningEmptyParameterSelection {
		t.Errorf("warnings = %v", s.Warnings)
	}

	s = mustTransition(t, s, Submit{Rows: blankRows(3)})
	if s.Phase != Exporting {
		t.Errorf("Phase = %s, want exporting", s.Phase)
	}
}

func TestEmptySelectionEverywhereIsAnError(t *testing.T) {
	draft := testDraft(catalog.AminoAcidProfile)
	draft.SubParams = map[catalog.ID][]string{catalog.AminoAcidProfile: nil}

	_, err := Transition(NewState(draft), Start{})
	var cfgErr *validation.ConfigurationError
	if !errors.As(err, &cfgErr) || !cfgErr.Has(validation.IssueNothingToRecord) {
		t.Errorf("error = %v, want nothing_to_record", err)
	}
}

func TestConfigureOnlyWhileConfiguring(t *testing.T) {
	s := NewState(testDraft())
	s = mustTransition(t, s, Configure{Config: testDraft(catalog.LiceCount)})
	if !s.Draft.HasCategory(catalog.LiceCount) {
		t.Fatal("Configure did not replace the draft")
	}

	s = mustTransition(t, s, Start{})
	if _, err := Transition(s, Configure{Config: testDraft()}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("configure while recording error = %v", err)
	}
	if _, err := Transition(s, Start{}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("start while recording error = %v", err)
	}
	if _, err := Transition(NewState(testDraft()), Submit{}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("submit while configuring error = %v", err)
	}
}

func TestControllerAssetWarningsAndExport(t *testing.T) {
	guides := catalog.NewGuidelines(fstest.MapFS{
		"fin_condition.png": {Data: []byte("png")},
	})
	draft := testDraft(catalog.WelfareIndicators)
	draft.WelfareIndicators = []string{"fin_condition", "eye_damage"}
	c := NewController(draft, guides)

	if c.ID() == "" {
		t.Error("controller has no id")
	}
	if _, err := c.Export([]export.Format{export.FormatCSV}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("export while configuring error = %v", err)
	}

	if err := c.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	warnings := c.State().Warnings
	if len(warnings) != 1 || warnings[0].Kind != models.WarningMissingAsset || warnings[0].Subject != "Eye Damage" {
		t.Errorf("warnings = %v", warnings)
	}

	if err := c.Submit(blankRows(3)); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	files, err := c.Export([]export.Format{export.FormatCSV, export.FormatXLSX})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(files) != 2 || files[0].Name != "GroupA_welfare.csv" {
		t.Errorf("files = %v", files)
	}
	if c.State().Phase != Exporting {
		t.Error("export changed the phase")
	}
	if len(c.Preview()) != 1 {
		t.Errorf("Preview() returned %d sets", len(c.Preview()))
	}
}
