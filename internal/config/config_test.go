package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/storage"
	"github.com/shreeramghimire/salmonometer/internal/validation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Output.Driver != "fs" || cfg.Output.Dir != constants.DefaultOutputDir {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Defaults.FishCount != constants.DefaultFishCount {
		t.Errorf("FishCount = %d", cfg.Defaults.FishCount)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
output:
  driver: s3
  formats: [csv, sqlite]
  s3:
    bucket: fish-data
    prefix: farm-a
    path_style: true
guidelines_dir: /srv/guides
parameters:
  amino_acid_profile: [lysine, methionine]
  lipid_profile: []
welfare_indicators: [fin_condition]
defaults:
  fish_count: 5
  length_unit: inch
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Output.S3.Bucket != "fish-data" || !cfg.Output.S3.PathStyle {
		t.Errorf("s3 = %+v", cfg.Output.S3)
	}
	formats, err := cfg.ExportFormats()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(formats, []export.Format{export.FormatCSV, export.FormatSQLite}) {
		t.Errorf("ExportFormats() = %v", formats)
	}

	draft := cfg.SessionDraft(time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC))
	if draft.FishCount != 5 || draft.LengthUnit != constants.LengthInch || draft.WeightUnit != constants.WeightGram {
		t.Errorf("draft = %+v", draft)
	}
	if draft.DateString() != "2026-10-16" {
		t.Errorf("draft date = %s", draft.DateString())
	}
	if got := draft.SubParams[catalog.AminoAcidProfile]; !reflect.DeepEqual(got, []string{"lysine", "methionine"}) {
		t.Errorf("amino override = %v", got)
	}
	if got, ok := draft.SubParams[catalog.LipidProfile]; !ok || len(got) != 0 {
		t.Errorf("lipid override = %v, %v; want present and empty", got, ok)
	}
	if !reflect.DeepEqual(draft.WelfareIndicators, []string{"fin_condition"}) {
		t.Errorf("welfare indicators = %v", draft.WelfareIndicators)
	}
}

func TestSessionDraftNormalizesNames(t *testing.T) {
	path := writeConfig(t, `
welfare_indicators: [Fin Condition, eye_damage]
parameters:
  Product Quality: [Fat Content, Muscle pH]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	draft := cfg.SessionDraft(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	if want := []string{"fin_condition", "eye_damage"}; !reflect.DeepEqual(draft.WelfareIndicators, want) {
		t.Errorf("welfare indicators = %v, want %v", draft.WelfareIndicators, want)
	}
	if got := draft.SubParams[catalog.ProductQuality]; !reflect.DeepEqual(got, []string{"fat_content", "muscle_ph"}) {
		t.Errorf("product quality override = %v", got)
	}

	draft.Group = "GroupA"
	draft.Categories = []catalog.ID{catalog.WelfareIndicators, catalog.ProductQuality}
	if result := validation.New().ValidateConfig(draft); result.HasIssues() {
		t.Errorf("normalized draft does not validate: %s", result.FormatReport())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad driver", "output:\n  driver: ftp\n"},
		{"bad format", "output:\n  formats: [pdf]\n"},
		{"bad category", "parameters:\n  fins: [a]\n"},
		{"bad yaml", "output: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() succeeded")
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SALMONOMETER_OUTPUT_DRIVER", "s3")
	t.Setenv("SALMONOMETER_S3_BUCKET", "env-bucket")
	t.Setenv("SALMONOMETER_S3_PATH_STYLE", "true")
	t.Setenv("SALMONOMETER_DEBUG", "1")
	t.Setenv("SALMONOMETER_GUIDELINES_DIR", "/tmp/guides")

	cfg, err := Load(writeConfig(t, "output:\n  driver: fs\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Driver != "s3" || cfg.Output.S3.Bucket != "env-bucket" || !cfg.Output.S3.PathStyle {
		t.Errorf("output = %+v", cfg.Output)
	}
	if !cfg.Log.Debug || cfg.GuidelinesDir != "/tmp/guides" {
		t.Errorf("debug = %v, guidelines = %q", cfg.Log.Debug, cfg.GuidelinesDir)
	}
}

func TestStorageOptionsSecret(t *testing.T) {
	cfg := Default()
	cfg.Output.Driver = "s3"
	cfg.Output.S3.Bucket = "b"
	cfg.Output.S3.AccessKeyID = "AKIA"

	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	opts, err := cfg.StorageOptions(func() (string, error) { return "from-keyring", nil })
	if err != nil {
		t.Fatal(err)
	}
	if opts.S3.SecretAccessKey != "from-keyring" {
		t.Errorf("secret = %q, want keyring value", opts.S3.SecretAccessKey)
	}

	t.Setenv("AWS_SECRET_ACCESS_KEY", "from-env")
	opts, err = cfg.StorageOptions(func() (string, error) { return "", errors.New("unused") })
	if err != nil {
		t.Fatal(err)
	}
	if opts.S3.SecretAccessKey != "from-env" {
		t.Errorf("secret = %q, want env value", opts.S3.SecretAccessKey)
	}
	if opts.Driver != string(storage.DriverS3) {
		t.Errorf("driver = %q", opts.Driver)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.config/salmonometer/config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".config/salmonometer/config.yaml"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}
	if got, _ := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath(abs) = %q", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.GuidelinesDir = "/srv/guides"
	cfg.Parameters = map[catalog.ID][]string{catalog.LipidProfile: {"c16:0"}}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.GuidelinesDir != "/srv/guides" {
		t.Errorf("GuidelinesDir = %q", loaded.GuidelinesDir)
	}
	if !reflect.DeepEqual(loaded.Parameters, cfg.Parameters) {
		t.Errorf("Parameters = %v", loaded.Parameters)
	}
}
