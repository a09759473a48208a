package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/config"
	"github.com/shreeramghimire/salmonometer/internal/keyring"
	"github.com/shreeramghimire/salmonometer/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: config file
	if ctx.Config.Path == "" {
		fmt.Fprintf(out, "⚠ Config file: WARNING\n")
		fmt.Fprintf(out, "   No config file found, using defaults. Run 'salmonometer init' to create one.\n")
	} else {
		fmt.Fprintf(out, "✓ Config file: OK (%s)\n", ctx.Config.Path)
	}

	// Check 2: export formats
	if formats, err := ctx.Config.ExportFormats(); err != nil {
		fmt.Fprintf(out, "❌ Export formats: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Export formats: OK %v\n", formats)
	}

	// Check 3: output sink
	if detail, err := checkSink(ctx); err != nil {
		fmt.Fprintf(out, "❌ Output sink: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Output sink: OK (%s)\n", detail)
	}

	// Check 4: OS keyring
	keyringOK := keyring.IsAvailable()
	if keyringOK {
		fmt.Fprintf(out, "✓ OS keyring: OK\n")
	} else {
		fmt.Fprintf(out, "⚠ OS keyring: WARNING\n")
		fmt.Fprintf(out, "   Not available on this system; set AWS_SECRET_ACCESS_KEY instead.\n")
	}

	// Check 5: S3 credentials (only for s3 with an explicit access key)
	if ctx.Config.Output.Driver == string(storage.DriverS3) && ctx.Config.Output.S3.AccessKeyID != "" {
		if os.Getenv("AWS_SECRET_ACCESS_KEY") != "" {
			fmt.Fprintf(out, "✓ S3 secret: OK (environment)\n")
		} else if !keyringOK {
			fmt.Fprintf(out, "❌ S3 secret: FAIL\n")
			fmt.Fprintf(out, "   Error: no AWS_SECRET_ACCESS_KEY and no OS keyring to read it from\n")
			hasError = true
		} else if _, err := keyring.GetS3Secret(); err != nil {
			fmt.Fprintf(out, "❌ S3 secret: FAIL\n")
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Fprintf(out, "✓ S3 secret: OK (keyring)\n")
		}
	} else {
		fmt.Fprintf(out, "⊘ S3 secret: SKIPPED (no access key configured)\n")
	}

	// Check 6: guideline images (warning only)
	missing, err := missingGuidelines(ctx)
	switch {
	case err != nil:
		fmt.Fprintf(out, "❌ Guideline images: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	case len(missing) > 0:
		fmt.Fprintf(out, "⚠ Guideline images: WARNING\n")
		for _, name := range missing {
			fmt.Fprintf(out, "   missing: %s\n", name)
		}
	default:
		fmt.Fprintf(out, "✓ Guideline images: OK\n")
	}

	fmt.Fprintln(out)
	if hasError {
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

// checkSink never creates anything: a missing fs output directory is reported, not made
func checkSink(ctx *Context) (string, error) {
	opts, err := ctx.Config.StorageOptions(nil)
	if err != nil {
		return "", err
	}
	driver, err := storage.ParseDriver(opts.Driver)
	if err != nil {
		return "", err
	}
	if driver == storage.DriverS3 {
		sink, err := ctx.OpenSink(context.Background())
		if err != nil {
			return "", err
		}
		return sink.Describe(), nil
	}

	info, err := os.Stat(opts.Dir)
	switch {
	case os.IsNotExist(err):
		return fmt.Sprintf("%s, created on first export", opts.Dir), nil
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", fmt.Errorf("%s is not a directory", opts.Dir)
	}
	f, err := os.CreateTemp(opts.Dir, ".doctor-*")
	if err != nil {
		return "", fmt.Errorf("output directory not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return opts.Dir, nil
}

func missingGuidelines(ctx *Context) ([]string, error) {
	if ctx.Config.GuidelinesDir == "" {
		return catalog.IndicatorNames, nil
	}
	guides, err := ctx.Guidelines()
	if err != nil {
		return nil, err
	}
	dir, err := config.ExpandPath(ctx.Config.GuidelinesDir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("guidelines directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return guides.Missing(catalog.IndicatorNames), nil
}
