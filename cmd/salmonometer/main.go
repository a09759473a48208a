package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/shreeramghimire/salmonometer/internal/cli"
	"github.com/shreeramghimire/salmonometer/internal/config"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	apperrors "github.com/shreeramghimire/salmonometer/internal/errors"
	"github.com/shreeramghimire/salmonometer/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"~/.config/salmonometer/config.yaml"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Write a default config file."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive entry session." default:"1"`
	Record  cli.RecordCmd  `cmd:"" help:"Record a session from a YAML entry sheet and export it."`
	Catalog cli.CatalogCmd `cmd:"" help:"List categories and their parameters."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Keyring cli.KeyringCmd `cmd:"" help:"Manage the S3 secret in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Fish sampling data collection: configure a session, record each category, export CSV or workbooks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	path, err := config.ExpandPath(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	// init writes the config, so it must not fail on a broken one
	cfg := config.Default()
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		cfg, err = config.Load(path)
		if err != nil {
			apperrors.Fatal(err)
		}
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || cfg.Log.Debug,
		ConfigDir: filepath.Dir(path),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	logger.Debug("Starting", "version", constants.Version, "config", path)

	if err := ctx.Run(cli.NewContext(cfg, path)); err != nil {
		apperrors.Fatal(err)
	}
}
