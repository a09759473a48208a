package cli

import (
	"context"
	"io"
	"os"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/config"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/keyring"
	"github.com/shreeramghimire/salmonometer/internal/storage"
)

type Context struct {
	Config     config.Config
	ConfigPath string
	Out        io.Writer
}

// NewContext wraps a loaded configuration for the commands
func NewContext(cfg config.Config, path string) *Context {
	return &Context{Config: cfg, ConfigPath: path, Out: os.Stdout}
}

// OpenSink builds the configured artifact sink
func (c *Context) OpenSink(ctx context.Context) (storage.Sink, error) {
	opts, err := c.Config.StorageOptions(keyring.GetS3Secret)
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, opts)
}

// Guidelines returns the guideline image lookup; nil when none is configured
func (c *Context) Guidelines() (*catalog.Guidelines, error) {
	return c.Config.Guidelines()
}

// Formats returns the configured export formats, or the override when given
func (c *Context) Formats(override []string) ([]export.Format, error) {
	if len(override) == 0 {
		return c.Config.ExportFormats()
	}
	out := make([]export.Format, 0, len(override))
	for _, s := range override {
		f, err := export.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
