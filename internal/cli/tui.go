package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shreeramghimire/salmonometer/internal/session"
	"github.com/shreeramghimire/salmonometer/internal/tui"
)

type TuiCmd struct {
	Format []string `help:"Export formats (csv, xlsx, sqlite); defaults to output.formats." short:"f"`
}

func (c *TuiCmd) Run(ctx *Context) error {
	sink, err := ctx.OpenSink(context.Background())
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

	ctrl := session.NewController(ctx.Config.SessionDraft(time.Now()), guides)
	p := tea.NewProgram(tui.NewModel(ctrl, sink, formats, guides), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
