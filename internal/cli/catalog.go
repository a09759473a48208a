package cli

import (
	"fmt"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
)

type CatalogCmd struct {
	Category string `arg:"" optional:"" help:"Show only this category (id, slug or name)."`
}

func (c *CatalogCmd) Run(ctx *Context) error {
	entries := catalog.Categories()
	if c.Category != "" {
		id, err := catalog.ParseID(c.Category)
		if err != nil {
			return err
		}
		entry, _ := catalog.Lookup(id)
		entries = []catalog.Entry{entry}
	}

	out := ctx.out()
	for _, entry := range entries {
		scope := "per fish"
		if entry.Scope == catalog.PerLocation {
			scope = "per location"
		}
		fmt.Fprintf(out, "%s [%s] - %s, slug %q\n", entry.Name, entry.ID, scope, entry.Slug)
		if entry.Selectable {
			fmt.Fprintf(out, "  parameters selectable under parameters.%s\n", entry.ID)
		}
		for _, p := range entry.Params {
			derived := ""
			if p.Derived {
				derived = " (derived)"
			}
			fmt.Fprintf(out, "  %-24s %-32s %s%s\n", p.ID, p.Column(), p.Domain.Describe(), derived)
		}
		fmt.Fprintln(out)
	}
	return nil
}
