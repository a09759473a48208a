package models

import (
	"time"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
)

// SessionConfig is the set of choices governing one recording pass.
// It is editable while configuring and frozen once recording starts.
type SessionConfig struct {
	Group         string       `yaml:"group" json:"group"`
	Date          time.Time    `yaml:"-" json:"date"`
	FishCount     int          `yaml:"fish_count" json:"fish_count"`
	LocationCount int          `yaml:"location_count" json:"location_count"`
	Categories    []catalog.ID `yaml:"categories" json:"categories"`
	// WelfareIndicators holds indicator ids; nil selects all of them
	WelfareIndicators []string `yaml:"welfare_indicators" json:"welfare_indicators,omitempty"`
	// SubParams overrides the active parameters of selectable categories; a missing key selects all
	SubParams    map[catalog.ID][]string `yaml:"parameters" json:"parameters,omitempty"`
	LengthUnit   constants.LengthUnit    `yaml:"length_unit" json:"length_unit"`
	WeightUnit   constants.WeightUnit    `yaml:"weight_unit" json:"weight_unit"`
	AttachImages bool                    `yaml:"attach_images" json:"attach_images"`
}

// DefaultSessionConfig returns the starting configuration for a new session
func DefaultSessionConfig(now time.Time) SessionConfig {
	y, m, d := now.Date()
	return SessionConfig{
		Date:          time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		FishCount:     constants.DefaultFishCount,
		LocationCount: constants.DefaultLocationCount,
		LengthUnit:    constants.LengthCM,
		WeightUnit:    constants.WeightGram,
	}
}

// HasCategory reports whether id is among the selected categories
func (c SessionConfig) HasCategory(id catalog.ID) bool {
	for _, sel := range c.Categories {
		if sel == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so a frozen config never shares slices with a draft
func (c SessionConfig) Clone() SessionConfig {
	out := c
	if c.Categories != nil {
		out.Categories = append([]catalog.ID{}, c.Categories...)
	}
	if c.WelfareIndicators != nil {
		out.WelfareIndicators = append([]string{}, c.WelfareIndicators...)
	}
	if c.SubParams != nil {
		out.SubParams = make(map[catalog.ID][]string, len(c.SubParams))
		for k, v := range c.SubParams {
			if v == nil {
				out.SubParams[k] = nil
				continue
			}
			out.SubParams[k] = append([]string{}, v...)
		}
	}
	return out
}

// DateString formats the session date for the Date column
func (c SessionConfig) DateString() string {
	return c.Date.Format(constants.DateFormat)
}
