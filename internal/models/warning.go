package models

import (
	"fmt"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
)

// WarningKind classifies a non-fatal problem surfaced to the user
type WarningKind string

const (
	WarningMissingAsset            WarningKind = "missing_asset"
	WarningEmptyParameterSelection WarningKind = "empty_parameter_selection"
)

// Warning is a non-fatal condition; it never blocks recording
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Category catalog.ID  `json:"category"`
	Subject  string      `json:"subject,omitempty"`
	Message  string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("⚠ %s", w.Message)
}

// MissingAssetWarning reports a welfare indicator without a guideline image
func MissingAssetWarning(indicator string) Warning {
	return Warning{
		Kind:     WarningMissingAsset,
		Category: catalog.WelfareIndicators,
		Subject:  indicator,
		Message:  fmt.Sprintf("no reference image found for %s", indicator),
	}
}

// EmptyParameterSelectionWarning reports a category that will be skipped
func EmptyParameterSelectionWarning(e catalog.Entry) Warning {
	return Warning{
		Kind:     WarningEmptyParameterSelection,
		Category: e.ID,
		Message:  fmt.Sprintf("%s has no parameters selected and will be skipped", e.Name),
	}
}
