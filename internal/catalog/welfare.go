package catalog

import "github.com/shreeramghimire/salmonometer/internal/constants"

// IndicatorNames lists the welfare indicators, each scored 0 (none) to 3 (severe)
var IndicatorNames = []string{
	"Fin Condition",
	"Skin Condition",
	"Scale Loss",
	"Snout Damage",
	"Eye Damage",
	"Cataracts",
	"Gill Condition",
	"Operculum Damage",
	"Jaw Deformity",
	"Spinal Deformity",
	"Emaciation",
	"Lice Damage",
}

func welfareParams() []Param {
	out := make([]Param, 0, len(IndicatorNames))
	for _, name := range IndicatorNames {
		out = append(out, Param{ID: Key(name), Name: name, Domain: welfareScale, Decimals: -1})
	}
	return out
}

// ImageParam is the optional per-fish attachment column of the welfare category.
// Only the file name is retained.
var ImageParam = Param{ID: "image", Name: constants.ColumnImage, Domain: freeText, Decimals: -1}
