// Package catalog holds the static, read-only schema of every recordable
// category: its parameters, their units and their value domains.
package catalog

import (
	"fmt"
	"strings"
)

// ID identifies a recordable category
type ID string

const (
	WelfareIndicators ID = "welfare_indicators"
	ProductionData    ID = "production_data"
	WaterQuality      ID = "water_quality"
	LiceCount         ID = "lice_count"
	ProductQuality    ID = "product_quality"
	AminoAcidProfile  ID = "amino_acid_profile"
	LipidProfile      ID = "lipid_profile"
)

// Scope says whether a category records one row per fish or per sampling location
type Scope int

const (
	PerFish Scope = iota
	PerLocation
)

// Parameter ids that carry special meaning for the production category
const (
	ParamLength          = "length"
	ParamWeight          = "weight"
	ParamConditionFactor = "condition_factor"
)

// Param is a single measurable field of a category
type Param struct {
	ID      string
	Name    string
	Unit    string // empty when the value is dimensionless
	Domain  Domain
	Derived bool // computed, never entered
	// Decimals fixes the number of decimals in text output; -1 keeps natural precision
	Decimals int
}

// Column returns the record set column header, e.g. "Weight (g)"
func (p Param) Column() string {
	if p.Unit == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Unit)
}

// Entry is the schema of one category
type Entry struct {
	ID    ID
	Name  string
	Slug  string
	Scope Scope
	// Selectable marks categories whose active parameter subset may be overridden upstream
	Selectable bool
	Params     []Param
}

// Param looks up a parameter of the entry by id
func (e Entry) Param(id string) (Param, bool) {
	for _, p := range e.Params {
		if p.ID == id {
			return p, true
		}
	}
	return Param{}, false
}

// Inputs returns the parameters a user enters, skipping derived ones
func (e Entry) Inputs() []Param {
	out := make([]Param, 0, len(e.Params))
	for _, p := range e.Params {
		if !p.Derived {
			out = append(out, p)
		}
	}
	return out
}

// Select returns the ordered subset of parameters named by ids, in catalog order.
// A nil selection means every parameter; an empty non-nil selection yields none.
func (e Entry) Select(ids []string) ([]Param, error) {
	if ids == nil {
		out := make([]Param, len(e.Params))
		copy(out, e.Params)
		return out, nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := e.Param(id); !ok {
			return nil, fmt.Errorf("unknown parameter %q for %s", id, e.Name)
		}
		want[id] = true
	}
	out := make([]Param, 0, len(want))
	for _, p := range e.Params {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

var entries = []Entry{
	{
		ID:     WelfareIndicators,
		Name:   "Welfare Indicators",
		Slug:   "welfare",
		Scope:  PerFish,
		Params: welfareParams(),
	},
	{
		ID:    ProductionData,
		Name:  "Production Data",
		Slug:  "production",
		Scope: PerFish,
		Params: []Param{
			{ID: ParamLength, Name: "Length", Unit: "cm", Domain: nonNegative, Decimals: -1},
			{ID: ParamWeight, Name: "Weight", Unit: "g", Domain: nonNegative, Decimals: -1},
			{ID: ParamConditionFactor, Name: "Condition Factor", Domain: nonNegative, Derived: true, Decimals: 2},
		},
	},
	{
		ID:    WaterQuality,
		Name:  "Water Quality",
		Slug:  "water_quality",
		Scope: PerLocation,
		Params: []Param{
			{ID: "dissolved_oxygen", Name: "Dissolved Oxygen", Unit: "mg/L", Domain: nonNegative, Decimals: -1},
			{ID: "ph", Name: "pH", Domain: realRange(0, 14), Decimals: -1},
			{ID: "temperature", Name: "Temperature", Unit: "°C", Domain: realFrom(-2), Decimals: -1},
			{ID: "salinity", Name: "Salinity", Unit: "ppt", Domain: nonNegative, Decimals: -1},
		},
	},
	{
		ID:    LiceCount,
		Name:  "Lice Count",
		Slug:  "lice_count",
		Scope: PerFish,
		Params: []Param{
			{ID: "sessile", Name: "Sessile", Domain: count, Decimals: -1},
			{ID: "pre_adult_1", Name: "Pre-adult I", Domain: count, Decimals: -1},
			{ID: "pre_adult_2", Name: "Pre-adult II", Domain: count, Decimals: -1},
			{ID: "adult_male", Name: "Adult Male", Domain: count, Decimals: -1},
			{ID: "adult_female", Name: "Adult Female", Domain: count, Decimals: -1},
		},
	},
	{
		ID:         ProductQuality,
		Name:       "Product Quality",
		Slug:       "product_quality",
		Scope:      PerFish,
		Selectable: true,
		Params: []Param{
			{ID: "fillet_colour", Name: "Fillet Colour", Unit: "SalmoFan", Domain: realRange(20, 34), Decimals: -1},
			{ID: "fat_content", Name: "Fat Content", Unit: "%", Domain: realRange(0, 100), Decimals: -1},
			{ID: "gaping", Name: "Gaping", Unit: "score", Domain: realRange(0, 5), Decimals: -1},
			{ID: "texture", Name: "Texture", Unit: "N", Domain: nonNegative, Decimals: -1},
			{ID: "drip_loss", Name: "Drip Loss", Unit: "%", Domain: realRange(0, 100), Decimals: -1},
			{ID: "muscle_ph", Name: "Muscle pH", Domain: realRange(0, 14), Decimals: -1},
		},
	},
	{
		ID:         AminoAcidProfile,
		Name:       "Amino Acid Profile",
		Slug:       "amino_acid_profile",
		Scope:      PerFish,
		Selectable: true,
		Params: labParams("g/100g protein",
			"Arginine", "Histidine", "Isoleucine", "Leucine", "Lysine",
			"Methionine", "Phenylalanine", "Threonine", "Tryptophan", "Valine",
		),
	},
	{
		ID:         LipidProfile,
		Name:       "Lipid Profile",
		Slug:       "lipid_profile",
		Scope:      PerFish,
		Selectable: true,
		Params: append(labParams("% total FA",
			"C14:0", "C16:0", "C18:0", "C16:1n-7", "C18:1n-9", "C18:2n-6",
			"C18:3n-3", "C20:4n-6", "C20:5n-3 EPA", "C22:5n-3 DPA", "C22:6n-3 DHA",
		), Param{ID: "n3_n6_ratio", Name: "n-3/n-6 Ratio", Domain: nonNegative, Decimals: -1}),
	},
}

func labParams(unit string, names ...string) []Param {
	out := make([]Param, 0, len(names))
	for _, name := range names {
		out = append(out, Param{ID: Key(name), Name: name, Unit: unit, Domain: nonNegative, Decimals: -1})
	}
	return out
}

// Categories returns every category in display order
func Categories() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the catalog entry for id
func Lookup(id ID) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Params returns the ordered parameter list of a category
func Params(id ID) ([]Param, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", id)
	}
	out := make([]Param, len(e.Params))
	copy(out, e.Params)
	return out, nil
}

// ParseID resolves a category from its id, slug or display name (case-insensitive)
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for _, e := range entries {
		if strings.EqualFold(s, string(e.ID)) || strings.EqualFold(s, e.Slug) || strings.EqualFold(s, e.Name) {
			return e.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Key normalizes a display name into a lookup key: lower-cased, spaces become underscores
func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
