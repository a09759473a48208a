package catalog

import (
	"testing"
	"testing/fstest"
)

func TestCategoriesParameterCounts(t *testing.T) {
	tests := []struct {
		id   ID
		want int
	}{
		{WelfareIndicators, 12},
		{ProductionData, 3},
		{WaterQuality, 4},
		{LiceCount, 5},
		{AminoAcidProfile, 10},
		{LipidProfile, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			params, err := Params(tt.id)
			if err != nil {
				t.Fatalf("Params(%s) returned error: %v", tt.id, err)
			}
			if len(params) != tt.want {
				t.Errorf("Params(%s) has %d parameters, want %d", tt.id, len(params), tt.want)
			}
		})
	}
}

func TestParamsUnknownCategory(t *testing.T) {
	if _, err := Params("feed_intake"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestParamColumn(t *testing.T) {
	e, _ := Lookup(ProductionData)
	weight, _ := e.Param(ParamWeight)
	if got := weight.Column(); got != "Weight (g)" {
		t.Errorf("Column() = %q, want %q", got, "Weight (g)")
	}
	cf, _ := e.Param(ParamConditionFactor)
	if got := cf.Column(); got != "Condition Factor" {
		t.Errorf("Column() = %q, want %q", got, "Condition Factor")
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fin Condition", "fin_condition"},
		{"  Spinal Deformity ", "spinal_deformity"},
		{"Cataracts", "cataracts"},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	e, _ := Lookup(AminoAcidProfile)

	all, err := e.Select(nil)
	if err != nil || len(all) != 10 {
		t.Fatalf("Select(nil) = %d params, err %v; want 10", len(all), err)
	}

	none, err := e.Select([]string{})
	if err != nil || len(none) != 0 {
		t.Fatalf("Select([]) = %d params, err %v; want 0", len(none), err)
	}

	// catalog order wins over selection order
	some, err := e.Select([]string{"valine", "lysine", "lysine"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(some) != 2 || some[0].ID != "lysine" || some[1].ID != "valine" {
		t.Errorf("Select order = %v, want [lysine valine]", some)
	}

	if _, err := e.Select([]string{"glycine"}); err == nil {
		t.Error("Expected error for unknown parameter")
	}
}

func TestParseID(t *testing.T) {
	for _, in := range []string{"lice_count", "Lice Count", "LICE_COUNT"} {
		id, err := ParseID(in)
		if err != nil || id != LiceCount {
			t.Errorf("ParseID(%q) = %q, %v; want %q", in, id, err, LiceCount)
		}
	}
	if id, err := ParseID("welfare"); err != nil || id != WelfareIndicators {
		t.Errorf("ParseID(welfare) = %q, %v", id, err)
	}
	if _, err := ParseID("analytics"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestDomainParse(t *testing.T) {
	tests := []struct {
		name    string
		domain  Domain
		raw     string
		want    any
		wantErr bool
	}{
		{"scale in range", welfareScale, "2", 2, false},
		{"scale blank is zero", welfareScale, "", 0, false},
		{"scale above max", welfareScale, "4", nil, true},
		{"scale negative", welfareScale, "-1", nil, true},
		{"scale not integer", welfareScale, "1.5", nil, true},
		{"count", count, " 12 ", 12, false},
		{"count negative", count, "-3", nil, true},
		{"real", nonNegative, "4.25", 4.25, false},
		{"real blank is zero", nonNegative, "", 0.0, false},
		{"temperature low bound", realFrom(-2), "-2", -2.0, false},
		{"temperature below bound", realFrom(-2), "-2.5", nil, true},
		{"ph above 14", realRange(0, 14), "14.1", nil, true},
		{"real garbage", nonNegative, "abc", nil, true},
		{"real NaN", nonNegative, "NaN", nil, true},
		{"text", freeText, " fish1.jpg ", "fish1.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.domain.Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) = %v, expected error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGuidelinesLookup(t *testing.T) {
	fsys := fstest.MapFS{
		"fin_condition.png":  {Data: []byte("png")},
		"eye_damage.jpeg":    {Data: []byte("jpeg")},
		"scale_loss.png/x":   {Data: []byte("nested")},
		"unrelated_file.txt": {Data: []byte("txt")},
	}
	g := NewGuidelines(fsys)

	if p, ok := g.Lookup("Fin Condition"); !ok || p != "fin_condition.png" {
		t.Errorf("Lookup(Fin Condition) = %q, %v", p, ok)
	}
	if p, ok := g.Lookup("eye_damage"); !ok || p != "eye_damage.jpeg" {
		t.Errorf("Lookup(eye_damage) = %q, %v", p, ok)
	}
	if _, ok := g.Lookup("Scale Loss"); ok {
		t.Error("Directory must not be reported as an image")
	}

	missing := g.Missing(IndicatorNames)
	if len(missing) != len(IndicatorNames)-2 {
		t.Errorf("Missing() reported %d indicators, want %d", len(missing), len(IndicatorNames)-2)
	}
}

func TestGuidelinesNilFS(t *testing.T) {
	var g *Guidelines
	if _, ok := g.Lookup("Fin Condition"); ok {
		t.Error("nil lookup should find nothing")
	}
	if _, ok := GuidelinesDir("").Lookup("Fin Condition"); ok {
		t.Error("empty dir lookup should find nothing")
	}
}
