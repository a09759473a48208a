package condition

import (
	"math"
	"testing"

	"github.com/shreeramghimire/salmonometer/internal/constants"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		length float64
		want   float64
	}{
		{"zero inputs", 0, 0, 0},
		{"zero length", 1000, 0, 0},
		{"negative length", 1000, -5, 0},
		{"NaN length", 1000, math.NaN(), 0},
		{"NaN weight", math.NaN(), 20, 0},
		{"reference fish", 2000, 20, 25.0},
		{"rounded to two decimals", 1234, 45.5, 1.31},
		{"zero weight", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Factor(tt.weight, tt.length)
			if got != tt.want {
				t.Errorf("Factor(%v, %v) = %v, want %v", tt.weight, tt.length, got, tt.want)
			}
		})
	}
}

func TestFactorInKilograms(t *testing.T) {
	kg := FactorIn(2, constants.WeightKilogram, 20, constants.LengthCM)
	g := FactorIn(2000, constants.WeightGram, 20, constants.LengthCM)
	if kg != g {
		t.Errorf("kg result %v != g result %v", kg, g)
	}
}

func TestFactorInInches(t *testing.T) {
	inch := FactorIn(2000, constants.WeightGram, 7.874, constants.LengthInch)
	cm := Factor(2000, 20)
	if math.Abs(inch-cm) > 0.01 {
		t.Errorf("inch result %v not within rounding tolerance of cm result %v", inch, cm)
	}
}

func TestUnitConversion(t *testing.T) {
	if got := ToCentimeters(10, constants.LengthInch); math.Abs(got-25.4) > 1e-9 {
		t.Errorf("ToCentimeters(10 inch) = %v, want 25.4", got)
	}
	if got := ToCentimeters(10, constants.LengthCM); got != 10 {
		t.Errorf("ToCentimeters(10 cm) = %v, want 10", got)
	}
	if got := ToGrams(1.5, constants.WeightKilogram); got != 1500 {
		t.Errorf("ToGrams(1.5 kg) = %v, want 1500", got)
	}
	if got := ToGrams(1.5, ""); got != 1.5 {
		t.Errorf("ToGrams with unknown unit = %v, want 1.5", got)
	}
}

func TestConversionDropsBinaryNoise(t *testing.T) {
	lengths := []struct {
		inch float64
		want float64
	}{
		{7.874, 19.99996},
		{1.1, 2.794},
		{10.2, 25.908},
	}
	for _, tt := range lengths {
		if got := ToCentimeters(tt.inch, constants.LengthInch); got != tt.want {
			t.Errorf("ToCentimeters(%v inch) = %v, want %v", tt.inch, got, tt.want)
		}
	}

	if got := ToGrams(1.1, constants.WeightKilogram); got != 1100 {
		t.Errorf("ToGrams(1.1 kg) = %v, want 1100", got)
	}
	if got := ToGrams(2.3, constants.WeightKilogram); got != 2300 {
		t.Errorf("ToGrams(2.3 kg) = %v, want 2300", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{1.005, 2, 1},
		{1.235, 1, 1.2},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{19.999959999999998, 6, 19.99996},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.decimals); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
	}
	if got := Round(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %v", got)
	}
}
