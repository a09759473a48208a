// Package condition computes the condition factor of a fish from its length and weight.
package condition

import (
	"math"

	"github.com/shreeramghimire/salmonometer/internal/constants"
)

// Factor returns 100 * weight / length^3 rounded to two decimals.
// It is total: a non-positive or non-finite length, or a non-finite weight, yields 0.
func Factor(weightGrams, lengthCM float64) float64 {
	if !(lengthCM > 0) || math.IsInf(lengthCM, 0) {
		return 0
	}
	if math.IsNaN(weightGrams) || math.IsInf(weightGrams, 0) {
		return 0
	}
	return Round2(constants.ConditionBase * weightGrams / math.Pow(lengthCM, 3))
}

// FactorIn normalizes the inputs to grams and centimetres before applying Factor
func FactorIn(weight float64, wu constants.WeightUnit, length float64, lu constants.LengthUnit) float64 {
	return Factor(ToGrams(weight, wu), ToCentimeters(length, lu))
}

// ToCentimeters converts a length to cm. Unknown units are treated as cm.
// Converted values are rounded to NormalizedDecimals.
func ToCentimeters(v float64, u constants.LengthUnit) float64 {
	if u == constants.LengthInch {
		return Round(v*constants.CMPerInch, NormalizedDecimals)
	}
	return v
}

// ToGrams converts a weight to g. Unknown units are treated as g.
// Converted values are rounded to NormalizedDecimals.
func ToGrams(v float64, u constants.WeightUnit) float64 {
	if u == constants.WeightKilogram {
		return Round(v*constants.GramsPerKilo, NormalizedDecimals)
	}
	return v
}

// NormalizedDecimals drops the binary noise of a unit conversion (7.874 in is 19.99996 cm)
const NormalizedDecimals = 6

// Round rounds half away from zero to the given number of decimals.
// Non-finite values are returned unchanged.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Round2 rounds half away from zero to two decimals
func Round2(v float64) float64 {
	return Round(v, 2)
}
