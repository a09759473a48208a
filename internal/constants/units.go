package constants

// LengthUnit is the unit a length measurement is entered in
type LengthUnit string

// WeightUnit is the unit a weight measurement is entered in
type WeightUnit string

const (
	LengthCM   LengthUnit = "cm"
	LengthInch LengthUnit = "inch"

	WeightGram     WeightUnit = "g"
	WeightKilogram WeightUnit = "kg"

	// Conversion factors into the canonical units (cm, g)
	CMPerInch     = 2.54
	GramsPerKilo  = 1000.0
	ConditionBase = 100.0
)
