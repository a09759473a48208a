package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the value domain of a parameter
type Kind int

const (
	KindScale Kind = iota // bounded integer severity scale
	KindCount             // non-negative integer
	KindReal              // real number, optionally bounded
	KindText              // free text
)

func (k Kind) String() string {
	switch k {
	case KindScale:
		return "scale"
	case KindCount:
		return "count"
	case KindReal:
		return "real"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Domain describes the set of values a parameter accepts.
// Max is only enforced when Bounded is true.
type Domain struct {
	Kind    Kind
	Min     float64
	Max     float64
	Bounded bool
}

var (
	welfareScale = Domain{Kind: KindScale, Min: 0, Max: 3, Bounded: true}
	count        = Domain{Kind: KindCount, Min: 0}
	nonNegative  = Domain{Kind: KindReal, Min: 0}
	freeText     = Domain{Kind: KindText}
)

func realRange(min, max float64) Domain {
	return Domain{Kind: KindReal, Min: min, Max: max, Bounded: true}
}

func realFrom(min float64) Domain {
	return Domain{Kind: KindReal, Min: min}
}

// Zero returns the zero value used when an optional field is left empty
func (d Domain) Zero() any {
	switch d.Kind {
	case KindScale, KindCount:
		return 0
	case KindReal:
		return 0.0
	default:
		return ""
	}
}

// Parse converts raw form input into a typed value (int, float64 or string).
// Blank input yields the domain's zero value.
func (d Domain) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if d.Kind == KindText {
		return raw, nil
	}
	if raw == "" {
		return d.Zero(), nil
	}

	switch d.Kind {
	case KindScale, KindCount:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a whole number", raw)
		}
		if err := d.check(float64(n)); err != nil {
			return nil, err
		}
		return n, nil
	case KindReal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		if err := d.check(f); err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unsupported value domain %s", d.Kind)
}

func (d Domain) check(v float64) error {
	if v < d.Min {
		return fmt.Errorf("%s must be at least %s", formatBound(v), formatBound(d.Min))
	}
	if d.Bounded && v > d.Max {
		return fmt.Errorf("%s must be at most %s", formatBound(v), formatBound(d.Max))
	}
	return nil
}

// Describe returns a short human-readable description, e.g. "0-3" or "≥ 0"
func (d Domain) Describe() string {
	switch {
	case d.Kind == KindText:
		return "text"
	case d.Bounded:
		return fmt.Sprintf("%s-%s", formatBound(d.Min), formatBound(d.Max))
	default:
		return fmt.Sprintf("≥ %s", formatBound(d.Min))
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
