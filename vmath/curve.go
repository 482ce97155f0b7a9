package vmath

import (
	"math"

	"github.com/lixenwraith/iaus/parameter"
)

// CurveType selects a response curve family
type CurveType uint8

const (
	CurveLinear CurveType = iota
	CurvePolynomial
	CurveLogistic
	CurveLogit
	CurveParabolic
)

var curveTypeNames = [...]string{"linear", "polynomial", "logistic", "logit", "parabolic"}

// String returns the lowercase family name
func (c CurveType) String() string {
	if int(c) < len(curveTypeNames) {
		return curveTypeNames[c]
	}
	return "unknown"
}

// ParseCurveType resolves a family name, false if unknown
func ParseCurveType(name string) (CurveType, bool) {
	for i, n := range curveTypeNames {
		if n == name {
			return CurveType(i), true
		}
	}
	return 0, false
}

// CurveParams shapes a curve: slope M, exponent or amplitude K, x-shift C, y-shift B
type CurveParams struct {
	M float64
	K float64
	C float64
	B float64
}

// Curve presets
var (
	LinearStandard   = CurveParams{M: 1, K: 1, C: 0, B: 0}
	LinearHalf       = CurveParams{M: 0.5, K: 1, C: 0, B: 0.5}
	LinearInverse    = CurveParams{M: -1, K: 1, C: 0, B: 1}
	CriticalDetector = CurveParams{M: -15, K: 1, C: 0.3, B: 0}
	Threshold50      = CurveParams{M: 20, K: 1, C: 0.5, B: 0}
	Threshold25      = CurveParams{M: 20, K: 1, C: 0.25, B: 0}
	EarlyWeight      = CurveParams{M: 1, K: 0.5, C: 0, B: 0}
	LateWeight       = CurveParams{M: 1, K: 2, C: 0, B: 0}
)

var presets = map[string]CurveParams{
	"linear_standard":   LinearStandard,
	"linear_half":       LinearHalf,
	"linear_inverse":    LinearInverse,
	"critical_detector": CriticalDetector,
	"threshold_50":      Threshold50,
	"threshold_25":      Threshold25,
	"early_weight":      EarlyWeight,
	"late_weight":       LateWeight,
}

// PresetByName returns a named preset, false if unknown
func PresetByName(name string) (CurveParams, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the preset names in no particular order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	return names
}

// Clamp01 clamps to [0,1]; NaN and infinities collapse to 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalize maps value from [min,max] into [0,1], clamped
// A degenerate range yields 0; an inverted range inverts the mapping
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return Clamp01((value - min) / (max - min))
}

// Linear returns m*x + b
func Linear(x, m, b float64) float64 {
	return Clamp01(m*x + b)
}

// Polynomial returns (m*(x-c))^k + b; fractional k on a negative base yields 0
func Polynomial(x, m, c, k, b float64) float64 {
	return Clamp01(math.Pow(m*(x-c), k) + b)
}

// Logistic returns k / (1 + e^(-m*(x-c))) + b
func Logistic(x, m, c, k, b float64) float64 {
	return Clamp01(k/(1+math.Exp(-m*(x-c))) + b)
}

// Logit returns ln(x/(1-x)) rescaled by (raw+5)/10
// The rescale is a fixed approximation of the log-odds range, not an inverse of Logistic
func Logit(x float64) float64 {
	eps := parameter.LogitEpsilon
	x = math.Max(eps, math.Min(1-eps, x))
	raw := math.Log(x / (1 - x))
	return Clamp01((raw + parameter.LogitRescaleOffset) / parameter.LogitRescaleSpan)
}

// Parabolic returns 4x(1-x), peaking at 0.5
func Parabolic(x float64) float64 {
	return Clamp01(4 * x * (1 - x))
}

// EvaluateCurve dispatches to a curve family; unknown types score 0
func EvaluateCurve(x float64, t CurveType, p CurveParams) float64 {
	switch t {
	case CurveLinear:
		return Linear(x, p.M, p.B)
	case CurvePolynomial:
		return Polynomial(x, p.M, p.C, p.K, p.B)
	case CurveLogistic:
		return Logistic(x, p.M, p.C, p.K, p.B)
	case CurveLogit:
		return Logit(x)
	case CurveParabolic:
		return Parabolic(x)
	default:
		return 0
	}
}
