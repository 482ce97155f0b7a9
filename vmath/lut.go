package vmath

import (
	"math"

	"github.com/lixenwraith/iaus/parameter"
)

// CurveLUT holds evenly spaced samples of a curve over [0,1]
// Sample i is taken at i/(len-1); lookup error is bounded by the sample spacing
type CurveLUT []float64

// GenerateLUT samples a curve at the given resolution; resolution below 2 is raised to 2
func GenerateLUT(t CurveType, p CurveParams, resolution int) CurveLUT {
	if resolution < 2 {
		resolution = 2
	}
	lut := make(CurveLUT, resolution)
	last := float64(resolution - 1)
	for i := range lut {
		lut[i] = EvaluateCurve(float64(i)/last, t, p)
	}
	return lut
}

// DefaultLUT samples a curve at parameter.CurveLUTResolution
func DefaultLUT(t CurveType, p CurveParams) CurveLUT {
	return GenerateLUT(t, p, parameter.CurveLUTResolution)
}

// Lookup returns the nearest sample for x; x is clamped to [0,1] and NaN reads sample 0
func (l CurveLUT) Lookup(x float64) float64 {
	if len(l) == 0 {
		return 0
	}
	idx := int(math.Round(Clamp01(x) * float64(len(l)-1)))
	if idx < 0 {
		idx = 0
	} else if idx >= len(l) {
		idx = len(l) - 1
	}
	return l[idx]
}
