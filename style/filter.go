package style

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used when the compositor resizes.
type Filter int

const (
	Nearest Filter = iota
	Triangle
	CatmullRom
	Gaussian
	Lanczos3
)

// ParseFilter reads a --filter value.
func ParseFilter(value string) (Filter, error) {
	switch {
	case strings.EqualFold(value, "nearest"):
		return Nearest, nil
	case strings.EqualFold(value, "triangle"):
		return Triangle, nil
	case strings.EqualFold(value, "catmull-rom"), strings.EqualFold(value, "catmullrom"):
		return CatmullRom, nil
	case strings.EqualFold(value, "gaussian"):
		return Gaussian, nil
	case strings.EqualFold(value, "lanczos3"):
		return Lanczos3, nil
	}
	return 0, fmt.Errorf("illegal filter type %q", value)
}

func (f Filter) String() string {
	switch f {
	case Triangle:
		return "triangle"
	case CatmullRom:
		return "catmull-rom"
	case Gaussian:
		return "gaussian"
	case Lanczos3:
		return "lanczos3"
	default:
		return "nearest"
	}
}

// gaussianKernel is a σ=1 gaussian truncated at 3σ.
var gaussianKernel = &draw.Kernel{Support: 3.0, At: func(t float64) float64 {
	return math.Exp(-t*t/2) / math.Sqrt(2*math.Pi)
}}

// lanczos3Kernel is the 3-lobed sinc-windowed sinc.
var lanczos3Kernel = &draw.Kernel{Support: 3.0, At: func(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}}

// Scaler returns the x/image/draw scaler implementing the filter.
func (f Filter) Scaler() draw.Scaler {
	switch f {
	case Triangle:
		return draw.BiLinear
	case CatmullRom:
		return draw.CatmullRom
	case Gaussian:
		return gaussianKernel
	case Lanczos3:
		return lanczos3Kernel
	default:
		return draw.NearestNeighbor
	}
}
