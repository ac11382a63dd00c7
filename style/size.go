package style

import "math"

// SizeKind selects how Position resolves the drawn dimensions.
type SizeKind int

const (
	SizeScale  SizeKind = iota // multiply (Zoom >= 1) or shrink (Zoom <= -1, by 1/-Zoom)
	SizeWidth                  // explicit width, height derived
	SizeHeight                 // explicit height, width derived
	SizeExact                  // both explicit
)

// Size determines the resolved pixel dimensions of a positioned image.
type Size struct {
	Kind SizeKind
	Zoom int
	W, H int
}

// saturate32 clamps v into the 32-bit dimension range.
func saturate32(v int64) int {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// Resolve yields the concrete dimensions for a srcW×srcH source image.
// Zoomed sizes saturate at the 32-bit maximum with the larger dimension
// pinned there and the other scaled by the same ratio, preserving aspect.
func (s Size) Resolve(srcW, srcH int) (int, int) {
	switch s.Kind {
	case SizeScale:
		z := int64(s.Zoom)
		switch {
		case z > 1:
			if srcW > srcH {
				if int64(srcW)*z > math.MaxInt32 {
					return math.MaxInt32, saturate32(math.MaxInt32 * int64(srcH) / int64(srcW))
				}
			} else if srcH > 0 {
				if int64(srcH)*z > math.MaxInt32 {
					return saturate32(math.MaxInt32 * int64(srcW) / int64(srcH)), math.MaxInt32
				}
			}
			return saturate32(int64(srcW) * z), saturate32(int64(srcH) * z)
		case z < 0:
			return srcW / int(-z), srcH / int(-z)
		default:
			return srcW, srcH
		}
	case SizeWidth:
		if srcW == 0 {
			return s.W, 0
		}
		return s.W, saturate32(int64(s.W) * int64(srcH) / int64(srcW))
	case SizeHeight:
		if srcH == 0 {
			return 0, s.H
		}
		return saturate32(int64(s.H) * int64(srcW) / int64(srcH)), s.H
	default:
		return s.W, s.H
	}
}
