package shear

import (
	"math"
	"sort"
)

// angularArc is a counter-clockwise interval of polar angles from start
// to end, both in (-pi, pi]. When start > end the arc wraps through ±pi.
type angularArc struct {
	start float64
	end   float64
}

// deletionArc returns the angular extent of an opening as seen from the
// column center: the smallest arc covering all four corner directions.
// Taking the complement of the largest circular gap between corner
// angles keeps an opening straddling the negative x-axis from inverting
// its interval.
func deletionArc(op Opening) angularArc {
	var thetas [4]float64
	for i, c := range op.Corners {
		thetas[i] = math.Atan2(c.Y(), c.X())
	}
	sort.Float64s(thetas[:])

	// largest gap between consecutive corner directions, including the
	// wrap gap from the last angle back around to the first
	gapStart, gapSize := 0, thetas[0]+2*math.Pi-thetas[3]
	for i := 0; i < 3; i++ {
		if g := thetas[i+1] - thetas[i]; g > gapSize {
			gapStart, gapSize = i+1, g
		}
	}

	// the covering arc runs from the angle after the gap around to the
	// angle before it
	if gapStart == 0 {
		return angularArc{start: thetas[0], end: thetas[3]}
	}
	return angularArc{start: thetas[gapStart], end: thetas[gapStart-1]}
}

// contains reports whether theta lies strictly inside the arc. Fibers
// exactly on an opening boundary ray are kept.
func (a angularArc) contains(theta float64) bool {
	if a.start <= a.end {
		return a.start < theta && theta < a.end
	}
	// wrapped through ±pi
	return theta > a.start || theta < a.end
}
