package aci

import "math"

// ACI 318-19 and ACI 421.1R constants for two-way (punching) shear

const (
	// DefaultPatchSize is the target fiber length used when discretizing
	// the critical shear perimeter. Smaller values increase accuracy of
	// the numerical integration at the cost of fiber count.
	DefaultPatchSize = 0.5

	// CriticalSectionOffsetRatio locates the critical shear perimeter at
	// d/2 from each column face (Section 22.6.4.1)
	CriticalSectionOffsetRatio = 0.5

	// OpeningProximityFactor - openings farther than 4d from the critical
	// perimeter need not be considered (Section 22.6.4.3)
	OpeningProximityFactor = 4.0

	// SlabExtentFactor controls how far the slab edge is drawn beyond the
	// column for preview purposes. Display only, no effect on results.
	SlabExtentFactor = 4.0
)

// GammaF returns the fraction of unbalanced moment transferred by flexure
// per Section 8.4.2.2.2:
//
//	γf = 1 / (1 + (2/3)·√(b1/b2))
//
// b1 is the critical section dimension in the direction of the span for
// which moments are determined, b2 the dimension perpendicular to b1.
func GammaF(b1, b2 float64) float64 {
	return 1.0 / (1.0 + (2.0/3.0)*math.Sqrt(b1/b2))
}

// GammaV returns the fraction of unbalanced moment transferred by shear
// eccentricity, γv = 1 - γf (Section 8.4.4.2.2).
func GammaV(b1, b2 float64) float64 {
	return 1.0 - GammaF(b1, b2)
}
