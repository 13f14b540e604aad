package shear

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Condition identifies where the column sits relative to the slab edges.
// Compass tags name the free edge(s), e.g. "SE" is a corner column with
// slab edges below and to the right.
//
//	"NW"   "N"   "NE"
//	 "W"   "I"   "E"
//	"SW"   "S"   "SE"
type Condition string

const (
	Interior  Condition = "I"
	North     Condition = "N"
	South     Condition = "S"
	East      Condition = "E"
	West      Condition = "W"
	NorthEast Condition = "NE"
	NorthWest Condition = "NW"
	SouthEast Condition = "SE"
	SouthWest Condition = "SW"
)

// Valid reports whether c is one of the nine supported condition tags.
func (c Condition) Valid() bool {
	switch c {
	case Interior, North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest:
		return true
	}
	return false
}

// Segment is one straight piece of the critical shear perimeter.
type Segment struct {
	Start mgl64.Vec2 `json:"start"`
	End   mgl64.Vec2 `json:"end"`
	Depth float64    `json:"depth"`
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Len()
}

// Fiber is a short discretized patch of a perimeter segment. Fibers are
// the unit of numerical integration: every downstream quantity is a sum
// over the active fiber set. Deactivated fibers (removed by an opening)
// are kept so their segment provenance survives for diagnostics.
type Fiber struct {
	Midpoint mgl64.Vec2
	Start    mgl64.Vec2
	End      mgl64.Vec2
	Length   float64
	Depth    float64
	Area     float64 // Length * Depth
	Theta    float64 // polar angle about the column center, (-pi, pi]
	Segment  int     // index of the owning segment
	Active   bool
}

// Opening is a rectangular slab opening near the column. It deactivates
// the portion of the perimeter falling inside its angular extent as seen
// from the column center. Corners are tracked explicitly so openings
// rotate rigidly with the rest of the geometry.
type Opening struct {
	Corners [4]mgl64.Vec2
	Ignored bool // true when beyond the 4d proximity limit; has no effect on the perimeter
}

// SectionProperties holds the composite geometric properties of the
// active fiber set. Ix, Iy and Ixy are centroidal and use the planar
// moment formulation (sum of y²dA etc.); Iz = Ix + Iy is reported for
// reference only and never enters the stress superposition.
type SectionProperties struct {
	Bo   float64 // total active perimeter length
	Le   float64 // perimeter length normalized by minimum depth
	Area float64 // total active fiber area

	Xc float64 // centroid x (column center is the origin)
	Yc float64 // centroid y

	Ix  float64
	Iy  float64
	Ixy float64
	Iz  float64

	// ThetaP is the rotation (degrees) to apply to the geometry to
	// reach the nearest principal orientation, folded into (-45, 45]
	ThetaP float64

	// Extreme fiber distances from the centroid: Cx1/Cy1 are the max
	// (positive) recentred coordinates, Cx2/Cy2 the min (negative).
	Cx1, Cx2 float64
	Cy1, Cy2 float64

	// Elastic section moduli at the extreme fibers
	Sx1, Sx2 float64
	Sy1, Sy2 float64

	FiberCount       int
	ActiveFiberCount int
}

// PrincipalOrientationTol is the |θp| threshold in degrees below which a
// geometry is treated as already principal.
const PrincipalOrientationTol = 0.1

// IsPrincipal reports whether the geometry is close enough to its
// principal orientation for the biaxial stress superposition to be valid.
func (p SectionProperties) IsPrincipal() bool {
	return abs(p.ThetaP) < PrincipalOrientationTol
}

// Gamma is the moment transfer ratio γv: either resolved automatically
// from the perimeter's bounding dimensions at solve time, or a fixed
// caller-supplied value. The zero value is Auto.
type Gamma struct {
	fixed bool
	value float64
}

// AutoGamma returns a γv resolved from geometry at the start of a solve.
func AutoGamma() Gamma { return Gamma{} }

// FixedGamma returns a caller-supplied γv used verbatim.
func FixedGamma(v float64) Gamma { return Gamma{fixed: true, value: v} }

// IsAuto reports whether the ratio will be resolved from geometry.
func (g Gamma) IsAuto() bool { return !g.fixed }

// UnmarshalJSON accepts either the string "auto" or a plain number.
func (g *Gamma) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "auto" {
			*g = AutoGamma()
			return nil
		}
		return fmt.Errorf("invalid gamma %q: must be \"auto\" or a number", s)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid gamma: %w", err)
	}
	*g = FixedGamma(v)
	return nil
}

// MarshalJSON emits "auto" or the fixed numeric value.
func (g Gamma) MarshalJSON() ([]byte, error) {
	if g.IsAuto() {
		return json.Marshal("auto")
	}
	return json.Marshal(g.value)
}

// LoadCase is the transient input to one Solve call.
type LoadCase struct {
	P  float64 `json:"p"`  // axial shear force (negative = downward gravity load)
	Mx float64 `json:"mx"` // unbalanced moment about the x-axis
	My float64 `json:"my"` // unbalanced moment about the y-axis

	GammaVx Gamma `json:"gamma_vx"`
	GammaVy Gamma `json:"gamma_vy"`

	// ConsiderPe adds the moment from the eccentricity between the column
	// centroid and the shear-perimeter centroid.
	ConsiderPe bool `json:"consider_pe"`

	// AutoRotate rotates the geometry to its principal orientation before
	// solving when Ixy is non-negligible.
	AutoRotate bool `json:"auto_rotate"`
}

// ResultRow is the solved stress state of one active fiber. Coordinates
// are recentred on the perimeter centroid.
type ResultRow struct {
	X      float64
	Y      float64
	Area   float64
	VAxial float64 // P/A
	VMx    float64 // γvx·Msc,x·y/Ix
	VMy    float64 // γvy·Msc,y·x/Iy
	VTotal float64
}

// EquilibriumCheck compares the integrated stress field against the
// applied loads. The moment targets carry the γv factor because only the
// shear-transferred fraction of the unbalanced moment enters the stress
// field. A large residual indicates a non-principal orientation.
type EquilibriumCheck struct {
	SumFz      float64
	TargetFz   float64
	ResidualFz float64

	SumMx      float64
	TargetMx   float64
	ResidualMx float64

	SumMy      float64
	TargetMy   float64
	ResidualMy float64

	Tolerance float64
	Balanced  bool
}

// Result is the output of one Solve call. It is owned by the caller; the
// section retains only the most recent result as a cache.
type Result struct {
	Rows       []ResultRow
	Properties SectionProperties

	GammaVx float64
	GammaVy float64

	// Governing moments after the optional Pe adjustment
	MscX float64
	MscY float64

	// Centroid eccentricity used for the Pe adjustment
	Ex, Ey float64

	// Stress extremes, scaling hints for contour rendering
	VMin, VMax float64

	Equilibrium EquilibriumCheck
	Warnings    []string
}

// ConfigError indicates invalid input caught at construction or mutation
// time. The engine never silently defaults around one.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// ComputationError indicates a degenerate fiber set at solve time, e.g.
// zero area or zero moment of inertia. No partial result accompanies it.
type ComputationError struct {
	msg string
}

func (e *ComputationError) Error() string { return e.msg }

func computationErrorf(format string, args ...any) *ComputationError {
	return &ComputationError{msg: fmt.Sprintf(format, args...)}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
