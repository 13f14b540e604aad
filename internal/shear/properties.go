package shear

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Properties returns the section properties of the active fiber set,
// computing and caching them if the geometry changed since the last call.
// A perimeter with no active fibers is a configuration error.
func (s *Section) Properties() (SectionProperties, error) {
	if s.props != nil {
		return *s.props, nil
	}
	s.ensureFibers()
	props, err := computeProperties(s.fibers)
	if err != nil {
		return SectionProperties{}, err
	}
	s.props = &props
	return props, nil
}

// computeProperties sums the active fibers into the composite section
// properties. Coordinates are recentred on the fiber-set centroid before
// the inertia sums; the fibers themselves are not mutated.
func computeProperties(fibers []Fiber) (SectionProperties, error) {
	var p SectionProperties
	p.FiberCount = len(fibers)

	var sumXA, sumYA float64
	dMin := math.Inf(1)
	for i := range fibers {
		f := &fibers[i]
		if !f.Active {
			continue
		}
		p.ActiveFiberCount++
		p.Bo += f.Length
		p.Area += f.Area
		sumXA += f.Midpoint.X() * f.Area
		sumYA += f.Midpoint.Y() * f.Area
		if f.Depth < dMin {
			dMin = f.Depth
		}
	}
	if p.ActiveFiberCount == 0 || p.Area == 0 {
		return p, configErrorf("perimeter has no active fibers")
	}

	p.Xc = sumXA / p.Area
	p.Yc = sumYA / p.Area

	p.Cx1, p.Cx2 = math.Inf(-1), math.Inf(1)
	p.Cy1, p.Cy2 = math.Inf(-1), math.Inf(1)
	for i := range fibers {
		f := &fibers[i]
		if !f.Active {
			continue
		}
		x := f.Midpoint.X() - p.Xc
		y := f.Midpoint.Y() - p.Yc
		p.Ix += y * y * f.Area
		p.Iy += x * x * f.Area
		p.Ixy += x * y * f.Area
		p.Le += f.Depth / dMin * f.Length

		// endpoints govern the extreme distances
		for _, pt := range [2][2]float64{
			{f.Start.X() - p.Xc, f.Start.Y() - p.Yc},
			{f.End.X() - p.Xc, f.End.Y() - p.Yc},
		} {
			p.Cx1 = math.Max(p.Cx1, pt[0])
			p.Cx2 = math.Min(p.Cx2, pt[0])
			p.Cy1 = math.Max(p.Cy1, pt[1])
			p.Cy2 = math.Min(p.Cy2, pt[1])
		}
	}
	p.Iz = p.Ix + p.Iy
	p.ThetaP = principalAngle(p.Ix, p.Iy, p.Ixy)

	if p.Ix > 0 {
		if p.Cy1 != 0 {
			p.Sx1 = p.Ix / math.Abs(p.Cy1)
		}
		if p.Cy2 != 0 {
			p.Sx2 = p.Ix / math.Abs(p.Cy2)
		}
	}
	if p.Iy > 0 {
		if p.Cx1 != 0 {
			p.Sy1 = p.Iy / math.Abs(p.Cx1)
		}
		if p.Cx2 != 0 {
			p.Sy2 = p.Iy / math.Abs(p.Cx2)
		}
	}
	return p, nil
}

// principalAngle returns the rotation (degrees) from the current axes to
// the nearest principal orientation, folded into (-45, 45]. A product of
// inertia that is zero to within float noise means the axes are already
// principal regardless of how Ix and Iy compare.
func principalAngle(ix, iy, ixy float64) float64 {
	iz := ix + iy
	if iz <= 0 || math.Abs(ixy) < 1e-9*iz {
		return 0
	}
	theta := mgl64.RadToDeg(0.5 * math.Atan2(2*ixy, ix-iy))
	for theta > 45 {
		theta -= 90
	}
	for theta <= -45 {
		theta += 90
	}
	return theta
}
