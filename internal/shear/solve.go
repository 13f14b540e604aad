package shear

import (
	"fmt"
	"math"

	"github.com/wcfrobert/wthisj/internal/aci"
)

// Solve computes the elastic punching shear stress at every active
// perimeter fiber for the given load case:
//
//	v = P/A + γvx·Msc,x·y/Ix + γvy·Msc,y·x/Iy
//
// The superposition is only valid in the principal orientation
// (Ixy ≈ 0). With AutoRotate the geometry is rotated there first; without
// it a non-principal geometry still solves but the result carries a
// warning and an unbalanced equilibrium check.
func (s *Section) Solve(lc LoadCase) (*Result, error) {
	props, err := s.Properties()
	if err != nil {
		return nil, err
	}

	if lc.AutoRotate && !props.IsPrincipal() {
		// rotate to the principal orientation and re-run the property
		// sums once. Rotation is applied to the geometry, not the load
		// vector, so extreme distances and bo stay consistent.
		s.Rotate(props.ThetaP)
		props, err = s.Properties()
		if err != nil {
			return nil, err
		}
	}

	res := &Result{Properties: props}
	if !props.IsPrincipal() {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"geometry is not in principal orientation (θp = %.2f°); stress superposition is not equilibrated, rotate the geometry or enable auto-rotate", props.ThetaP))
	}

	if props.Area == 0 {
		return nil, computationErrorf("perimeter area is zero")
	}
	if props.Ix == 0 || props.Iy == 0 {
		return nil, computationErrorf("degenerate perimeter: Ix = %g, Iy = %g", props.Ix, props.Iy)
	}

	// moment transfer ratios from the perimeter bounding dimensions. For
	// moment about an axis, b1 is the bounding dimension in the span
	// direction (perpendicular to that axis), b2 the other.
	bx := props.Cx1 - props.Cx2
	by := props.Cy1 - props.Cy2
	res.GammaVx = resolveGamma(lc.GammaVx, by, bx)
	res.GammaVy = resolveGamma(lc.GammaVy, bx, by)

	// eccentricity correction: transfer the applied moments from the
	// column centroid (origin) to the shear perimeter centroid. The sign
	// asymmetry between the axes follows the right-hand rule: a downward
	// P at positive ey adds negative moment about x, while the same P at
	// positive ex adds positive moment about y.
	res.MscX, res.MscY = lc.Mx, lc.My
	if lc.ConsiderPe {
		res.Ex, res.Ey = props.Xc, props.Yc
		res.MscX = lc.Mx - lc.P*res.Ey
		res.MscY = lc.My + lc.P*res.Ex
	}

	vAxial := lc.P / props.Area
	res.VMin, res.VMax = math.Inf(1), math.Inf(-1)

	s.ensureFibers()
	var sumFz, sumMx, sumMy float64
	for i := range s.fibers {
		f := &s.fibers[i]
		if !f.Active {
			continue
		}
		x := f.Midpoint.X() - props.Xc
		y := f.Midpoint.Y() - props.Yc

		row := ResultRow{
			X:      x,
			Y:      y,
			Area:   f.Area,
			VAxial: vAxial,
			VMx:    res.GammaVx * res.MscX * y / props.Ix,
			VMy:    res.GammaVy * res.MscY * x / props.Iy,
		}
		row.VTotal = row.VAxial + row.VMx + row.VMy
		res.Rows = append(res.Rows, row)

		sumFz += row.VTotal * f.Area
		sumMx += row.VTotal * f.Area * y
		sumMy += row.VTotal * f.Area * x
		res.VMin = math.Min(res.VMin, row.VTotal)
		res.VMax = math.Max(res.VMax, row.VTotal)
	}

	res.Equilibrium = checkEquilibrium(sumFz, sumMx, sumMy, lc.P, res, s.cfg.PatchSize)
	res.Warnings = append(res.Warnings, s.warnings...)
	s.lastResult = res
	return res, nil
}

// resolveGamma turns the tagged γv parameter into a scalar, computing
// the ACI transfer ratio from the bounding dimensions when auto.
func resolveGamma(g Gamma, b1, b2 float64) float64 {
	if g.IsAuto() {
		return aci.GammaV(b1, b2)
	}
	return g.value
}

// checkEquilibrium integrates the stress field back into resultants and
// compares them against the applied loads. The moment targets are the
// shear-transferred fractions γv·Msc; in the principal orientation the
// sums recover them to float precision, so the tolerance mostly guards
// the caller against solving a non-principal geometry.
func checkEquilibrium(sumFz, sumMx, sumMy, p float64, res *Result, patchSize float64) EquilibriumCheck {
	eq := EquilibriumCheck{
		SumFz:    sumFz,
		TargetFz: p,
		SumMx:    sumMx,
		TargetMx: res.GammaVx * res.MscX,
		SumMy:    sumMy,
		TargetMy: res.GammaVy * res.MscY,
	}
	eq.ResidualFz = eq.SumFz - eq.TargetFz
	eq.ResidualMx = eq.SumMx - eq.TargetMx
	eq.ResidualMy = eq.SumMy - eq.TargetMy

	scale := math.Max(1, math.Max(math.Abs(p), math.Max(math.Abs(eq.TargetMx), math.Abs(eq.TargetMy))))
	eq.Tolerance = 1e-3 * patchSize * scale
	eq.Balanced = math.Abs(eq.ResidualFz) <= eq.Tolerance &&
		math.Abs(eq.ResidualMx) <= eq.Tolerance &&
		math.Abs(eq.ResidualMy) <= eq.Tolerance
	return eq
}
