package shear

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/wcfrobert/wthisj/internal/aci"
)

// freeEdges decomposes a condition tag into per-side free-edge flags.
// An edge is reclassified as supported (interior behavior) when the slab
// overhang beyond it reaches c/2 + d, c being the column dimension
// parallel to that edge (CRSI perimeter-maximization rule). The
// reclassification cascades: a corner column can become an edge column on
// one axis only, or fully interior on both.
func (s *Section) freeEdges() (n, so, e, w bool) {
	n, so, e, w = s.rawFreeEdges()

	d := s.cfg.SlabDepth
	if (n || so) && s.cfg.OverhangY >= s.cfg.Width/2+d {
		n, so = false, false
	}
	if (e || w) && s.cfg.OverhangX >= s.cfg.Height/2+d {
		e, w = false, false
	}
	return n, so, e, w
}

// generatePerimeter emits the critical perimeter segments for the
// configured condition, plus the stud rail centerlines and slab edge
// lines used by preview renderers.
func (s *Section) generatePerimeter() error {
	if s.cfg.StudRailLength > 0 {
		s.generateStudRailPerimeter()
	} else {
		s.generatePlainPerimeter()
	}
	s.generateSlabEdges()

	if len(s.segments) == 0 {
		return configErrorf("condition %q produced an empty perimeter", s.cfg.Condition)
	}
	return nil
}

// generatePlainPerimeter builds the d/2 offset rectangle, omitting faces
// on free slab edges and extending the adjacent faces to the slab edge.
func (s *Section) generatePlainPerimeter() {
	freeN, freeS, freeE, freeW := s.freeEdges()

	b, h := s.cfg.Width/2, s.cfg.Height/2
	half := aci.CriticalSectionOffsetRatio * s.cfg.SlabDepth

	xw, xe := -b-half, b+half
	ys, yn := -h-half, h+half
	if freeW {
		xw = -b - s.cfg.OverhangX
	}
	if freeE {
		xe = b + s.cfg.OverhangX
	}
	if freeS {
		ys = -h - s.cfg.OverhangY
	}
	if freeN {
		yn = h + s.cfg.OverhangY
	}

	if !freeS {
		s.face(mgl64.Vec2{xw, ys}, mgl64.Vec2{xe, ys})
	}
	if !freeE {
		s.face(mgl64.Vec2{xe, ys}, mgl64.Vec2{xe, yn})
	}
	if !freeN {
		s.face(mgl64.Vec2{xe, yn}, mgl64.Vec2{xw, yn})
	}
	if !freeW {
		s.face(mgl64.Vec2{xw, yn}, mgl64.Vec2{xw, ys})
	}
}

// generateStudRailPerimeter builds the extended polygon for perimeters
// with stud rails of length L: rail tips sit L beyond the column face at
// d/2 offset, with 45° chamfers across the column corners. Faces on a
// free slab edge are omitted and the polygon terminates at the slab edge.
// Overhang reclassification does not apply once stud rails are present.
func (s *Section) generateStudRailPerimeter() {
	b, h := s.cfg.Width/2, s.cfg.Height/2
	half := aci.CriticalSectionOffsetRatio * s.cfg.SlabDepth
	L := s.cfg.StudRailLength
	ox, oy := s.cfg.OverhangX, s.cfg.OverhangY

	switch s.cfg.Condition {
	case Interior:
		s.polyline(
			mgl64.Vec2{-b - half, -h - L - half},
			mgl64.Vec2{b + half, -h - L - half},
			mgl64.Vec2{b + L + half, -h - half},
			mgl64.Vec2{b + L + half, h + half},
			mgl64.Vec2{b + half, h + L + half},
			mgl64.Vec2{-b - half, h + L + half},
			mgl64.Vec2{-b - L - half, h + half},
			mgl64.Vec2{-b - L - half, -h - half},
			mgl64.Vec2{-b - half, -h - L - half},
		)
	case North:
		s.polyline(
			mgl64.Vec2{-b - L - half, h + oy},
			mgl64.Vec2{-b - L - half, -h - half},
			mgl64.Vec2{-b - half, -h - L - half},
			mgl64.Vec2{b + half, -h - L - half},
			mgl64.Vec2{b + L + half, -h - half},
			mgl64.Vec2{b + L + half, h + oy},
		)
	case South:
		s.polyline(
			mgl64.Vec2{b + L + half, -h - oy},
			mgl64.Vec2{b + L + half, h + half},
			mgl64.Vec2{b + half, h + L + half},
			mgl64.Vec2{-b - half, h + L + half},
			mgl64.Vec2{-b - L - half, h + half},
			mgl64.Vec2{-b - L - half, -h - oy},
		)
	case West:
		s.polyline(
			mgl64.Vec2{-b - ox, -h - L - half},
			mgl64.Vec2{b + half, -h - L - half},
			mgl64.Vec2{b + L + half, -h - half},
			mgl64.Vec2{b + L + half, h + half},
			mgl64.Vec2{b + half, h + L + half},
			mgl64.Vec2{-b - ox, h + L + half},
		)
	case East:
		s.polyline(
			mgl64.Vec2{b + ox, h + L + half},
			mgl64.Vec2{-b - half, h + L + half},
			mgl64.Vec2{-b - L - half, h + half},
			mgl64.Vec2{-b - L - half, -h - half},
			mgl64.Vec2{-b - half, -h - L - half},
			mgl64.Vec2{b + ox, -h - L - half},
		)
	case NorthWest:
		s.polyline(
			mgl64.Vec2{-b - ox, -h - L - half},
			mgl64.Vec2{b + half, -h - L - half},
			mgl64.Vec2{b + L + half, -h - half},
			mgl64.Vec2{b + L + half, h + oy},
		)
	case NorthEast:
		s.polyline(
			mgl64.Vec2{-b - L - half, h + oy},
			mgl64.Vec2{-b - L - half, -h - half},
			mgl64.Vec2{-b - half, -h - L - half},
			mgl64.Vec2{b + ox, -h - L - half},
		)
	case SouthWest:
		s.polyline(
			mgl64.Vec2{b + L + half, -h - oy},
			mgl64.Vec2{b + L + half, h + half},
			mgl64.Vec2{b + half, h + L + half},
			mgl64.Vec2{-b - ox, h + L + half},
		)
	case SouthEast:
		s.polyline(
			mgl64.Vec2{b + ox, h + L + half},
			mgl64.Vec2{-b - half, h + L + half},
			mgl64.Vec2{-b - L - half, h + half},
			mgl64.Vec2{-b - L - half, -h - oy},
		)
	}

	s.generateStudRailLines()
}

// generateStudRailLines records the rail centerlines, two per column face
// that does not border a free slab edge.
func (s *Section) generateStudRailLines() {
	freeN, freeS, freeE, freeW := s.rawFreeEdges()
	b, h := s.cfg.Width/2, s.cfg.Height/2
	L := s.cfg.StudRailLength

	if !freeN {
		s.rail(mgl64.Vec2{-b, h}, mgl64.Vec2{-b, h + L})
		s.rail(mgl64.Vec2{b, h}, mgl64.Vec2{b, h + L})
	}
	if !freeS {
		s.rail(mgl64.Vec2{-b, -h}, mgl64.Vec2{-b, -h - L})
		s.rail(mgl64.Vec2{b, -h}, mgl64.Vec2{b, -h - L})
	}
	if !freeE {
		s.rail(mgl64.Vec2{b, h}, mgl64.Vec2{b + L, h})
		s.rail(mgl64.Vec2{b, -h}, mgl64.Vec2{b + L, -h})
	}
	if !freeW {
		s.rail(mgl64.Vec2{-b, h}, mgl64.Vec2{-b - L, h})
		s.rail(mgl64.Vec2{-b, -h}, mgl64.Vec2{-b - L, -h})
	}
}

// generateSlabEdges records one long line per free slab edge for preview
// shading. Display only.
func (s *Section) generateSlabEdges() {
	freeN, freeS, freeE, freeW := s.rawFreeEdges()
	b, h := s.cfg.Width/2, s.cfg.Height/2
	L := s.cfg.StudRailLength
	ox, oy := s.cfg.OverhangX, s.cfg.OverhangY
	extX := b + L + aci.SlabExtentFactor*s.cfg.Width
	extY := h + L + aci.SlabExtentFactor*s.cfg.Height

	if freeN {
		s.slabEdges = append(s.slabEdges, [2]mgl64.Vec2{{-extX, h + oy}, {extX, h + oy}})
	}
	if freeS {
		s.slabEdges = append(s.slabEdges, [2]mgl64.Vec2{{-extX, -h - oy}, {extX, -h - oy}})
	}
	if freeE {
		s.slabEdges = append(s.slabEdges, [2]mgl64.Vec2{{b + ox, -extY}, {b + ox, extY}})
	}
	if freeW {
		s.slabEdges = append(s.slabEdges, [2]mgl64.Vec2{{-b - ox, -extY}, {-b - ox, extY}})
	}
}

// rawFreeEdges decomposes the condition tag without the overhang
// reclassification. Stud rails and slab edge lines follow the declared
// condition even when the perimeter itself is widened to interior.
func (s *Section) rawFreeEdges() (n, so, e, w bool) {
	switch s.cfg.Condition {
	case North:
		n = true
	case South:
		so = true
	case East:
		e = true
	case West:
		w = true
	case NorthEast:
		n, e = true, true
	case NorthWest:
		n, w = true, true
	case SouthEast:
		so, e = true, true
	case SouthWest:
		so, w = true, true
	}
	return n, so, e, w
}

func (s *Section) face(start, end mgl64.Vec2) {
	s.segments = append(s.segments, Segment{Start: start, End: end, Depth: s.cfg.SlabDepth})
}

func (s *Section) polyline(pts ...mgl64.Vec2) {
	for i := 0; i < len(pts)-1; i++ {
		s.face(pts[i], pts[i+1])
	}
}

func (s *Section) rail(start, end mgl64.Vec2) {
	s.studRails = append(s.studRails, [2]mgl64.Vec2{start, end})
}
