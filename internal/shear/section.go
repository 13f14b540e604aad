package shear

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/wcfrobert/wthisj/internal/aci"
)

// Config describes a column-to-slab connection. Units are caller-defined
// but must be dimensionally consistent (force, length) throughout.
type Config struct {
	Width     float64   `json:"width"`      // column dimension along x
	Height    float64   `json:"height"`     // column dimension along y
	SlabDepth float64   `json:"slab_depth"` // slab depth, compression fiber to tension rebar (average of both directions)
	Condition Condition `json:"condition"`

	OverhangX      float64 `json:"overhang_x,omitempty"` // slab overhang beyond the column face along x
	OverhangY      float64 `json:"overhang_y,omitempty"`
	StudRailLength float64 `json:"studrail_length,omitempty"`

	// ManualPerimeter skips perimeter generation; the caller supplies
	// segments via AddPerimeter instead.
	ManualPerimeter bool `json:"manual_perimeter,omitempty"`

	// PatchSize is the target fiber length. Zero means the default (0.5).
	PatchSize float64 `json:"patch_size,omitempty"`
}

// Section is the owning handle for a critical shear perimeter. Segments
// and openings are the durable inputs; the fiber set and section
// properties are immutable snapshots derived from them, discarded and
// rebuilt whenever the geometry mutates. Not safe for concurrent use.
type Section struct {
	cfg Config

	segments []Segment
	openings []Opening

	columnPts [4]mgl64.Vec2
	studRails [][2]mgl64.Vec2
	slabEdges [][2]mgl64.Vec2

	warnings []string

	// derived state, nil until built, cleared by any mutation
	fibers     []Fiber
	props      *SectionProperties
	lastResult *Result
}

// NewSection validates the configuration and, unless ManualPerimeter is
// set, generates the critical perimeter at d/2 from each supported
// column face.
func NewSection(cfg Config) (*Section, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, configErrorf("column dimensions must be positive, got %g x %g", cfg.Width, cfg.Height)
	}
	if cfg.SlabDepth <= 0 {
		return nil, configErrorf("slab depth must be positive, got %g", cfg.SlabDepth)
	}
	if cfg.PatchSize < 0 {
		return nil, configErrorf("patch size must be positive, got %g", cfg.PatchSize)
	}
	if cfg.PatchSize == 0 {
		cfg.PatchSize = aci.DefaultPatchSize
	}
	if cfg.OverhangX < 0 || cfg.OverhangY < 0 {
		return nil, configErrorf("overhangs must be non-negative")
	}
	if cfg.StudRailLength < 0 {
		return nil, configErrorf("stud rail length must be non-negative, got %g", cfg.StudRailLength)
	}

	s := &Section{cfg: cfg}
	b, h := cfg.Width/2, cfg.Height/2
	s.columnPts = [4]mgl64.Vec2{{-b, -h}, {b, -h}, {b, h}, {-b, h}}

	if !cfg.ManualPerimeter {
		if !cfg.Condition.Valid() {
			return nil, configErrorf("condition must be one of N, S, W, E, I, NW, NE, SW, SE, got %q", cfg.Condition)
		}
		if err := s.generatePerimeter(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Config returns the configuration the section was built from.
func (s *Section) Config() Config { return s.cfg }

// Segments returns a copy of the current perimeter segment list.
func (s *Section) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Openings returns a copy of the declared openings, including any that
// were ignored by the proximity rule.
func (s *Section) Openings() []Opening {
	out := make([]Opening, len(s.openings))
	copy(out, s.openings)
	return out
}

// ColumnCorners returns the column footprint corners, counter-clockwise.
func (s *Section) ColumnCorners() [4]mgl64.Vec2 { return s.columnPts }

// StudRails returns the stud rail centerlines, two points each.
func (s *Section) StudRails() [][2]mgl64.Vec2 {
	out := make([][2]mgl64.Vec2, len(s.studRails))
	copy(out, s.studRails)
	return out
}

// SlabEdges returns the free slab edge lines for preview rendering.
func (s *Section) SlabEdges() [][2]mgl64.Vec2 {
	out := make([][2]mgl64.Vec2, len(s.slabEdges))
	copy(out, s.slabEdges)
	return out
}

// Warnings returns the geometric warnings accumulated so far (ignored
// openings, non-principal solves). Warnings never alter results.
func (s *Section) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// LastResult returns the cached result of the most recent solve, or nil
// if the geometry has mutated since.
func (s *Section) LastResult() *Result { return s.lastResult }

// AddPerimeter appends one straight perimeter segment. Used to draw
// custom perimeters with ManualPerimeter, or to extend a generated one.
func (s *Section) AddPerimeter(start, end mgl64.Vec2, depth float64) error {
	if depth <= 0 {
		return configErrorf("segment depth must be positive, got %g", depth)
	}
	seg := Segment{Start: start, End: end, Depth: depth}
	if seg.Length() == 0 {
		return configErrorf("segment from (%g, %g) to (%g, %g) has zero length",
			start.X(), start.Y(), end.X(), end.Y())
	}
	s.segments = append(s.segments, seg)
	s.invalidate()
	return nil
}

// AddOpening declares a rectangular opening with its lower-left corner at
// offset from the column center. Fibers inside the opening's angular
// extent are deactivated. An opening farther than 4d from the nearest
// perimeter point has no code-sanctioned effect: it is recorded but
// ignored, and a warning is added.
func (s *Section) AddOpening(offset mgl64.Vec2, width, height float64) error {
	if width <= 0 || height <= 0 {
		return configErrorf("opening dimensions must be positive, got %g x %g", width, height)
	}
	op := Opening{Corners: [4]mgl64.Vec2{
		offset,
		offset.Add(mgl64.Vec2{width, 0}),
		offset.Add(mgl64.Vec2{width, height}),
		offset.Add(mgl64.Vec2{0, height}),
	}}

	if dist, ok := s.openingDistance(op); ok && dist > aci.OpeningProximityFactor*s.cfg.SlabDepth {
		op.Ignored = true
		s.openings = append(s.openings, op)
		s.warn("opening at (%g, %g) is more than 4d from the shear perimeter and is ignored per ACI 318",
			offset.X(), offset.Y())
		return nil
	}

	s.openings = append(s.openings, op)
	s.invalidate()
	return nil
}

// openingDistance returns the distance from the opening corner closest to
// the column center to the nearest perimeter fiber. ok is false when the
// perimeter has no fibers yet.
func (s *Section) openingDistance(op Opening) (float64, bool) {
	closest := op.Corners[0]
	for _, c := range op.Corners[1:] {
		if c.Len() < closest.Len() {
			closest = c
		}
	}
	fibers := s.buildFibers()
	if len(fibers) == 0 {
		return 0, false
	}
	min := math.Inf(1)
	for i := range fibers {
		if d := fibers[i].Midpoint.Sub(closest).Len(); d < min {
			min = d
		}
	}
	return min, true
}

// Rotate rotates the whole geometry (perimeter, openings, column, stud
// rails, slab edges) counter-clockwise by the given angle in degrees
// about the column center. Rotate(0) is an identity transform.
func (s *Section) Rotate(angleDeg float64) {
	if angleDeg == 0 {
		return
	}
	rot := mgl64.Rotate2D(mgl64.DegToRad(angleDeg))

	for i := range s.segments {
		s.segments[i].Start = rot.Mul2x1(s.segments[i].Start)
		s.segments[i].End = rot.Mul2x1(s.segments[i].End)
	}
	for i := range s.openings {
		for j := range s.openings[i].Corners {
			s.openings[i].Corners[j] = rot.Mul2x1(s.openings[i].Corners[j])
		}
	}
	for i := range s.columnPts {
		s.columnPts[i] = rot.Mul2x1(s.columnPts[i])
	}
	for i := range s.studRails {
		s.studRails[i][0] = rot.Mul2x1(s.studRails[i][0])
		s.studRails[i][1] = rot.Mul2x1(s.studRails[i][1])
	}
	for i := range s.slabEdges {
		s.slabEdges[i][0] = rot.Mul2x1(s.slabEdges[i][0])
		s.slabEdges[i][1] = rot.Mul2x1(s.slabEdges[i][1])
	}
	s.invalidate()
}

// Fibers returns the current fiber set, building it if necessary.
// Deactivated fibers are included; callers filter on Active.
func (s *Section) Fibers() []Fiber {
	s.ensureFibers()
	out := make([]Fiber, len(s.fibers))
	copy(out, s.fibers)
	return out
}

// invalidate discards every derived snapshot. Called by all mutators so
// that stale properties or results can never be observed.
func (s *Section) invalidate() {
	s.fibers = nil
	s.props = nil
	s.lastResult = nil
}

func (s *Section) ensureFibers() {
	if s.fibers != nil {
		return
	}
	fibers := s.buildFibers()
	for _, op := range s.openings {
		if op.Ignored {
			continue
		}
		arc := deletionArc(op)
		for i := range fibers {
			if fibers[i].Active && arc.contains(fibers[i].Theta) {
				fibers[i].Active = false
			}
		}
	}
	s.fibers = fibers
}

// buildFibers discretizes every segment into fresh fibers, openings not
// yet applied.
func (s *Section) buildFibers() []Fiber {
	var fibers []Fiber
	for i, seg := range s.segments {
		fibers = append(fibers, discretize(seg, i, s.cfg.PatchSize)...)
	}
	return fibers
}

func (s *Section) warn(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}
