package shear

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// Model is the JSON description of a connection, its openings, and an
// optional load case. Example:
//
//	{
//	  "name": "Corner column with studrails",
//	  "width": 24, "height": 24, "slab_depth": 12,
//	  "condition": "NW",
//	  "overhang_x": 12, "overhang_y": 12,
//	  "studrail_length": 36,
//	  "openings": [{"dx": 40, "dy": -6, "width": 12, "height": 12}],
//	  "load": {"p": -100, "mx": 400, "my": 0,
//	           "gamma_vx": "auto", "gamma_vy": 0.4,
//	           "consider_pe": true, "auto_rotate": true}
//	}
type Model struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Config

	// Perimeter lists explicit segments for manual perimeters.
	Perimeter []SegmentSpec `json:"perimeter,omitempty"`

	Openings []OpeningSpec `json:"openings,omitempty"`

	// Rotation in degrees applied after openings, counter-clockwise.
	Rotation float64 `json:"rotation,omitempty"`

	Load *LoadCase `json:"load,omitempty"`
}

// SegmentSpec is one user-drawn perimeter segment. Depth zero inherits
// the slab depth.
type SegmentSpec struct {
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
	Depth float64    `json:"depth,omitempty"`
}

// OpeningSpec locates a rectangular opening by the offset from the
// column center to its lower-left corner.
type OpeningSpec struct {
	Dx     float64 `json:"dx"`
	Dy     float64 `json:"dy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LoadModel reads and validates a model definition from a JSON file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.ManualPerimeter && len(m.Perimeter) == 0 {
		return nil, configErrorf("manual_perimeter is set but no perimeter segments are given")
	}
	return &m, nil
}

// Build constructs the section described by the model, applying manual
// segments, openings, and the optional rotation.
func (m *Model) Build() (*Section, error) {
	s, err := NewSection(m.Config)
	if err != nil {
		return nil, err
	}
	for i, spec := range m.Perimeter {
		depth := spec.Depth
		if depth == 0 {
			depth = m.SlabDepth
		}
		if err := s.AddPerimeter(mgl64.Vec2(spec.Start), mgl64.Vec2(spec.End), depth); err != nil {
			return nil, fmt.Errorf("perimeter segment %d: %w", i+1, err)
		}
	}
	for i, spec := range m.Openings {
		if err := s.AddOpening(mgl64.Vec2{spec.Dx, spec.Dy}, spec.Width, spec.Height); err != nil {
			return nil, fmt.Errorf("opening %d: %w", i+1, err)
		}
	}
	if m.Rotation != 0 {
		s.Rotate(m.Rotation)
	}
	return s, nil
}
