package shear_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/wcfrobert/wthisj/internal/shear"
)

func interiorSection(t *testing.T) *shear.Section {
	t.Helper()
	s, err := shear.NewSection(shear.Config{
		Width:     24,
		Height:    24,
		SlabDepth: 12,
		Condition: shear.Interior,
	})
	require.NoError(t, err)
	return s
}

func TestInteriorPerimeter(t *testing.T) {
	s := interiorSection(t)
	require.Len(t, s.Segments(), 4)

	props, err := s.Properties()
	require.NoError(t, err)

	// bo = 4·(w+d) for a square interior column
	require.InDelta(t, 144, props.Bo, 1e-9)
	require.InDelta(t, 1728, props.Area, 1e-9)
	require.InDelta(t, 0, props.Xc, 1e-9)
	require.InDelta(t, 0, props.Yc, 1e-9)
}

func TestEdgeColumnOmitsFreeFace(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:     24,
		Height:    24,
		SlabDepth: 12,
		Condition: shear.West,
	})
	require.NoError(t, err)

	// one column face coincides with the free edge and is omitted
	require.Len(t, s.Segments(), 3)

	props, err := s.Properties()
	require.NoError(t, err)
	require.InDelta(t, 96, props.Bo, 1e-9)

	// centroid shifts away from the free edge, along x for a west edge
	require.InDelta(t, 8.625, props.Xc, 1e-9)
	require.InDelta(t, 0, props.Yc, 1e-9)
}

func TestCornerColumnTwoFaces(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:     24,
		Height:    24,
		SlabDepth: 12,
		Condition: shear.NorthWest,
	})
	require.NoError(t, err)
	require.Len(t, s.Segments(), 2)
}

func TestOverhangReclassification(t *testing.T) {
	// overhang ≥ c/2 + d on both axes upgrades a corner column to interior
	s, err := shear.NewSection(shear.Config{
		Width:     24,
		Height:    24,
		SlabDepth: 12,
		Condition: shear.NorthWest,
		OverhangX: 24,
		OverhangY: 24,
	})
	require.NoError(t, err)
	require.Len(t, s.Segments(), 4)

	props, err := s.Properties()
	require.NoError(t, err)
	require.InDelta(t, 144, props.Bo, 1e-9)
	require.InDelta(t, 0, props.Xc, 1e-9)
}

func TestOverhangReclassificationCascadesOneAxis(t *testing.T) {
	// large x-overhang only: the west edge becomes supported, leaving an
	// edge condition on the north side
	s, err := shear.NewSection(shear.Config{
		Width:     24,
		Height:    24,
		SlabDepth: 12,
		Condition: shear.NorthWest,
		OverhangX: 24,
	})
	require.NoError(t, err)
	require.Len(t, s.Segments(), 3)

	props, err := s.Properties()
	require.NoError(t, err)
	require.InDelta(t, 0, props.Xc, 1e-9)
	require.Less(t, props.Yc, 0.0)
}

func TestStudRailInteriorOctagon(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:          24,
		Height:         24,
		SlabDepth:      12,
		Condition:      shear.Interior,
		StudRailLength: 36,
	})
	require.NoError(t, err)
	require.Len(t, s.Segments(), 8)
	require.Len(t, s.StudRails(), 8)

	props, err := s.Properties()
	require.NoError(t, err)

	// four straight faces of w+d plus four 45° corner chamfers of L√2
	want := 4*36 + 4*36*math.Sqrt2
	require.InDelta(t, want, props.Bo, 1e-9)
	require.InDelta(t, 0, props.Xc, 1e-9)
	require.InDelta(t, 0, props.Yc, 1e-9)
}

func TestStudRailEdgeTerminatesAtSlabEdge(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:          24,
		Height:         24,
		SlabDepth:      12,
		Condition:      shear.North,
		StudRailLength: 36,
	})
	require.NoError(t, err)
	require.Len(t, s.Segments(), 5)
	// no rails on the free north face
	require.Len(t, s.StudRails(), 6)

	for _, seg := range s.Segments() {
		require.LessOrEqual(t, seg.Start.Y(), 12.0)
		require.LessOrEqual(t, seg.End.Y(), 12.0)
	}
}

func TestManualPerimeter(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:           24,
		Height:          24,
		SlabDepth:       12,
		ManualPerimeter: true,
	})
	require.NoError(t, err)

	require.NoError(t, s.AddPerimeter(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 10}, 1))
	require.NoError(t, s.AddPerimeter(mgl64.Vec2{5, 0}, mgl64.Vec2{5, 10}, 1))

	props, err := s.Properties()
	require.NoError(t, err)
	require.InDelta(t, 20, props.Bo, 1e-9)
	require.InDelta(t, 20, props.Area, 1e-9)
	require.InDelta(t, 2.5, props.Xc, 1e-9)
	require.InDelta(t, 5, props.Yc, 1e-9)
}

func TestConfigValidation(t *testing.T) {
	_, err := shear.NewSection(shear.Config{Width: 24, Height: 24, SlabDepth: 12, Condition: "X"})
	require.Error(t, err)
	var cfgErr *shear.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	_, err = shear.NewSection(shear.Config{Width: 0, Height: 24, SlabDepth: 12, Condition: shear.Interior})
	require.Error(t, err)

	_, err = shear.NewSection(shear.Config{Width: 24, Height: 24, SlabDepth: -1, Condition: shear.Interior})
	require.Error(t, err)
}

func TestAddPerimeterValidation(t *testing.T) {
	s := interiorSection(t)
	require.Error(t, s.AddPerimeter(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}, 12))
	require.Error(t, s.AddPerimeter(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0))
}

func TestEmptyManualPerimeter(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:           24,
		Height:          24,
		SlabDepth:       12,
		ManualPerimeter: true,
	})
	require.NoError(t, err)

	_, err = s.Properties()
	require.Error(t, err)
	var cfgErr *shear.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestFiberLengthsSumToSegmentLength(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:           24,
		Height:          24,
		SlabDepth:       12,
		ManualPerimeter: true,
	})
	require.NoError(t, err)

	// length not a multiple of the patch size: the subdivision must
	// still cover the segment exactly
	require.NoError(t, s.AddPerimeter(mgl64.Vec2{0, 0}, mgl64.Vec2{10.3, 0}, 1))

	var total float64
	for _, f := range s.Fibers() {
		total += f.Length
	}
	require.InDelta(t, 10.3, total, 1e-12)
}

func TestRotateZeroIsIdentity(t *testing.T) {
	s := interiorSection(t)
	before := s.Segments()
	s.Rotate(0)
	require.Equal(t, before, s.Segments())
}

func TestRotatePreservesPerimeterLength(t *testing.T) {
	s := interiorSection(t)
	propsBefore, err := s.Properties()
	require.NoError(t, err)

	s.Rotate(37)
	propsAfter, err := s.Properties()
	require.NoError(t, err)

	require.InDelta(t, propsBefore.Bo, propsAfter.Bo, 1e-9)
	require.InDelta(t, propsBefore.Area, propsAfter.Area, 1e-9)
}
