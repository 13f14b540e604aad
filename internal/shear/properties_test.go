package shear_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/wcfrobert/wthisj/internal/shear"
)

func TestInteriorSectionProperties(t *testing.T) {
	s := interiorSection(t)
	props, err := s.Properties()
	require.NoError(t, err)

	// closed-form ring values for a 36x36 perimeter with depth 12
	require.InDelta(t, 373248, props.Ix, 100)
	require.InDelta(t, 373248, props.Iy, 100)
	require.InDelta(t, 0, props.Ixy, 1e-6)
	require.InDelta(t, props.Ix+props.Iy, props.Iz, 1e-9)
	require.InDelta(t, 0, props.ThetaP, 1e-6)
	require.True(t, props.IsPrincipal())

	require.InDelta(t, 18, props.Cy1, 1e-9)
	require.InDelta(t, -18, props.Cy2, 1e-9)
	require.InDelta(t, 18, props.Cx1, 1e-9)
	require.InDelta(t, -18, props.Cx2, 1e-9)

	require.InDelta(t, props.Ix/18, props.Sx1, 1e-9)
	require.InDelta(t, props.Iy/18, props.Sy2, 1e-9)

	// uniform depth: normalized perimeter equals bo
	require.InDelta(t, props.Bo, props.Le, 1e-9)
}

func TestNonUniformDepthNormalizedPerimeter(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:           24,
		Height:          24,
		SlabDepth:       12,
		ManualPerimeter: true,
	})
	require.NoError(t, err)
	require.NoError(t, s.AddPerimeter(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, 6))
	require.NoError(t, s.AddPerimeter(mgl64.Vec2{0, 5}, mgl64.Vec2{10, 5}, 12))

	props, err := s.Properties()
	require.NoError(t, err)
	require.InDelta(t, 20, props.Bo, 1e-9)
	// deeper segment counts double against the minimum depth
	require.InDelta(t, 10+20, props.Le, 1e-9)
}

func TestSymmetricPerimeterIsPrincipal(t *testing.T) {
	for _, cond := range []shear.Condition{shear.Interior, shear.North, shear.West, shear.SouthEast} {
		s, err := shear.NewSection(shear.Config{
			Width:     30,
			Height:    18,
			SlabDepth: 10,
			Condition: cond,
		})
		require.NoError(t, err)

		props, err := s.Properties()
		require.NoError(t, err)
		if cond == shear.SouthEast {
			// corner perimeters are not symmetric, skip the Ixy claim
			continue
		}
		require.InDelta(t, 0, props.Ixy, 1e-6, "condition %s", cond)
	}
}

func TestRotationIntroducesProductOfInertia(t *testing.T) {
	s, err := shear.NewSection(shear.Config{
		Width:     48,
		Height:    24,
		SlabDepth: 12,
		Condition: shear.Interior,
	})
	require.NoError(t, err)

	before, err := s.Properties()
	require.NoError(t, err)
	require.InDelta(t, 0, before.Ixy, 1e-6)

	s.Rotate(30)
	after, err := s.Properties()
	require.NoError(t, err)
	require.Greater(t, math.Abs(after.Ixy), 1000.0)
	require.False(t, after.IsPrincipal())

	// Mohr's circle: rotating by θp restores the principal orientation
	s.Rotate(after.ThetaP)
	restored, err := s.Properties()
	require.NoError(t, err)
	require.True(t, restored.IsPrincipal())
}

func TestPropertiesRebuiltAfterMutation(t *testing.T) {
	s := interiorSection(t)
	before, err := s.Properties()
	require.NoError(t, err)

	require.NoError(t, s.AddPerimeter(mgl64.Vec2{30, -18}, mgl64.Vec2{30, 18}, 12))
	after, err := s.Properties()
	require.NoError(t, err)

	require.InDelta(t, before.Bo+36, after.Bo, 1e-9)
	require.Greater(t, after.Xc, 0.0)
}
