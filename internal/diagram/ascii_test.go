package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcfrobert/wthisj/internal/diagram"
)

func squarePlan() diagram.PlanData {
	return diagram.PlanData{
		Segments: [][2]diagram.Point{
			{{X: -18, Y: -18}, {X: 18, Y: -18}},
			{{X: 18, Y: -18}, {X: 18, Y: 18}},
			{{X: 18, Y: 18}, {X: -18, Y: 18}},
			{{X: -18, Y: 18}, {X: -18, Y: -18}},
		},
		Column: []diagram.Point{
			{X: -12, Y: -12}, {X: 12, Y: -12}, {X: 12, Y: 12}, {X: -12, Y: 12},
		},
		Centroid: diagram.Point{},
	}
}

func TestDrawASCIIPlanGeometry(t *testing.T) {
	out := diagram.DrawASCIIPlan(squarePlan())
	require.NotEmpty(t, out)
	require.Contains(t, out, "#") // column fill
	require.Contains(t, out, "+") // centroid marker
}

func TestDrawASCIIPlanStressRamp(t *testing.T) {
	data := squarePlan()
	data.Fibers = []diagram.Point{{X: 0, Y: 18}, {X: 0, Y: -18}}
	data.Stresses = []float64{-0.01, -0.08}
	data.VMin, data.VMax = -0.08, -0.01

	out := diagram.DrawASCIIPlan(data)
	require.Contains(t, out, "█") // peak stress
	require.Contains(t, out, "stress range")
}

func TestDrawSummaryBox(t *testing.T) {
	out := diagram.DrawSummaryBox("RESULTS", []string{"v_max = -0.08 ksi"})
	require.Contains(t, out, "RESULTS")
	require.Contains(t, out, "v_max = -0.08 ksi")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		require.NotEmpty(t, line)
	}
}
