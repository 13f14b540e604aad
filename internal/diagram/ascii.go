package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D coordinate in the slab plane
type Point struct {
	X float64
	Y float64
}

// PlanData holds everything needed to draw a plan view of a punching
// shear perimeter: the perimeter segments, the discretized fibers with
// optional per-fiber stress, the column footprint, and any openings.
type PlanData struct {
	Segments [][2]Point
	Column   []Point
	Openings [][]Point
	Centroid Point

	Fibers   []Point
	Stresses []float64 // optional, parallel to Fibers

	// Stress scaling hints; when equal the ramp is disabled
	VMin, VMax float64
}

// stressRamp maps increasing stress magnitude to denser shading
var stressRamp = []rune{'░', '▒', '▓', '█'}

// DrawASCIIPlan renders the perimeter in plan view on a character grid.
// Without stresses every fiber draws as '·'; with stresses the fibers
// shade from light to dark with |v|. The column footprint fills with
// '#', the centroid marks with '+', opening corners with 'x'.
func DrawASCIIPlan(data PlanData) string {
	const cols, rows = 61, 31

	minX, maxX, minY, maxY := bounds(data)
	if maxX-minX == 0 || maxY-minY == 0 {
		return ""
	}
	// pad so boundary fibers land inside the grid
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05
	minX, maxX = minX-padX, maxX+padX
	minY, maxY = minY-padY, maxY+padY

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	put := func(p Point, r rune) {
		c := int((p.X - minX) / (maxX - minX) * float64(cols-1))
		// rows count downward
		rr := int((maxY - p.Y) / (maxY - minY) * float64(rows-1))
		if c >= 0 && c < cols && rr >= 0 && rr < rows {
			grid[rr][c] = r
		}
	}

	// column footprint
	if len(data.Column) >= 3 {
		fillPolygon(grid, data.Column, minX, maxX, minY, maxY, '#')
	}

	// fibers, shaded by stress when available
	for i, f := range data.Fibers {
		r := '·'
		if len(data.Stresses) == len(data.Fibers) && data.VMax > data.VMin {
			mag := math.Abs(data.Stresses[i])
			peak := math.Max(math.Abs(data.VMin), math.Abs(data.VMax))
			if peak > 0 {
				idx := int(mag / peak * float64(len(stressRamp)))
				if idx >= len(stressRamp) {
					idx = len(stressRamp) - 1
				}
				r = stressRamp[idx]
			}
		}
		put(f, r)
	}

	for _, op := range data.Openings {
		for _, c := range op {
			put(c, 'x')
		}
	}
	put(data.Centroid, '+')

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  PLAN VIEW\n")
	sb.WriteString("  ─────────\n")
	sb.WriteString("  ┌" + strings.Repeat("─", cols) + "┐\n")
	for _, row := range grid {
		sb.WriteString("  │")
		sb.WriteString(string(row))
		sb.WriteString("│\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", cols) + "┘\n")
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ### = column footprint\n")
	if len(data.Stresses) == len(data.Fibers) && len(data.Stresses) > 0 {
		sb.WriteString("  ░▒▓█ = shear perimeter, shaded by |v|\n")
		sb.WriteString(fmt.Sprintf("  stress range: %.4f to %.4f\n", data.VMin, data.VMax))
	} else {
		sb.WriteString("  ··· = shear perimeter fibers\n")
	}
	sb.WriteString("  + = perimeter centroid, x = opening corner\n")
	return sb.String()
}

// DrawSummaryBox creates a boxed summary for CLI reports
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func bounds(data PlanData) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	consider := func(p Point) {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for _, seg := range data.Segments {
		consider(seg[0])
		consider(seg[1])
	}
	for _, p := range data.Column {
		consider(p)
	}
	for _, op := range data.Openings {
		for _, p := range op {
			consider(p)
		}
	}
	return minX, maxX, minY, maxY
}

// fillPolygon rasterizes a convex polygon onto the grid with even-odd
// horizontal scanlines.
func fillPolygon(grid [][]rune, poly []Point, minX, maxX, minY, maxY float64, r rune) {
	rows, cols := len(grid), len(grid[0])
	for rr := 0; rr < rows; rr++ {
		y := maxY - (maxY-minY)*float64(rr)/float64(rows-1)
		var xs []float64
		n := len(poly)
		for i := 0; i < n; i++ {
			a, b := poly[i], poly[(i+1)%n]
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				t := (y - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		lo, hi := math.Min(xs[0], xs[1]), math.Max(xs[0], xs[1])
		for c := 0; c < cols; c++ {
			x := minX + (maxX-minX)*float64(c)/float64(cols-1)
			if x >= lo && x <= hi {
				grid[rr][c] = r
			}
		}
	}
}
