package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportPlanDiagram exports a geometry preview of the shear perimeter to
// an image file (png, svg, or pdf by extension).
func ExportPlanDiagram(data PlanData, filename string) error {
	p := plot.New()
	p.Title.Text = "Punching Shear Perimeter"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if err := addGeometry(p, data); err != nil {
		return err
	}

	// perimeter segments
	for _, seg := range data.Segments {
		line, err := plotter.NewLine(plotter.XYs{
			{X: seg[0].X, Y: seg[0].Y},
			{X: seg[1].X, Y: seg[1].Y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(line)
	}

	return save(p, filename)
}

// ExportStressDiagram exports a stress contour scatter: each fiber drawn
// at its position, colored by total stress on a blue-to-red ramp scaled
// between VMin and VMax.
func ExportStressDiagram(data PlanData, filename string) error {
	p := plot.New()
	p.Title.Text = "Punching Shear Stress"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if err := addGeometry(p, data); err != nil {
		return err
	}

	pts := make(plotter.XYs, len(data.Fibers))
	for i, f := range data.Fibers {
		pts[i] = plotter.XY{X: f.X, Y: f.Y}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  rampColor(data.Stresses[i], data.VMin, data.VMax),
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	return save(p, filename)
}

// addGeometry draws the column footprint and opening outlines shared by
// both diagram types.
func addGeometry(p *plot.Plot, data PlanData) error {
	if len(data.Column) >= 3 {
		colPts := make(plotter.XYs, len(data.Column))
		for i, c := range data.Column {
			colPts[i] = plotter.XY{X: c.X, Y: c.Y}
		}
		poly, err := plotter.NewPolygon(colPts)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 169, G: 169, B: 169, A: 200}
		poly.LineStyle.Color = color.Black
		p.Add(poly)
	}

	for _, op := range data.Openings {
		opPts := make(plotter.XYs, len(op))
		for i, c := range op {
			opPts[i] = plotter.XY{X: c.X, Y: c.Y}
		}
		poly, err := plotter.NewPolygon(opPts)
		if err != nil {
			return err
		}
		poly.Color = color.White
		poly.LineStyle.Color = color.RGBA{R: 139, G: 0, B: 0, A: 255}
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	}

	centroid, err := plotter.NewScatter(plotter.XYs{{X: data.Centroid.X, Y: data.Centroid.Y}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)
	return nil
}

// rampColor maps a stress value onto a blue-white-red diverging ramp
// centered between vmin and vmax.
func rampColor(v, vmin, vmax float64) color.Color {
	if vmax <= vmin {
		return color.RGBA{R: 100, G: 149, B: 237, A: 255}
	}
	t := (v - vmin) / (vmax - vmin)
	t = math.Max(0, math.Min(1, t))
	// blue (0,0,255) -> white (255,255,255) -> red (255,0,0)
	if t < 0.5 {
		u := t * 2
		return color.RGBA{R: uint8(255 * u), G: uint8(255 * u), B: 255, A: 255}
	}
	u := (t - 0.5) * 2
	return color.RGBA{R: 255, G: uint8(255 * (1 - u)), B: uint8(255 * (1 - u)), A: 255}
}

func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 8 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
