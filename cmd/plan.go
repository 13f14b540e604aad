package cmd

import (
	"github.com/wcfrobert/wthisj/internal/diagram"
	"github.com/wcfrobert/wthisj/internal/shear"
)

// planData converts engine output into the diagram package's plan view
// input. When result is non-nil the active fibers carry their total
// stress for contour shading.
func planData(s *shear.Section, result *shear.Result) diagram.PlanData {
	var data diagram.PlanData

	for _, seg := range s.Segments() {
		data.Segments = append(data.Segments, [2]diagram.Point{
			{X: seg.Start.X(), Y: seg.Start.Y()},
			{X: seg.End.X(), Y: seg.End.Y()},
		})
	}
	for _, c := range s.ColumnCorners() {
		data.Column = append(data.Column, diagram.Point{X: c.X(), Y: c.Y()})
	}
	for _, op := range s.Openings() {
		var poly []diagram.Point
		for _, c := range op.Corners {
			poly = append(poly, diagram.Point{X: c.X(), Y: c.Y()})
		}
		data.Openings = append(data.Openings, poly)
	}

	if result != nil {
		data.Centroid = diagram.Point{X: result.Properties.Xc, Y: result.Properties.Yc}
		// result rows are recentred; shift back to the column frame
		for _, row := range result.Rows {
			data.Fibers = append(data.Fibers, diagram.Point{
				X: row.X + result.Properties.Xc,
				Y: row.Y + result.Properties.Yc,
			})
			data.Stresses = append(data.Stresses, row.VTotal)
		}
		data.VMin, data.VMax = result.VMin, result.VMax
		return data
	}

	if props, err := s.Properties(); err == nil {
		data.Centroid = diagram.Point{X: props.Xc, Y: props.Yc}
	}
	for _, f := range s.Fibers() {
		if !f.Active {
			continue
		}
		data.Fibers = append(data.Fibers, diagram.Point{X: f.Midpoint.X(), Y: f.Midpoint.Y()})
	}
	return data
}
