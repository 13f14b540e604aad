package shear

import "math"

// discretize subdivides a segment into fibers of roughly patchSize
// length. The segment length is divided evenly over the fiber count so
// the fiber lengths sum to the segment length exactly: no gap, no
// overlap. This is the core numerical-integration invariant.
func discretize(seg Segment, index int, patchSize float64) []Fiber {
	dir := seg.End.Sub(seg.Start)
	length := dir.Len()

	n := int(length / patchSize)
	if n < 1 {
		n = 1
	}
	dL := length / float64(n)
	dA := dL * seg.Depth

	fibers := make([]Fiber, 0, n)
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		start := seg.Start.Add(dir.Mul(t0))
		end := seg.Start.Add(dir.Mul(t1))
		mid := start.Add(end).Mul(0.5)

		fibers = append(fibers, Fiber{
			Midpoint: mid,
			Start:    start,
			End:      end,
			Length:   dL,
			Depth:    seg.Depth,
			Area:     dA,
			Theta:    math.Atan2(mid.Y(), mid.X()),
			Segment:  index,
			Active:   true,
		})
	}
	return fibers
}
