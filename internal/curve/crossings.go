package curve

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// Crossing is a point where a path crosses a polygon boundary,
// annotated with its distance along the path.
type Crossing struct {
	Distance float64
	Point    geom.Point
}

// Crossings returns every point where the path crosses the boundary of
// the polygon, sorted ascending by distance along the path. Crossings
// closer together than crossingMergeDistance are merged, so a crossing
// that lands exactly on a shared ring vertex is reported once.
func Crossings(p *Path, poly geom.Polygon) []Crossing {
	var found []Crossing
	base := 0.0
	for _, s := range p.segments {
		for _, ring := range poly {
			for i := range ring {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				found = appendSegmentEdgeCrossings(found, s, base, a, b)
			}
		}
		base += s.Length()
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Distance < found[j].Distance })

	merged := found[:0]
	for _, c := range found {
		if len(merged) > 0 && c.Distance-merged[len(merged)-1].Distance < crossingMergeDistance {
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

// appendSegmentEdgeCrossings finds crossings between one path segment
// and one polygon edge a→b. base is the distance of the segment's start
// along the whole path. The edge parameter is half-open ([0,1)) so ring
// vertices belong to exactly one edge.
func appendSegmentEdgeCrossings(dst []Crossing, s *Segment, base float64, a, b geom.Point) []Crossing {
	if !s.arc {
		return appendLineLineCrossing(dst, s, base, a, b)
	}
	return appendArcLineCrossings(dst, s, base, a, b)
}

func appendLineLineCrossing(dst []Crossing, s *Segment, base float64, a, b geom.Point) []Crossing {
	d1 := Sub(s.to, s.from)
	d2 := Sub(b, a)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-12 {
		return dst // parallel; collinear overlap is not a crossing
	}
	w := Sub(a, s.from)
	t := (w.X*d2.Y - w.Y*d2.X) / denom // along the path segment
	u := (w.X*d1.Y - w.Y*d1.X) / denom // along the edge
	if t < 0 || t > 1 || u < 0 || u >= 1 {
		return dst
	}
	pt := Add(s.from, Scale(d1, t))
	return append(dst, Crossing{Distance: base + t*s.Length(), Point: pt})
}

func appendArcLineCrossings(dst []Crossing, s *Segment, base float64, a, b geom.Point) []Crossing {
	// Intersect the arc's circle with the edge's line, then keep the
	// solutions inside both the edge interval and the arc's sweep.
	d := Sub(b, a)
	f := Sub(a, s.center)
	qa := Dot(d, d)
	if qa < 1e-12 {
		return dst
	}
	qb := 2 * Dot(f, d)
	qc := Dot(f, f) - s.radius*s.radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)
	for _, u := range []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if u < 0 || u >= 1 {
			continue
		}
		pt := Add(a, Scale(d, u))
		along, ok := s.arcDistanceOf(pt)
		if !ok {
			continue
		}
		dst = append(dst, Crossing{Distance: base + along, Point: pt})
		if disc == 0 {
			break // tangent touch, single solution
		}
	}
	return dst
}

// arcDistanceOf maps a point on the arc's circle to its distance along
// the arc, reporting whether the point lies within the arc's sweep.
func (s *Segment) arcDistanceOf(pt geom.Point) (float64, bool) {
	const angleSlack = 1e-9
	phi := angleOf(Sub(pt, s.center))
	var delta float64
	if s.sweep > 0 {
		delta = normalizeAngle(phi - s.startAngle)
	} else {
		delta = normalizeAngle(s.startAngle - phi)
	}
	if delta > math.Abs(s.sweep)+angleSlack {
		return 0, false
	}
	if delta > math.Abs(s.sweep) {
		delta = math.Abs(s.sweep)
	}
	return s.radius * delta, true
}
