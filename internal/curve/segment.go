package curve

import (
	"math"

	"github.com/ctessum/geom"
)

// Segment is a directed curve piece: either a straight line or a
// circular arc. Segments are immutable once constructed; constructors
// return nil for geometry too degenerate to represent.
type Segment struct {
	from, to geom.Point

	// Arc-only fields. For a line segment arc is false and the rest
	// are zero.
	arc        bool
	center     geom.Point
	radius     float64
	startAngle float64
	sweep      float64 // signed; positive turns counterclockwise
}

// Line constructs a straight segment from from to to, or nil if the
// endpoints are closer than MinSegmentLength.
func Line(from, to geom.Point) *Segment {
	if Dist(from, to) < MinSegmentLength {
		return nil
	}
	return &Segment{from: from, to: to}
}

// ArcWithDirection constructs the circular arc that starts at from with
// tangent direction direction and ends at to. When to lies (almost)
// straight ahead the arc collapses to a line. Returns nil when the
// endpoints coincide.
func ArcWithDirection(from, direction, to geom.Point) *Segment {
	chord := Sub(to, from)
	chordLen := Norm(chord)
	if chordLen < MinSegmentLength {
		return nil
	}
	direction = Normalize(direction)
	normal := perpCCW(direction)
	perpComponent := Dot(normal, chord)
	if math.Abs(perpComponent) < collinearTolerance*chordLen {
		return Line(from, to)
	}

	// The center sits on the normal through from, equidistant from both
	// endpoints: |from + normal·r - to|² = r².
	r := Dot(chord, chord) / (2 * perpComponent)
	center := Add(from, Scale(normal, r))
	radius := math.Abs(r)
	a0 := angleOf(Sub(from, center))
	a1 := angleOf(Sub(to, center))

	var sweep float64
	if r > 0 { // center on the left, turning counterclockwise
		sweep = normalizeAngle(a1 - a0)
	} else {
		sweep = -normalizeAngle(a0 - a1)
	}
	if radius*math.Abs(sweep) < MinSegmentLength {
		return nil
	}
	return &Segment{
		from: from, to: to,
		arc:    true,
		center: center, radius: radius,
		startAngle: a0, sweep: sweep,
	}
}

// IsArc reports whether the segment is a circular arc.
func (s *Segment) IsArc() bool { return s.arc }

// Start returns the first point of the segment.
func (s *Segment) Start() geom.Point { return s.from }

// End returns the last point of the segment.
func (s *Segment) End() geom.Point { return s.to }

// Length returns the arc length of the segment.
func (s *Segment) Length() float64 {
	if s.arc {
		return s.radius * math.Abs(s.sweep)
	}
	return Dist(s.from, s.to)
}

// PointAt returns the point at the given distance along the segment.
// The distance is clamped to [0, Length].
func (s *Segment) PointAt(dist float64) geom.Point {
	length := s.Length()
	if dist <= 0 {
		return s.from
	}
	if dist >= length {
		return s.to
	}
	if !s.arc {
		dir := Normalize(Sub(s.to, s.from))
		return Add(s.from, Scale(dir, dist))
	}
	a := s.startAngle + s.sweep*(dist/length)
	return Add(s.center, Scale(geom.Point{X: math.Cos(a), Y: math.Sin(a)}, s.radius))
}

// DirectionAt returns the unit tangent at the given distance along the
// segment, clamped to [0, Length].
func (s *Segment) DirectionAt(dist float64) geom.Point {
	if !s.arc {
		return Normalize(Sub(s.to, s.from))
	}
	length := s.Length()
	if dist < 0 {
		dist = 0
	}
	if dist > length {
		dist = length
	}
	a := s.startAngle + s.sweep*(dist/length)
	radial := geom.Point{X: math.Cos(a), Y: math.Sin(a)}
	if s.sweep > 0 {
		return perpCCW(radial)
	}
	return perpCW(radial)
}

// StartDirection returns the unit tangent at the start of the segment.
func (s *Segment) StartDirection() geom.Point { return s.DirectionAt(0) }

// EndDirection returns the unit tangent at the end of the segment.
func (s *Segment) EndDirection() geom.Point { return s.DirectionAt(s.Length()) }

// Shift returns a copy of the segment offset orthogonally. Positive
// offsets shift toward the right of the direction of travel. Arcs fail
// (returning nil) when the offset consumes the radius on the inside of
// the turn.
func (s *Segment) Shift(offset float64) *Segment {
	if offset == 0 {
		c := *s
		return &c
	}
	if !s.arc {
		n := perpCW(Normalize(Sub(s.to, s.from)))
		return Line(Add(s.from, Scale(n, offset)), Add(s.to, Scale(n, offset)))
	}
	// A counterclockwise arc turns left, so its right side is the
	// outside of the turn and the radius grows.
	newRadius := s.radius + offset
	if s.sweep < 0 {
		newRadius = s.radius - offset
	}
	if newRadius < MinSegmentLength || newRadius*math.Abs(s.sweep) < MinSegmentLength {
		return nil
	}
	fromRadial := Normalize(Sub(s.from, s.center))
	toRadial := Normalize(Sub(s.to, s.center))
	return &Segment{
		from: Add(s.center, Scale(fromRadial, newRadius)),
		to:   Add(s.center, Scale(toRadial, newRadius)),
		arc:  true,
		center: s.center, radius: newRadius,
		startAngle: s.startAngle, sweep: s.sweep,
	}
}

// Reverse returns the segment traversed in the opposite direction.
func (s *Segment) Reverse() *Segment {
	if !s.arc {
		return &Segment{from: s.to, to: s.from}
	}
	return &Segment{
		from: s.to, to: s.from,
		arc:    true,
		center: s.center, radius: s.radius,
		startAngle: s.startAngle + s.sweep, sweep: -s.sweep,
	}
}

// subsegment returns the portion of the segment between distances a and
// b (0 ≤ a < b ≤ Length), or nil if the portion is degenerate.
func (s *Segment) subsegment(a, b float64) *Segment {
	length := s.Length()
	if a < 0 {
		a = 0
	}
	if b > length {
		b = length
	}
	if b-a < MinSegmentLength {
		return nil
	}
	if !s.arc {
		return Line(s.PointAt(a), s.PointAt(b))
	}
	return &Segment{
		from: s.PointAt(a), to: s.PointAt(b),
		arc:    true,
		center: s.center, radius: s.radius,
		startAngle: s.startAngle + s.sweep*(a/length),
		sweep:      s.sweep * ((b - a) / length),
	}
}

// flattenInto appends a polyline approximation of the segment to dst,
// from the start point (inclusive) to the end point (exclusive), with
// chords deviating from an arc by at most tol.
func (s *Segment) flattenInto(dst []geom.Point, tol float64) []geom.Point {
	if !s.arc {
		return append(dst, s.from)
	}
	maxStep := 2 * math.Acos(math.Max(-1, 1-tol/s.radius))
	if maxStep <= 0 || math.IsNaN(maxStep) {
		maxStep = math.Pi / 16
	}
	n := int(math.Ceil(math.Abs(s.sweep) / maxStep))
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		a := s.startAngle + s.sweep*float64(i)/float64(n)
		dst = append(dst, Add(s.center, Scale(geom.Point{X: math.Cos(a), Y: math.Sin(a)}, s.radius)))
	}
	return dst
}
