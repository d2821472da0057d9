package curve

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// Path is an ordered, continuous sequence of segments: each segment's
// end coincides with the next segment's start within
// ContinuityTolerance, and the total length is positive.
type Path struct {
	segments []*Segment
	cum      []float64 // cumulative length through each segment
}

// NewPath builds a Path from segments, validating continuity. Nil
// segments are not permitted; callers drop degenerate segments before
// assembly.
func NewPath(segments []*Segment) (*Path, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("path needs at least one segment")
	}
	cum := make([]float64, len(segments))
	total := 0.0
	for i, s := range segments {
		if s == nil {
			return nil, fmt.Errorf("path segment %d is nil", i)
		}
		if i > 0 {
			if gap := Dist(segments[i-1].End(), s.Start()); gap > ContinuityTolerance {
				return nil, fmt.Errorf("gap of %.6f between path segments %d and %d", gap, i-1, i)
			}
		}
		total += s.Length()
		cum[i] = total
	}
	if total < MinSegmentLength {
		return nil, fmt.Errorf("path has near-zero length %.6f", total)
	}
	return &Path{segments: segments, cum: cum}, nil
}

// Segments returns the path's segments. The slice must not be modified.
func (p *Path) Segments() []*Segment { return p.segments }

// Length returns the total arc length of the path.
func (p *Path) Length() float64 { return p.cum[len(p.cum)-1] }

// Start returns the first point of the path.
func (p *Path) Start() geom.Point { return p.segments[0].Start() }

// End returns the last point of the path.
func (p *Path) End() geom.Point { return p.segments[len(p.segments)-1].End() }

// StartDirection returns the unit tangent at the start of the path.
func (p *Path) StartDirection() geom.Point { return p.segments[0].StartDirection() }

// EndDirection returns the unit tangent at the end of the path.
func (p *Path) EndDirection() geom.Point { return p.segments[len(p.segments)-1].EndDirection() }

// locate maps a distance along the path to a segment index and a local
// distance within that segment. The distance is clamped to [0, Length].
func (p *Path) locate(dist float64) (int, float64) {
	if dist <= 0 {
		return 0, 0
	}
	if dist >= p.Length() {
		last := len(p.segments) - 1
		return last, p.segments[last].Length()
	}
	lo := 0
	for lo < len(p.cum)-1 && p.cum[lo] <= dist {
		lo++
	}
	base := 0.0
	if lo > 0 {
		base = p.cum[lo-1]
	}
	return lo, dist - base
}

// PointAt returns the point at the given distance along the path,
// clamped to [0, Length].
func (p *Path) PointAt(dist float64) geom.Point {
	i, local := p.locate(dist)
	return p.segments[i].PointAt(local)
}

// DirectionAt returns the unit tangent at the given distance along the
// path, clamped to [0, Length].
func (p *Path) DirectionAt(dist float64) geom.Point {
	i, local := p.locate(dist)
	return p.segments[i].DirectionAt(local)
}

// Shift returns the path offset orthogonally by offset (positive to the
// right of travel). Because adjacent segments meet tangentially, the
// per-segment shifts share endpoints and continuity is preserved. An
// error is returned when any segment cannot be shifted, such as inside
// a turn tighter than the offset.
func (p *Path) Shift(offset float64) (*Path, error) {
	shifted := make([]*Segment, 0, len(p.segments))
	for i, s := range p.segments {
		ss := s.Shift(offset)
		if ss == nil {
			return nil, fmt.Errorf("cannot shift segment %d by %.2f: offset consumes the curve", i, offset)
		}
		shifted = append(shifted, ss)
	}
	path, err := NewPath(shifted)
	if err != nil {
		return nil, fmt.Errorf("shift by %.2f broke path continuity: %w", offset, err)
	}
	return path, nil
}

// Reverse returns the path traversed in the opposite direction.
func (p *Path) Reverse() *Path {
	reversed := make([]*Segment, len(p.segments))
	for i, s := range p.segments {
		reversed[len(p.segments)-1-i] = s.Reverse()
	}
	path, err := NewPath(reversed)
	if err != nil {
		// Reversal preserves continuity exactly.
		panic(fmt.Sprintf("curve: reversed path invalid: %v", err))
	}
	return path
}

// Subsection returns the portion of the path between the two distances.
// Inputs are clamped to [0, Length]; an empty or inverted interval is
// an error.
func (p *Path) Subsection(from, to float64) (*Path, error) {
	from = math.Max(from, 0)
	to = math.Min(to, p.Length())
	if to-from < MinSegmentLength {
		return nil, fmt.Errorf("empty path subsection [%.4f, %.4f]", from, to)
	}
	var parts []*Segment
	base := 0.0
	for i, s := range p.segments {
		segStart, segEnd := base, p.cum[i]
		base = segEnd
		if segEnd <= from || segStart >= to {
			continue
		}
		part := s.subsegment(from-segStart, to-segStart)
		if part == nil {
			// Sliver at an interval boundary; drop it.
			continue
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("path subsection [%.4f, %.4f] has no segments", from, to)
	}
	return NewPath(parts)
}

// Flatten returns a polyline approximation of the path, including both
// endpoints, with arc chords deviating by at most tol.
func (p *Path) Flatten(tol float64) []geom.Point {
	var pts []geom.Point
	for _, s := range p.segments {
		pts = s.flattenInto(pts, tol)
	}
	return append(pts, p.End())
}

// Ring returns a closed-ring approximation of the path for polygon
// construction: like Flatten but without repeating the closing point.
// The caller is responsible for the path actually forming a loop.
func (p *Path) Ring(tol float64) []geom.Point {
	var pts []geom.Point
	for _, s := range p.segments {
		pts = s.flattenInto(pts, tol)
	}
	return pts
}
