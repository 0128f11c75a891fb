package radial

// Segment is one primitive of a contour: an [Arc] or a [Line].
//
// Segments are directed. Start and End report the points in traversal order
// and Tangents reports the unit direction of travel at both of them.
type Segment interface {
	Start() Point
	End() Point
	// Tangents returns the unit direction of travel at the start and at the
	// end of the segment.
	Tangents() (Vec2, Vec2)
	// BoundingBox returns the smallest rectangle that encloses the segment.
	BoundingBox() Rect
	// Length returns the length of the segment.
	Length() float64
	// IsInf and IsNaN report whether any of the segment's parameters are
	// infinite or NaN.
	IsInf() bool
	IsNaN() bool

	segment()
}

var (
	_ Segment = Arc{}
	_ Segment = Line{}
)

func (Arc) segment()  {}
func (Line) segment() {}

// SegmentsBoundingBox returns the union of the bounding boxes of segs. It
// returns the zero Rect for an empty slice.
func SegmentsBoundingBox(segs []Segment) Rect {
	if len(segs) == 0 {
		return Rect{}
	}
	bbox := segs[0].BoundingBox()
	for _, seg := range segs[1:] {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}
