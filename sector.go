package radial

import (
	"errors"
	"fmt"
	"math"
)

// Radii of the text arcs, as fractions of the ring width measured from the
// inner ring.
const (
	IconArcPosition  = 0.3
	LabelArcPosition = 0.6
)

// SectorSpec describes one sector of a menu.
//
// The menu's circle is divided into TotalSlots equal slots; the sector
// occupies slot SlotIndex. Its inner edge lies on a circle of Radius, its
// outer edge Width further out. Spacing is the linear gap left between
// adjacent sectors and FilletRadius the radius of the sector's rounded
// corners.
type SectorSpec struct {
	SlotIndex    int
	TotalSlots   int
	Radius       float64
	Width        float64
	Spacing      float64
	FilletRadius float64
}

// Validate returns a [*SpecError] if spec cannot describe a sector.
func (spec SectorSpec) Validate() error {
	if spec.TotalSlots <= 0 {
		return &SpecError{Field: "TotalSlots", Value: float64(spec.TotalSlots), Reason: "must be positive"}
	}
	if spec.SlotIndex < 0 || spec.SlotIndex >= spec.TotalSlots {
		return &SpecError{
			Field:  "SlotIndex",
			Value:  float64(spec.SlotIndex),
			Reason: fmt.Sprintf("must be in [0, %d)", spec.TotalSlots),
		}
	}
	fields := [...]struct {
		name     string
		value    float64
		positive bool
	}{
		{"Radius", spec.Radius, true},
		{"Width", spec.Width, false},
		{"Spacing", spec.Spacing, false},
		{"FilletRadius", spec.FilletRadius, false},
	}
	for _, f := range fields {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			return &SpecError{Field: f.name, Value: f.value, Reason: "must be finite"}
		case f.positive && f.value <= 0:
			return &SpecError{Field: f.name, Value: f.value, Reason: "must be positive"}
		case f.value < 0:
			return &SpecError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}
	return nil
}

// SlotAngles returns the angular range, in degrees, allotted to the slot
// before any spacing is carved out. The ranges of all slots tile [0, 360)
// exactly: the end of slot i is bit-identical to the start of slot i+1.
func (spec SectorSpec) SlotAngles() (start, end float64) {
	n := float64(spec.TotalSlots)
	i := float64(spec.SlotIndex)
	return 360 * i / n, 360 * (i + 1) / n
}

// SectorGeometry is the closed outline of a sector.
//
// The rings and lines are trimmed to the points where the fillets touch them,
// so that together with the fillets they form one closed contour.
type SectorGeometry struct {
	// OuterRing and InnerRing both run counter-clockwise.
	OuterRing Arc
	InnerRing Arc
	// Line1 runs from the end of the outer ring to the end of the inner ring,
	// Line2 from the start of the inner ring to the start of the outer ring.
	Line1 Line
	Line2 Line

	// Fillets between outer ring and Line1, outer ring and Line2, and so on.
	// Each runs from its point on the ring to its point on the line.
	OuterFillet1 Fillet
	OuterFillet2 Fillet
	InnerFillet1 Fillet
	InnerFillet2 Fillet
}

// Contour returns the outline as one closed loop, in traversal order: along
// the outer ring, down Line1, back along the inner ring and up Line2.
// Fillets of zero radius are included as degenerate arcs.
func (g SectorGeometry) Contour() []Segment {
	return []Segment{
		g.OuterRing,
		g.OuterFillet1.Arc,
		g.Line1,
		g.InnerFillet1.Arc.Reverse(),
		g.InnerRing.Reverse(),
		g.InnerFillet2.Arc,
		g.Line2,
		g.OuterFillet2.Arc.Reverse(),
	}
}

// BoundingBox returns the smallest rectangle enclosing the outline.
func (g SectorGeometry) BoundingBox() Rect {
	return SegmentsBoundingBox(g.Contour())
}

// TextArc is an open arc that curved text is laid out along. It isn't part
// of the sector's visible outline.
type TextArc struct {
	Arc Arc
}

// Path returns the arc's path description.
func (t TextArc) Path(opts PathOptions) string {
	return PathStringOpt([]Segment{t.Arc}, false, opts)
}

// Sector is the geometry of one menu button.
type Sector struct {
	Spec    SectorSpec
	Outline SectorGeometry
	// IconArc anchors the icon glyph, LabelArc the text label. Both span the
	// whole slot, counter-clockwise.
	IconArc  TextArc
	LabelArc TextArc
}

// SectorPaths holds the path descriptions of a sector.
type SectorPaths struct {
	Outline string
	Icon    string
	Label   string
}

// Paths serializes the sector, moving every point by offset.
func (s Sector) Paths(offset Point) SectorPaths {
	return s.PathsOpt(PathOptions{Offset: Vec2(offset)})
}

// PathsOpt is like [Sector.Paths] but allows more control over the output.
func (s Sector) PathsOpt(opts PathOptions) SectorPaths {
	return SectorPaths{
		Outline: PathStringOpt(s.Outline.Contour(), true, opts),
		Icon:    s.IconArc.Path(opts),
		Label:   s.LabelArc.Path(opts),
	}
}

// BuildSector computes the outline and text arcs of the sector described by
// spec.
//
// It returns a [*SpecError] if spec is invalid and a [*GeometryError] if the
// fillet radius is too large for the sector. Both match [ErrInvalidSpec].
// BuildSector is a pure function of spec.
func BuildSector(spec SectorSpec) (Sector, error) {
	if err := spec.Validate(); err != nil {
		return Sector{}, err
	}

	start, end := spec.SlotAngles()
	outerRadius := spec.Radius + spec.Width
	outerGap := AngularGap(spec.Spacing, outerRadius)
	innerGap := AngularGap(spec.Spacing, spec.Radius)
	if innerGap >= end-start {
		return Sector{}, &SpecError{
			Field:  "Spacing",
			Value:  spec.Spacing,
			Reason: fmt.Sprintf("gap of %g° leaves nothing of the %g° slot", innerGap, end-start),
		}
	}

	outer := Circ(Origin, outerRadius)
	inner := Circ(Origin, spec.Radius)
	g := SectorGeometry{
		OuterRing: outer.Arc(start+outerGap/2, end-outerGap/2),
		InnerRing: inner.Arc(start+innerGap/2, end-innerGap/2),
	}
	g.Line1 = Line{g.OuterRing.End(), g.InnerRing.End()}
	g.Line2 = Line{g.InnerRing.Start(), g.OuterRing.Start()}

	// With a single slot and no spacing, the rings are full circles and
	// their two ends coincide, so each corner names the ends that meet.
	corners := [...]struct {
		name      string
		ring      Arc
		ringStart bool
		line      Line
		lineStart bool
		dst       *Fillet
	}{
		{"outer ring and line 1", g.OuterRing, false, g.Line1, true, &g.OuterFillet1},
		{"outer ring and line 2", g.OuterRing, true, g.Line2, false, &g.OuterFillet2},
		{"inner ring and line 1", g.InnerRing, false, g.Line1, false, &g.InnerFillet1},
		{"inner ring and line 2", g.InnerRing, true, g.Line2, true, &g.InnerFillet2},
	}
	for _, c := range corners {
		at := endpoint(c.ring, c.ringStart)
		f, err := filletAt(c.ring, c.ringStart, c.line, c.lineStart, at, spec.FilletRadius)
		if err != nil {
			var gerr *GeometryError
			if errors.As(err, &gerr) {
				return Sector{}, slotError(spec, "%s: %s", c.name, gerr.Reason)
			}
			return Sector{}, err
		}
		*c.dst = f
	}
	if err := g.trim(spec); err != nil {
		return Sector{}, err
	}
	for i, seg := range g.Contour() {
		if seg.IsNaN() || seg.IsInf() {
			return Sector{}, slotError(spec, "segment %d of the outline is not finite", i)
		}
	}

	return Sector{
		Spec:     spec,
		Outline:  g,
		IconArc:  TextArc{Circ(Origin, spec.Radius+IconArcPosition*spec.Width).Arc(start, end)},
		LabelArc: TextArc{Circ(Origin, spec.Radius+LabelArcPosition*spec.Width).Arc(start, end)},
	}, nil
}

// trim shortens rings and lines to the fillets' tangent points. It fails if
// the two fillets on a primitive overlap.
func (g *SectorGeometry) trim(spec SectorSpec) error {
	g.OuterRing.StartAngle = trimAngle(g.OuterRing, g.OuterRing.StartAngle, g.OuterFillet2.A)
	g.OuterRing.EndAngle = trimAngle(g.OuterRing, g.OuterRing.EndAngle, g.OuterFillet1.A)
	g.InnerRing.StartAngle = trimAngle(g.InnerRing, g.InnerRing.StartAngle, g.InnerFillet2.A)
	g.InnerRing.EndAngle = trimAngle(g.InnerRing, g.InnerRing.EndAngle, g.InnerFillet1.A)
	if g.OuterRing.Sweep() < 0 {
		return slotError(spec, "fillets overlap on the outer ring")
	}
	if g.InnerRing.Sweep() < 0 {
		return slotError(spec, "fillets overlap on the inner ring")
	}

	line1 := Line{g.OuterFillet1.B, g.InnerFillet1.B}
	if line1.P1.Sub(line1.P0).Dot(g.Line1.P1.Sub(g.Line1.P0)) < 0 {
		return slotError(spec, "fillets overlap on line 1")
	}
	line2 := Line{g.InnerFillet2.B, g.OuterFillet2.B}
	if line2.P1.Sub(line2.P0).Dot(g.Line2.P1.Sub(g.Line2.P0)) < 0 {
		return slotError(spec, "fillets overlap on line 2")
	}
	g.Line1, g.Line2 = line1, line2
	return nil
}

// trimAngle moves angle, an endpoint of ring, to the angle of pt on the ring.
func trimAngle(ring Arc, angle float64, pt Point) float64 {
	return angle + deltaAngle(angle, pt.Sub(ring.Center).Angle())
}

func slotError(spec SectorSpec, format string, args ...any) *GeometryError {
	return &GeometryError{
		Slot:   spec.SlotIndex,
		Radius: spec.FilletRadius,
		Reason: fmt.Sprintf(format, args...),
	}
}
