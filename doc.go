// Package radial computes the geometry of radial navigation menus: circles
// divided into annular sector buttons with rounded corners, each carrying an
// icon and a label laid out along curves.
//
// The package has no state and does no I/O. It turns numbers into path
// descriptions; drawing them, reacting to input and placing the menu on a
// page is left to the caller. See the menu subpackage for a renderer that
// produces complete SVG documents.
//
// # Primitives
//
// The geometry is built from three primitives: [Point], [Arc] and [Line].
// Arcs and lines are [Segment]s, directed pieces of a contour. Angles are
// always in degrees, measured counter-clockwise from the positive x axis,
// and an arc is traversed from its start angle towards its end angle. The
// direction of traversal is carried through every operation so that the
// path serializer can emit the right sweep flags.
//
// [NewFillet] computes the arc that rounds the corner between two segments,
// tangent to both.
//
// # Sectors
//
// [BuildSector] computes one button from a [SectorSpec]. A menu of n buttons
// divides the circle into n slots of 360/n degrees. Each sector is bounded by
// an inner ring, an outer ring and two connecting lines, and its four corners
// are filleted. Spacing between sectors is given as a length; since the same
// length subtends different angles on circles of different radii, the
// angular gap is computed for each ring separately (see [AngularGap]).
//
// Besides its outline, a sector has two text arcs, open arcs spanning the
// slot that icons and labels are laid out along.
//
// # Path descriptions
//
// [PathString] and [WritePath] serialize segments using the M, L, A and Z
// commands of SVG path data. All coordinates can be moved by an offset,
// which is how a menu computed around the origin is placed on a canvas.
//
// # Errors
//
// Invalid parameters produce a [*SpecError], fillets that don't fit produce
// a [*GeometryError]. Both match [ErrInvalidSpec] when they stem from
// [BuildSector]. Nothing is clamped or repaired; a caller that wants to
// degrade gracefully can retry with a smaller fillet radius.
package radial
