package menu

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/radialnav/radial"
)

// Colors of the buttons' gradient.
const (
	GradientStart = "#da1317"
	GradientEnd   = "#b10c0f"
)

// Radii of the debug grid's guide circles.
var debugCircles = [...]float64{10, 30, 50}

// WriteSVG writes the menu as a standalone SVG document.
//
// Every button is a path filled with a diagonal gradient, with its label
// centered on the label arc and its icon, in the "iconfont" class, centered on
// the icon arc. Buttons that have an href are wrapped in links. If the menu
// was configured with Debug, axes and guide circles are drawn underneath.
func (m *Menu) WriteSVG(w io.Writer) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	escape := func(s string) string {
		sb := &strings.Builder{}
		// Writing to a strings.Builder never fails.
		xml.EscapeText(sb, []byte(s))
		return sb.String()
	}
	num := func(f float64) string {
		return radial.FormatNumber(f, m.Config.Precision)
	}
	opts := radial.PathOptions{
		Offset:       radial.Vec2(m.Offset),
		MaxPrecision: m.Config.Precision,
	}

	writef(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		num(m.Size.Width), num(m.Size.Height))
	writef("<style>.g-nav:hover{fill-opacity:.85}.g-nav text{pointer-events:none}</style>\n")
	writef("<defs>\n")
	writef(`<linearGradient id="radialnav-fill" x1="1" y1="1" x2="0" y2="0"><stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient>`+"\n",
		GradientStart, GradientEnd)
	paths := make([]radial.SectorPaths, len(m.Slots))
	for i, slot := range m.Slots {
		paths[i] = slot.Sector.PathsOpt(opts)
		writef(`<path id="radialnav-icon-%d" d="%s"/>`+"\n", slot.Index, paths[i].Icon)
		writef(`<path id="radialnav-label-%d" d="%s"/>`+"\n", slot.Index, paths[i].Label)
	}
	writef("</defs>\n")

	writef(`<g class="g-main">` + "\n")
	if m.Config.Debug {
		c := m.Center()
		r := m.Config.Radius
		reach := r + 2*m.Config.Width
		writef(`<g class="g-debug" stroke="green" fill="none">` + "\n")
		writef(`<path stroke-opacity=".2" d="M%s,%s L%s,%s M%s,%s L%s,%s"/>`+"\n",
			num(c.X-reach), num(c.Y), num(c.X+reach), num(c.Y),
			num(c.X), num(c.Y-reach), num(c.X), num(c.Y+reach))
		for _, cr := range debugCircles {
			writef(`<circle stroke-opacity=".6" cx="%s" cy="%s" r="%s"/>`+"\n", num(c.X), num(c.Y), num(cr))
		}
		ring := radial.Circ(c, r)
		for _, angle := range [...]float64{0, 90, 180, 270} {
			p := ring.PointAt(angle)
			writef(`<circle fill="green" cx="%s" cy="%s" r="3"/>`+"\n", num(p.X), num(p.Y))
		}
		writef("</g>\n")
	}

	writef(`<g class="g-navs" fill="url(#radialnav-fill)">` + "\n")
	for i, slot := range m.Slots {
		if slot.Item.Href != "" {
			href := escape(slot.Item.Href)
			writef(`<a href="%s" xlink:href="%[1]s">`+"\n", href)
		}
		writef(`<g class="g-nav">` + "\n")
		writef(`<path cursor="pointer" d="%s"/>`+"\n", paths[i].Outline)
		writef(`<text text-anchor="middle" alignment-baseline="middle"><textPath href="#radialnav-label-%d" xlink:href="#radialnav-label-%[1]d" startOffset="50%%">%s</textPath></text>`+"\n",
			slot.Index, escape(slot.Item.Label))
		writef(`<text fill="#fff" text-anchor="middle" alignment-baseline="middle"><textPath class="iconfont" href="#radialnav-icon-%d" xlink:href="#radialnav-icon-%[1]d" startOffset="50%%">%s</textPath></text>`+"\n",
			slot.Index, escape(slot.Item.Icon))
		writef("</g>\n")
		if slot.Item.Href != "" {
			writef("</a>\n")
		}
	}
	writef("</g>\n")
	writef("</g>\n")
	writef("</svg>\n")
	return err
}
