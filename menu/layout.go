// Package menu lays out radial navigation menus described in YAML and draws
// them as SVG documents.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/radialnav/radial"
)

// Margin is the space left around the menu on the canvas.
const Margin = 10

// Slot is one laid out button.
type Slot struct {
	Index  int
	Item   Item
	Sector radial.Sector
}

// Menu is a laid out menu, ready to be drawn.
type Menu struct {
	Config Config
	Slots  []Slot
	// Bounds encloses the outlines of all buttons, in menu coordinates.
	Bounds radial.Rect
	// Offset moves menu coordinates, centered on the origin, to canvas
	// coordinates.
	Offset radial.Point
	// Size of the canvas.
	Size radial.Size
}

// Layout builds the sectors of all items and places the menu on a canvas just
// large enough to hold it.
//
// Sectors are built independently. If some of them cannot be built, Layout
// returns an error that lists every failing slot. logger may be nil.
func Layout(cfg Config, logger *slog.Logger) (*Menu, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Menu{Config: cfg}
	var errs []error
	for i, item := range cfg.Items {
		s, err := radial.BuildSector(cfg.Spec(i))
		if err != nil {
			logger.Warn("cannot build menu slot", "slot", i, "label", item.Label, "error", err)
			errs = append(errs, fmt.Errorf("slot %d (%q): %w", i, item.Label, err))
			continue
		}
		bbox := s.Outline.BoundingBox()
		logger.Debug("built menu slot", "slot", i, "label", item.Label,
			"x0", bbox.X0, "y0", bbox.Y0, "x1", bbox.X1, "y1", bbox.Y1)
		if len(m.Slots) == 0 {
			m.Bounds = bbox
		} else {
			m.Bounds = m.Bounds.Union(bbox)
		}
		m.Slots = append(m.Slots, Slot{Index: i, Item: item, Sector: s})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	m.Offset = radial.Pt(Margin-m.Bounds.X0, Margin-m.Bounds.Y0)
	m.Size = m.Bounds.Size().Grow(Margin).Ceil()
	logger.Info("laid out menu", "slots", len(m.Slots), "size", m.Size)
	return m, nil
}

// Center returns the menu's center in canvas coordinates.
func (m *Menu) Center() radial.Point {
	return radial.Origin.Translate(radial.Vec2(m.Offset))
}
