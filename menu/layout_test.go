package menu

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/radialnav/radial"
	"github.com/stretchr/testify/require"
)

func sixItems() Config {
	cfg := DefaultConfig()
	for _, label := range []string{"Home", "Search", "Mail", "Settings", "Help", "Logout"} {
		cfg.Items = append(cfg.Items, Item{Label: label, Icon: "*"})
	}
	return cfg
}

func TestLayout(t *testing.T) {
	m, err := Layout(sixItems(), nil)
	require.NoError(t, err)
	require.Len(t, m.Slots, 6)
	for i, slot := range m.Slots {
		require.Equal(t, i, slot.Index)
		require.Equal(t, i, slot.Sector.Spec.SlotIndex)
		require.Equal(t, 6, slot.Sector.Spec.TotalSlots)
	}

	// The slots around 90° and 270° reach the outer radius; the ones
	// around 0° stop short of it because of the spacing.
	require.InDelta(t, 290, m.Bounds.Y1, 1e-9)
	require.InDelta(t, -290, m.Bounds.Y0, 1e-9)
	require.Less(t, m.Bounds.X1, 290.0)
	require.Greater(t, m.Bounds.X1, 280.0)
	require.InDelta(t, -m.Bounds.X0, m.Bounds.X1, 1e-6)

	require.InDelta(t, 300, m.Offset.Y, 1e-9)
	require.InDelta(t, Margin-m.Bounds.X0, m.Offset.X, 1e-9)
	require.Equal(t, radial.Sz(600, 600), m.Size)
	require.InDelta(t, m.Offset.Y, m.Center().Y, 1e-9)

	// Every outline lies on the canvas.
	for _, slot := range m.Slots {
		bbox := slot.Sector.Outline.BoundingBox().Translate(radial.Vec2(m.Offset))
		require.GreaterOrEqual(t, bbox.X0, float64(Margin)-1e-9)
		require.GreaterOrEqual(t, bbox.Y0, float64(Margin)-1e-9)
		require.LessOrEqual(t, bbox.X1, m.Size.Width)
		require.LessOrEqual(t, bbox.Y1, m.Size.Height)
	}
}

func TestLayoutNoItems(t *testing.T) {
	m, err := Layout(DefaultConfig(), nil)
	require.NoError(t, err)
	require.Empty(t, m.Slots)
	require.Equal(t, radial.Sz(2*Margin, 2*Margin), m.Size)
}

func TestLayoutInvalidConfig(t *testing.T) {
	cfg := sixItems()
	cfg.Radius = -1
	_, err := Layout(cfg, nil)
	var serr *radial.SpecError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "Radius", serr.Field)
}

func TestLayoutOversizedFillet(t *testing.T) {
	cfg := sixItems()
	cfg.Fillet = 60

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	m, err := Layout(cfg, logger)
	require.Nil(t, m)
	require.ErrorIs(t, err, radial.ErrInvalidSpec)
	require.ErrorIs(t, err, radial.ErrInvalidFillet)

	var gerr *radial.GeometryError
	require.True(t, errors.As(err, &gerr))
	require.Equal(t, 60.0, gerr.Radius)

	// Every slot is reported, not just the first one.
	for i, item := range cfg.Items {
		require.Contains(t, err.Error(), fmt.Sprintf("slot %d (%q)", i, item.Label))
	}
	require.Contains(t, logs.String(), "cannot build menu slot")
}

func TestLayoutLogsSlots(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Layout(sixItems(), logger)
	require.NoError(t, err)
	require.Equal(t, 6, bytes.Count(logs.Bytes(), []byte("built menu slot")))
	require.Contains(t, logs.String(), "laid out menu")
}
