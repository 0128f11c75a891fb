package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/radialnav/radial"
	"gopkg.in/yaml.v3"
)

// Defaults for the menu's dimensions.
const (
	DefaultRadius    = 200
	DefaultWidth     = 90
	DefaultSpacing   = 10
	DefaultFillet    = 10
	DefaultPrecision = 3
)

// Item is one button of the menu.
type Item struct {
	Label string `yaml:"label"`
	// Icon is drawn with the icon font, usually a single private-use rune.
	Icon string `yaml:"icon"`
	// Href, if set, turns the button into a link.
	Href string `yaml:"href,omitempty"`
}

// Config describes a menu.
type Config struct {
	// Radius of the inner edge of the buttons.
	Radius float64 `yaml:"radius"`
	// Width of the ring of buttons.
	Width float64 `yaml:"width"`
	// Spacing between adjacent buttons.
	Spacing float64 `yaml:"spacing"`
	// Fillet is the radius of the buttons' rounded corners.
	Fillet float64 `yaml:"fillet"`
	// Precision is the number of decimals written for coordinates.
	Precision int `yaml:"precision"`
	// Debug draws axes and guide circles behind the menu.
	Debug bool   `yaml:"debug"`
	Items []Item `yaml:"items"`
}

// DefaultConfig returns a configuration without items.
func DefaultConfig() Config {
	return Config{
		Radius:    DefaultRadius,
		Width:     DefaultWidth,
		Spacing:   DefaultSpacing,
		Fillet:    DefaultFillet,
		Precision: DefaultPrecision,
	}
}

// Spec returns the sector parameters of the item at index idx.
func (cfg Config) Spec(idx int) radial.SectorSpec {
	return radial.SectorSpec{
		SlotIndex:    idx,
		TotalSlots:   len(cfg.Items),
		Radius:       cfg.Radius,
		Width:        cfg.Width,
		Spacing:      cfg.Spacing,
		FilletRadius: cfg.Fillet,
	}
}

// Validate checks the menu's dimensions. It doesn't check whether the fillets
// fit; that is only known once the sectors are built.
func (cfg Config) Validate() error {
	if cfg.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", cfg.Precision)
	}
	spec := cfg.Spec(0)
	// A menu without items is valid, it just draws nothing.
	spec.TotalSlots = max(spec.TotalSlots, 1)
	return spec.Validate()
}

// ParseConfig parses a YAML menu description. Keys that are absent keep their
// default values; unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse menu config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid menu config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the menu description at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
