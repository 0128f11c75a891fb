// Command radialnav draws a radial navigation menu as an SVG document.
//
// Usage:
//
//	radialnav [flags] -config menu.yaml
//
// The menu is described in YAML:
//
//	radius: 200
//	width: 90
//	spacing: 10
//	fillet: 10
//	items:
//	  - label: Home
//	    icon: ""
//	    href: /
//
// A config path of "-" reads the description from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/radialnav/radial/menu"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "radialnav: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("radialnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Menu description in YAML (\"-\" for standard input)")
	output := fs.String("o", "", "Output file (default: standard output)")
	debug := fs.Bool("debug", false, "Draw axes and guide circles")
	precision := fs.Int("precision", -1, "Decimals written for coordinates (default: from config)")
	verbose := fs.Bool("v", false, "Enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: radialnav [flags] -config <menu.yaml>\n\n")
		fmt.Fprintf(stderr, "Draw a radial navigation menu as an SVG document.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		fs.Usage()
		return fmt.Errorf("config file required")
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var (
		cfg menu.Config
		err error
	)
	if *configPath == "-" {
		var data []byte
		data, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg, err = menu.ParseConfig(data)
	} else {
		cfg, err = menu.LoadConfig(*configPath)
	}
	if err != nil {
		return err
	}
	if *debug {
		cfg.Debug = true
	}
	if *precision >= 0 {
		cfg.Precision = *precision
	}
	logger.Debug("loaded menu config", "path", *configPath, "items", len(cfg.Items))

	m, err := menu.Layout(cfg, logger)
	if err != nil {
		return err
	}

	if *output == "" || *output == "-" {
		return m.WriteSVG(stdout)
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := m.WriteSVG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", *output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}
	logger.Info("wrote menu", "path", *output, "size", m.Size)
	return nil
}
