package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// config is the optional TOML configuration. Flags given on the command
// line take precedence.
//
//	color = "off"
//	post = true
type config struct {
	Color string `toml:"color"`
	Post  bool   `toml:"post"`
}

type options struct {
	configPath string
	cfg        config
}

func (o *options) load(cmd *cobra.Command) error {
	if o.configPath != "" {
		var file config
		if _, err := toml.DecodeFile(o.configPath, &file); err != nil {
			return fmt.Errorf("read config %s: %w", o.configPath, err)
		}

		if file.Color != "" && !cmd.Flags().Changed("color") {
			o.cfg.Color = file.Color
		}
		if file.Post && !cmd.Flags().Changed("post") {
			o.cfg.Post = true
		}
	}

	switch o.cfg.Color {
	case "auto":
		// fatih/color already disables itself when stdout is not a terminal.
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", o.cfg.Color)
	}

	return nil
}
