package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestColorizeForcedOffTTY(t *testing.T) {
	old := color.NoColor
	defer func() { color.NoColor = old }()

	// Piped output: the color package disables itself globally.
	color.NoColor = true
	cfg := &MainConfig{Color: true}
	if !cfg.colorize(&bytes.Buffer{}) {
		t.Error("forced color reported off")
	}
	if color.NoColor {
		t.Error("forced color left the global NoColor set, output would be plain")
	}
}

func TestColorizeDefaultOffTTY(t *testing.T) {
	cfg := &MainConfig{}
	if cfg.colorize(&bytes.Buffer{}) {
		t.Error("non-terminal writer reported colorized")
	}
}
