package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/lively"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Errorf("dimensions = %dx%d, want %dx%d", c.Width, c.Height, DefaultWidth, DefaultHeight)
	}
	if c.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", c.Title, DefaultTitle)
	}
	if c.SampleCount != 4 {
		t.Errorf("SampleCount = %d, want 4", c.SampleCount)
	}
	if c.Clear != nil {
		t.Errorf("Clear = %v, want nil", c.Clear)
	}
	if c.Input.Device != "auto" {
		t.Errorf("Input.Device = %q, want auto", c.Input.Device)
	}
	if c.Input.Sensitivity != DefaultSensitivity {
		t.Errorf("Input.Sensitivity = %g, want %g", c.Input.Sensitivity, DefaultSensitivity)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if c != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", c)
	}
}

func TestParseFullDocument(t *testing.T) {
	doc := `
width: 1920
height: 1080
title: wall
sampleCount: 1
clear:
  r: 0.1
  g: 0.2
  b: 0.3
  a: 1
input:
  device: /dev/input/event7
  sensitivity: 2.5
  start:
    x: 10
    y: 20
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if c.Width != 1920 || c.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", c.Width, c.Height)
	}
	if c.Title != "wall" {
		t.Errorf("Title = %q, want wall", c.Title)
	}
	if c.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", c.SampleCount)
	}
	if c.Clear == nil {
		t.Fatal("Clear should be set")
	}
	if c.Clear.R != 0.1 || c.Clear.G != 0.2 || c.Clear.B != 0.3 || c.Clear.A != 1 {
		t.Errorf("Clear = %+v, want {0.1 0.2 0.3 1}", *c.Clear)
	}
	if c.Input.Device != "/dev/input/event7" {
		t.Errorf("Input.Device = %q", c.Input.Device)
	}
	if c.Input.Sensitivity != 2.5 {
		t.Errorf("Input.Sensitivity = %g, want 2.5", c.Input.Sensitivity)
	}
	if c.Input.Start == nil || c.Input.Start.X != 10 || c.Input.Start.Y != 20 {
		t.Errorf("Input.Start = %+v, want {10 20}", c.Input.Start)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte("width: 640\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Width != 640 {
		t.Errorf("Width = %d, want 640", c.Width)
	}
	if c.Height != DefaultHeight {
		t.Errorf("Height = %d, want default %d", c.Height, DefaultHeight)
	}
	if c.SampleCount != 4 {
		t.Errorf("SampleCount = %d, want 4", c.SampleCount)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("width: [not a number\n"))
	if err == nil {
		t.Fatal("Parse should reject malformed YAML")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %q, want mention of parse", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"negative width", "width: -5", "width"},
		{"negative height", "height: -1", "height"},
		{"bad sample count", "sampleCount: 3", "sampleCount"},
		{"negative sensitivity", "input:\n  sensitivity: -0.5", "sensitivity"},
		{"clear component above one", "clear:\n  r: 1.5", "clear.r"},
		{"clear component below zero", "clear:\n  b: -0.1", "clear.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse should reject the document")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if c != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if c != Default() {
		t.Errorf("Load on missing file = %+v, want defaults", c)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lively.yaml")
	if err := os.WriteFile(path, []byte("width: 320\nheight: 240\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Width != 320 || c.Height != 240 {
		t.Errorf("dimensions = %dx%d, want 320x240", c.Width, c.Height)
	}
}

func TestLoadMalformedFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("width: notanumber\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should reject malformed YAML")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("error = %q, want mention of the file path", err)
	}
}

func TestClearColor(t *testing.T) {
	c := Default()
	if got := c.ClearColor(); got != lively.DefaultClearColor {
		t.Errorf("ClearColor() = %v, want default green", got)
	}

	c.Clear = &Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	want := lively.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	if got := c.ClearColor(); got != want {
		t.Errorf("ClearColor() = %v, want %v", got, want)
	}

	// Explicit transparent black stays transparent black.
	c.Clear = &Color{}
	if got := c.ClearColor(); got != (lively.Color{}) {
		t.Errorf("ClearColor() = %v, want zero color", got)
	}
}
