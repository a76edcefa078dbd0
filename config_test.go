package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"",
		"savedirectory = ~/boards",
		"stroke = #ff5555",
		"fill=#44475a",
		"width = 3",
		"fontsize = 20",
		"not a key value line",
		"unknownkey = whatever",
	}, "\n")

	config := defaultConfig()
	parseConfig(strings.NewReader(input), "/home/test", config)

	if want := filepath.Join("/home/test", "boards"); config.SaveDirectory != want {
		t.Errorf("SaveDirectory = %q, want %q", config.SaveDirectory, want)
	}
	if config.Stroke != "#ff5555" {
		t.Errorf("Stroke = %q, want #ff5555", config.Stroke)
	}
	if config.Fill != "#44475a" {
		t.Errorf("Fill = %q, want #44475a", config.Fill)
	}
	if config.Width != 3 {
		t.Errorf("Width = %v, want 3", config.Width)
	}
	if config.FontSize != 20 {
		t.Errorf("FontSize = %v, want 20", config.FontSize)
	}
}

func TestParseConfigBadValuesKeepDefaults(t *testing.T) {
	input := strings.Join([]string{
		"width = not-a-number",
		"fontsize = -4",
	}, "\n")

	config := defaultConfig()
	parseConfig(strings.NewReader(input), "/home/test", config)

	if config.Width != defaultStrokeWidth {
		t.Errorf("Width = %v, want default %v", config.Width, float64(defaultStrokeWidth))
	}
	if config.FontSize != defaultFontSize {
		t.Errorf("FontSize = %v, want default %v", config.FontSize, float64(defaultFontSize))
	}
}

func TestConfigStyle(t *testing.T) {
	config := &Config{Stroke: "#50fa7b", Fill: "#000000", Width: 4, FontSize: 18}
	want := Style{Stroke: "#50fa7b", Fill: "#000000", Width: 4, FontSize: 18}
	if got := config.Style(); got != want {
		t.Errorf("Style() = %+v, want %+v", got, want)
	}
}

func TestGetSavePathWithoutDirectory(t *testing.T) {
	config := defaultConfig()
	if got := config.GetSavePath("out.png"); got != "out.png" {
		t.Errorf("GetSavePath = %q, want %q", got, "out.png")
	}
}

func TestGetSavePathWithDirectory(t *testing.T) {
	dir := t.TempDir()
	config := &Config{SaveDirectory: dir}
	if got, want := config.GetSavePath("out.png"), filepath.Join(dir, "out.png"); got != want {
		t.Errorf("GetSavePath = %q, want %q", got, want)
	}
}
