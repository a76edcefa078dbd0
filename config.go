package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Stroke        string
	Fill          string
	Width         float64
	FontSize      float64
}

func defaultConfig() *Config {
	return &Config{
		Stroke:   defaultStroke,
		Width:    defaultStrokeWidth,
		FontSize: defaultFontSize,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, ".scrawlrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(file, homeDir, config)
	return config
}

func parseConfig(r io.Reader, homeDir string, config *Config) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "stroke", "color":
			config.Stroke = value
		case "fill":
			config.Fill = value
		case "width", "strokewidth", "stroke_width":
			if w, err := strconv.ParseFloat(value, 64); err == nil && w > 0 {
				config.Width = w
			}
		case "fontsize", "font_size":
			if s, err := strconv.ParseFloat(value, 64); err == nil && s > 0 {
				config.FontSize = s
			}
		}
	}
}

// Style returns the drawing style the UI attaches to creating actions.
func (c *Config) Style() Style {
	return Style{Stroke: c.Stroke, Fill: c.Fill, Width: c.Width, FontSize: c.FontSize}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
