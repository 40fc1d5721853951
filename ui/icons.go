// Package ui provides the graphical user interface for Tab Deck.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/tabdeck/common"
)

// IconConfig defines the configuration for tray icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	TabColor    color.RGBA
}

// DefaultTrayIconConfig returns the default tray icon config.
func DefaultTrayIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{38, 50, 56, 255},   // Dark slate
		BorderColor: color.RGBA{96, 125, 139, 255}, // Blue gray
		TabColor:    color.RGBA{0, 120, 212, 255},  // Accent blue
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes. The icon is a
// stylized card with a raised tab along the top edge.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	tabTop := size / 8
	bodyTop := size / 4
	left := 1
	right := size - 2
	bottom := size - 2
	tabRight := size/2 + 1

	// Raised tab
	for y := tabTop; y < bodyTop; y++ {
		for x := left; x <= tabRight; x++ {
			img.Set(x, y, g.config.TabColor)
		}
	}

	// Card body
	for y := bodyTop; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if y == bodyTop || y == bottom || x == left || x == right {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.FillColor)
			}
		}
	}

	// Content lines
	lineColor := g.config.BorderColor
	for _, ly := range []int{bodyTop + 4, bodyTop + 8} {
		if ly >= bottom-1 {
			break
		}
		for x := left + 3; x <= right-3; x++ {
			img.Set(x, ly, lineColor)
		}
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// GenerateTrayIcon generates the application tray icon.
func GenerateTrayIcon() []byte {
	gen := NewIconGenerator(DefaultTrayIconConfig())
	return gen.Generate()
}
