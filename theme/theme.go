// Package theme manages the application's visual themes: a builtin
// table plus custom themes loaded from the user's themes directory,
// with YAML import/export.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yllada/tabdeck/common"
)

// Palette color roles. Every palette key must be one of these.
const (
	RoleWindow          = "window"
	RoleWindowText      = "window_text"
	RoleBase            = "base"
	RoleAlternateBase   = "alternate_base"
	RoleToolTipBase     = "tool_tip_base"
	RoleToolTipText     = "tool_tip_text"
	RoleText            = "text"
	RoleButton          = "button"
	RoleButtonText      = "button_text"
	RoleBrightText      = "bright_text"
	RoleLink            = "link"
	RoleHighlight       = "highlight"
	RoleHighlightedText = "highlighted_text"
)

var validRoles = map[string]struct{}{
	RoleWindow: {}, RoleWindowText: {}, RoleBase: {}, RoleAlternateBase: {},
	RoleToolTipBase: {}, RoleToolTipText: {}, RoleText: {}, RoleButton: {},
	RoleButtonText: {}, RoleBrightText: {}, RoleLink: {}, RoleHighlight: {},
	RoleHighlightedText: {},
}

// Color is an RGBA value. In YAML it reads from either a hex string
// ("#1e1e1e", "#1e1e1eff") or a 3/4-element channel list ([30, 30, 30]);
// it always writes back as a hex string.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	var c Color
	c.A = 255
	switch len(s) {
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("%w: bad hex color %q", common.ErrInvalidTheme, s)
		}
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("%w: bad hex color %q", common.ErrInvalidTheme, s)
		}
	default:
		return Color{}, fmt.Errorf("%w: bad hex color %q", common.ErrInvalidTheme, s)
	}
	return c, nil
}

// UnmarshalYAML accepts the two encodings custom theme files use.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var channels []int
		if err := value.Decode(&channels); err != nil {
			return err
		}
		if len(channels) != 3 && len(channels) != 4 {
			return fmt.Errorf("%w: color list needs 3 or 4 channels, got %d",
				common.ErrInvalidTheme, len(channels))
		}
		for _, ch := range channels {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("%w: color channel %d out of range", common.ErrInvalidTheme, ch)
			}
		}
		*c = Color{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2]), A: 255}
		if len(channels) == 4 {
			c.A = uint8(channels[3])
		}
		return nil
	default:
		return fmt.Errorf("%w: color must be a hex string or channel list", common.ErrInvalidTheme)
	}
}

// MarshalYAML writes the canonical hex form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// Theme is one named look: a GTK stylesheet plus an optional color
// palette keyed by the fixed role set.
type Theme struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Stylesheet  string           `yaml:"stylesheet,omitempty"`
	Palette     map[string]Color `yaml:"palette,omitempty"`
}

// Validate checks the theme record for structural problems.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: missing name", common.ErrInvalidTheme)
	}
	var bad []string
	for role := range t.Palette {
		if _, ok := validRoles[role]; !ok {
			bad = append(bad, role)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("%w: unknown palette roles: %s",
			common.ErrInvalidTheme, strings.Join(bad, ", "))
	}
	return nil
}

// IsDark guesses whether a theme is dark from its window color.
// Themes without a palette count as light.
func (t Theme) IsDark() bool {
	window, ok := t.Palette[RoleWindow]
	if !ok {
		return false
	}
	// Perceived luminance, integer approximation.
	luma := (299*int(window.R) + 587*int(window.G) + 114*int(window.B)) / 1000
	return luma < 128
}
