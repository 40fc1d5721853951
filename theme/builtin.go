package theme

// Builtin theme keys.
const (
	KeyDark      = "dark"
	KeyLight     = "light"
	KeyLegacy    = "legacy"
	KeyBlue      = "blue"
	KeyOceanBlue = "ocean_blue"
)

// builtinThemes is the compiled-in theme table. Custom themes loaded
// from disk may shadow these by key.
func builtinThemes() map[string]Theme {
	return map[string]Theme{
		KeyDark: {
			Name:        "Dark",
			Description: "Dark theme with purple accents",
			Stylesheet: `
window { background-color: #1e1e1e; color: #ffffff; }
notebook > header > tabs > tab { background-color: #2d2d2d; color: #ffffff; padding: 8px 16px; }
notebook > header > tabs > tab:checked { background-color: #3c3c3c; }
notebook > header > tabs > tab:hover { background-color: #3c3c3c; }
button { background-color: #6c3483; color: #ffffff; border: none; padding: 6px 12px; border-radius: 3px; }
button:hover { background-color: #7d3c98; }
entry, textview { background-color: #2d2d2d; color: #ffffff; border: 1px solid #3c3c3c; }
`,
			Palette: map[string]Color{
				RoleWindow:          RGB(0x1e, 0x1e, 0x1e),
				RoleWindowText:      RGB(0xff, 0xff, 0xff),
				RoleBase:            RGB(0x2d, 0x2d, 0x2d),
				RoleAlternateBase:   RGB(0x3c, 0x3c, 0x3c),
				RoleToolTipBase:     RGB(0x2d, 0x2d, 0x2d),
				RoleToolTipText:     RGB(0xff, 0xff, 0xff),
				RoleText:            RGB(0xff, 0xff, 0xff),
				RoleButton:          RGB(0x6c, 0x34, 0x83),
				RoleButtonText:      RGB(0xff, 0xff, 0xff),
				RoleBrightText:      RGB(0xbb, 0x86, 0xfc),
				RoleLink:            RGB(0xbb, 0x86, 0xfc),
				RoleHighlight:       RGB(0x6c, 0x34, 0x83),
				RoleHighlightedText: RGB(0xff, 0xff, 0xff),
			},
		},
		KeyLight: {
			Name:        "Light",
			Description: "Light theme with blue accents",
			Stylesheet: `
window { background-color: #f0f0f0; color: #000000; }
notebook > header > tabs > tab { background-color: #e0e0e0; color: #000000; padding: 8px 16px; }
notebook > header > tabs > tab:checked { background-color: #ffffff; }
notebook > header > tabs > tab:hover { background-color: #f5f5f5; }
button { background-color: #0078d4; color: #ffffff; border: none; padding: 6px 12px; border-radius: 3px; }
button:hover { background-color: #106ebe; }
entry, textview { background-color: #ffffff; color: #000000; border: 1px solid #cccccc; }
`,
			Palette: map[string]Color{
				RoleWindow:          RGB(0xf0, 0xf0, 0xf0),
				RoleWindowText:      RGB(0x00, 0x00, 0x00),
				RoleBase:            RGB(0xff, 0xff, 0xff),
				RoleAlternateBase:   RGB(0xf5, 0xf5, 0xf5),
				RoleToolTipBase:     RGB(0xff, 0xff, 0xff),
				RoleToolTipText:     RGB(0x00, 0x00, 0x00),
				RoleText:            RGB(0x00, 0x00, 0x00),
				RoleButton:          RGB(0x00, 0x78, 0xd4),
				RoleButtonText:      RGB(0xff, 0xff, 0xff),
				RoleBrightText:      RGB(0x00, 0x78, 0xd4),
				RoleLink:            RGB(0x00, 0x78, 0xd4),
				RoleHighlight:       RGB(0x00, 0x78, 0xd4),
				RoleHighlightedText: RGB(0xff, 0xff, 0xff),
			},
		},
		KeyLegacy: {
			Name:        "Legacy",
			Description: "Classic light look with Windows 11 inspired spacing",
			Stylesheet: `
window { background-color: #f3f3f3; color: #000000; font-family: "Segoe UI", sans-serif; }
notebook > header > tabs > tab { background-color: #f0f0f0; color: #000000; padding: 8px 16px; }
notebook > header > tabs > tab:checked { background-color: #ffffff; font-weight: bold; }
notebook > header > tabs > tab:hover { background-color: #e8e8e8; }
button { background-color: #ffffff; color: #000000; border: 1px solid #d0d0d0; padding: 6px 12px; border-radius: 3px; }
button:hover { background-color: #f8f8f8; }
entry:focus, textview:focus { border-color: #0078d4; }
`,
			Palette: map[string]Color{
				RoleWindow:          RGB(0xf3, 0xf3, 0xf3),
				RoleWindowText:      RGB(0x00, 0x00, 0x00),
				RoleBase:            RGB(0xff, 0xff, 0xff),
				RoleAlternateBase:   RGB(0xf8, 0xf8, 0xf8),
				RoleToolTipBase:     RGB(0xff, 0xff, 0xff),
				RoleToolTipText:     RGB(0x00, 0x00, 0x00),
				RoleText:            RGB(0x00, 0x00, 0x00),
				RoleButton:          RGB(0xff, 0xff, 0xff),
				RoleButtonText:      RGB(0x00, 0x00, 0x00),
				RoleBrightText:      RGB(0x00, 0x78, 0xd4),
				RoleLink:            RGB(0x00, 0x78, 0xd4),
				RoleHighlight:       RGB(0x00, 0x78, 0xd4),
				RoleHighlightedText: RGB(0xff, 0xff, 0xff),
			},
		},
		KeyBlue: {
			Name:        "Blue",
			Description: "Deep blue theme",
			Stylesheet: `
window { background-color: #0d1b2a; color: #e0e1dd; }
notebook > header > tabs > tab { background-color: #1b263b; color: #e0e1dd; padding: 8px 16px; }
notebook > header > tabs > tab:checked { background-color: #415a77; }
button { background-color: #415a77; color: #e0e1dd; border: none; padding: 6px 12px; border-radius: 3px; }
button:hover { background-color: #778da9; }
entry, textview { background-color: #1b263b; color: #e0e1dd; border: 1px solid #415a77; }
`,
			Palette: map[string]Color{
				RoleWindow:          RGB(0x0d, 0x1b, 0x2a),
				RoleWindowText:      RGB(0xe0, 0xe1, 0xdd),
				RoleBase:            RGB(0x1b, 0x26, 0x3b),
				RoleAlternateBase:   RGB(0x41, 0x5a, 0x77),
				RoleToolTipBase:     RGB(0x1b, 0x26, 0x3b),
				RoleToolTipText:     RGB(0xe0, 0xe1, 0xdd),
				RoleText:            RGB(0xe0, 0xe1, 0xdd),
				RoleButton:          RGB(0x41, 0x5a, 0x77),
				RoleButtonText:      RGB(0xe0, 0xe1, 0xdd),
				RoleBrightText:      RGB(0x77, 0x8d, 0xa9),
				RoleLink:            RGB(0x77, 0x8d, 0xa9),
				RoleHighlight:       RGB(0x41, 0x5a, 0x77),
				RoleHighlightedText: RGB(0xe0, 0xe1, 0xdd),
			},
		},
		KeyOceanBlue: {
			Name:        "Ocean Blue",
			Description: "Dark blue-green theme, the default for dark mode",
			Stylesheet: `
window { background-color: #0f2027; color: #e0f2f1; }
notebook > header > tabs > tab { background-color: #203a43; color: #e0f2f1; padding: 8px 16px; }
notebook > header > tabs > tab:checked { background-color: #2c5364; }
button { background-color: #2c5364; color: #e0f2f1; border: none; padding: 6px 12px; border-radius: 3px; }
button:hover { background-color: #3a6b80; }
entry, textview { background-color: #203a43; color: #e0f2f1; border: 1px solid #2c5364; }
`,
			Palette: map[string]Color{
				RoleWindow:          RGB(0x0f, 0x20, 0x27),
				RoleWindowText:      RGB(0xe0, 0xf2, 0xf1),
				RoleBase:            RGB(0x20, 0x3a, 0x43),
				RoleAlternateBase:   RGB(0x2c, 0x53, 0x64),
				RoleToolTipBase:     RGB(0x20, 0x3a, 0x43),
				RoleToolTipText:     RGB(0xe0, 0xf2, 0xf1),
				RoleText:            RGB(0xe0, 0xf2, 0xf1),
				RoleButton:          RGB(0x2c, 0x53, 0x64),
				RoleButtonText:      RGB(0xe0, 0xf2, 0xf1),
				RoleBrightText:      RGB(0x4d, 0xd0, 0xe1),
				RoleLink:            RGB(0x4d, 0xd0, 0xe1),
				RoleHighlight:       RGB(0x2c, 0x53, 0x64),
				RoleHighlightedText: RGB(0xe0, 0xf2, 0xf1),
			},
		},
	}
}
