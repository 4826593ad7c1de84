package waveform

import (
	"strings"

	"github.com/EvapeGT/NetCom/pkg/errors"
)

// Theme names a visual palette for waveform rendering. Themes apply to the
// SVG and PNG sinks; the terminal sink renders with the ambient terminal
// colors.
type Theme string

// Supported themes.
const (
	// ThemeClassic is the default light palette with a blue trace.
	ThemeClassic Theme = "classic"
	// ThemeDark is a dark palette for slides and dark UIs.
	ThemeDark Theme = "dark"
	// ThemePrint is monochrome for printed handouts.
	ThemePrint Theme = "print"
)

// themes is the canonical ordering used by [Themes] and CLI help.
var themes = []Theme{ThemeClassic, ThemeDark, ThemePrint}

// Themes returns all supported themes in canonical order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ParseTheme validates a theme name case-insensitively. Unknown names
// return an INVALID_THEME error; there is no fallback theme.
func ParseTheme(s string) (Theme, error) {
	normalized := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range themes {
		if normalized == t {
			return t, nil
		}
	}
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t)
	}
	return "", errors.New(errors.ErrCodeInvalidTheme,
		"invalid theme %q (must be one of: %s)", s, strings.Join(names, ", "))
}

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	for _, theme := range themes {
		if t == theme {
			return true
		}
	}
	return false
}

// palette holds the concrete colors for a theme as hex strings, usable
// directly in SVG attributes and by the PNG canvas.
type palette struct {
	Background string
	Trace      string // the waveform line
	Grid       string // per-bit gridlines
	Rail       string // dashed rail guides
	Label      string // bit and rail labels, titles
}

// palette resolves the colors for a theme. Unknown themes fall back to the
// classic palette; callers validate before rendering.
func (t Theme) palette() palette {
	switch t {
	case ThemeDark:
		return palette{
			Background: "#1a1b26",
			Trace:      "#7dcfff",
			Grid:       "#2f3349",
			Rail:       "#565f89",
			Label:      "#c0caf5",
		}
	case ThemePrint:
		return palette{
			Background: "#ffffff",
			Trace:      "#000000",
			Grid:       "#cccccc",
			Rail:       "#888888",
			Label:      "#000000",
		}
	default:
		return palette{
			Background: "#ffffff",
			Trace:      "#0f62fe",
			Grid:       "#e0e0e0",
			Rail:       "#a8a8a8",
			Label:      "#525252",
		}
	}
}
