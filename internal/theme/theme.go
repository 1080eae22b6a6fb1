// Package theme defines the visual theme shared by every page.
//
// A Theme is built once with Default and handed to the renderer; it is never
// mutated afterwards.
package theme

import (
	"fmt"
	"strings"
)

// Palette holds the brand colours.
type Palette struct {
	Primary      string
	PrimaryLight string
	PrimaryDark  string
	Secondary    string
	Success      string
	Warning      string
	Error        string
	Info         string
	Background   string
	Paper        string
}

// Typography holds the font stack and heading sizes (h1..h6).
type Typography struct {
	FontFamily string
	Headings   [6]string
}

// Shape holds corner radii in pixels.
type Shape struct {
	BorderRadius int
	ButtonRadius int
	CardRadius   int
}

// Theme is an immutable set of design tokens.
type Theme struct {
	palette    Palette
	typography Typography
	shape      Shape
	risk       map[string]string
	fallback   string
}

// Default returns the application theme.
func Default() Theme {
	return Theme{
		palette: Palette{
			Primary:      "#1976d2",
			PrimaryLight: "#42a5f5",
			PrimaryDark:  "#1565c0",
			Secondary:    "#f50057",
			Success:      "#4caf50",
			Warning:      "#ff9800",
			Error:        "#f44336",
			Info:         "#2196f3",
			Background:   "#f5f5f5",
			Paper:        "#ffffff",
		},
		typography: Typography{
			FontFamily: `"Roboto", "Helvetica", "Arial", sans-serif`,
			Headings:   [6]string{"2.5rem", "2rem", "1.75rem", "1.5rem", "1.25rem", "1rem"},
		},
		shape: Shape{BorderRadius: 8, ButtonRadius: 8, CardRadius: 12},
		risk: map[string]string{
			"Acceptable": "#4caf50",
			"Modéré":     "#ffeb3b",
			"Important":  "#ff9800",
			"Critique":   "#f44336",
		},
		fallback: "#9e9e9e",
	}
}

func (t Theme) Palette() Palette       { return t.palette }
func (t Theme) Typography() Typography { return t.typography }
func (t Theme) Shape() Shape           { return t.shape }

// RiskColor returns the colour of a risk level, or a neutral grey for unknown levels.
func (t Theme) RiskColor(level string) string {
	if c, ok := t.risk[level]; ok {
		return c
	}
	return t.fallback
}

// RiskClass returns the CSS class used for a risk level badge.
func RiskClass(level string) string {
	switch level {
	case "Acceptable":
		return "risk-acceptable"
	case "Modéré":
		return "risk-modere"
	case "Important":
		return "risk-important"
	case "Critique":
		return "risk-critique"
	default:
		return "risk-unknown"
	}
}

// StatusClass returns the CSS class of a document status chip.
func StatusClass(status string) string {
	switch status {
	case "validé":
		return "chip-success"
	case "archivé":
		return "chip-muted"
	default:
		return "chip-warning"
	}
}

// CSS renders the theme as custom properties plus risk badge classes.
func (t Theme) CSS() string {
	var b strings.Builder
	p := t.palette
	b.WriteString(":root {\n")
	vars := [][2]string{
		{"primary", p.Primary},
		{"primary-light", p.PrimaryLight},
		{"primary-dark", p.PrimaryDark},
		{"secondary", p.Secondary},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
		{"background", p.Background},
		{"paper", p.Paper},
	}
	for _, v := range vars {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", v[0], v[1])
	}
	fmt.Fprintf(&b, "  --font-family: %s;\n", t.typography.FontFamily)
	for i, size := range t.typography.Headings {
		fmt.Fprintf(&b, "  --h%d-size: %s;\n", i+1, size)
	}
	fmt.Fprintf(&b, "  --radius: %dpx;\n", t.shape.BorderRadius)
	fmt.Fprintf(&b, "  --button-radius: %dpx;\n", t.shape.ButtonRadius)
	fmt.Fprintf(&b, "  --card-radius: %dpx;\n", t.shape.CardRadius)
	b.WriteString("}\n")
	for _, level := range []string{"Acceptable", "Modéré", "Important", "Critique"} {
		fmt.Fprintf(&b, ".%s { background-color: %s; }\n", RiskClass(level), t.RiskColor(level))
	}
	fmt.Fprintf(&b, ".%s { background-color: %s; }\n", RiskClass(""), t.fallback)
	return b.String()
}
