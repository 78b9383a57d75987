package report

import (
	"fmt"

	"github.com/specbook-io/specbook/internal/modules/model"
)

// Theme selects one of the fixed report styles. Themes are closed style
// tables keyed by tag; adding a theme means adding one table below.
type Theme string

const (
	ThemeModern  Theme = "modern"
	ThemeClassic Theme = "classic"
	ThemeMinimal Theme = "minimal"
)

// ParseTheme validates a theme tag. The empty string selects modern.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeModern, ThemeClassic, ThemeMinimal:
		return Theme(s), nil
	case "":
		return ThemeModern, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

type rgb struct{ r, g, b int }

// style is the full visual parameter set of one theme. No runtime
// parameterization beyond selecting the theme.
type style struct {
	font string

	pageMargin  float64
	rowHeight   float64
	cellPadding float64

	titleSize    float64
	subtitleSize float64
	headerSize   float64
	cellSize     float64
	footerSize   float64

	coverTitleSize    float64
	coverSubtitleSize float64
	coverInfoSize     float64

	titleColor    rgb
	subtitleColor rgb
	textColor     rgb
	footerColor   rgb

	border     rgb
	headerFill rgb
	headerText rgb

	thumbSize float64

	// badge fill behind the status text, keyed by status value
	statusFill map[model.ItemStatus]rgb
}

var themeStyles = map[Theme]style{
	ThemeModern: {
		font:              "Helvetica",
		pageMargin:        14,
		rowHeight:         12,
		cellPadding:       2.8,
		titleSize:         22,
		subtitleSize:      12,
		headerSize:        8,
		cellSize:          7.5,
		footerSize:        8,
		coverTitleSize:    34,
		coverSubtitleSize: 20,
		coverInfoSize:     13,
		titleColor:        rgb{26, 26, 26},
		subtitleColor:     rgb{74, 74, 74},
		textColor:         rgb{26, 26, 26},
		footerColor:       rgb{107, 114, 128},
		border:            rgb{229, 231, 235},
		headerFill:        rgb{249, 250, 251},
		headerText:        rgb{55, 65, 81},
		thumbSize:         9,
		statusFill: map[model.ItemStatus]rgb{
			model.StatusApproved:     {209, 250, 229},
			model.StatusPending:      {254, 243, 199},
			model.StatusInProduction: {219, 234, 254},
		},
	},
	ThemeClassic: {
		font:              "Times",
		pageMargin:        14,
		rowHeight:         12,
		cellPadding:       2.8,
		titleSize:         20,
		subtitleSize:      11,
		headerSize:        8,
		cellSize:          8,
		footerSize:        8,
		coverTitleSize:    30,
		coverSubtitleSize: 18,
		coverInfoSize:     12,
		titleColor:        rgb{0, 0, 0},
		subtitleColor:     rgb{0, 0, 0},
		textColor:         rgb{0, 0, 0},
		footerColor:       rgb{0, 0, 0},
		border:            rgb{0, 0, 0},
		headerFill:        rgb{229, 229, 229},
		headerText:        rgb{0, 0, 0},
		thumbSize:         11,
		statusFill: map[model.ItemStatus]rgb{
			model.StatusApproved:     {229, 229, 229},
			model.StatusPending:      {245, 245, 245},
			model.StatusInProduction: {229, 229, 229},
		},
	},
	ThemeMinimal: {
		font:              "Helvetica",
		pageMargin:        16,
		rowHeight:         13,
		cellPadding:       3.6,
		titleSize:         20,
		subtitleSize:      11,
		headerSize:        8,
		cellSize:          7.5,
		footerSize:        7,
		coverTitleSize:    30,
		coverSubtitleSize: 16,
		coverInfoSize:     11,
		titleColor:        rgb{17, 24, 39},
		subtitleColor:     rgb{107, 114, 128},
		textColor:         rgb{75, 85, 99},
		footerColor:       rgb{156, 163, 175},
		border:            rgb{243, 244, 246},
		headerFill:        rgb{249, 250, 251},
		headerText:        rgb{55, 65, 81},
		thumbSize:         11,
		statusFill: map[model.ItemStatus]rgb{
			model.StatusApproved:     {236, 253, 245},
			model.StatusPending:      {255, 251, 235},
			model.StatusInProduction: {239, 246, 255},
		},
	},
}
