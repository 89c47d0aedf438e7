package tokens

import (
	"strconv"

	"github.com/kataras/figma-tokens/pkg/figma"
)

const defaultFontWeight = 400

// NormalizeTypography converts a Figma text style to a TypographyStyle.
// It returns false when the style is nil or lacks a font family or size.
//
// Line height resolves to the pixel value when set, else to the unitless
// ratio of the percent-of-font-size value, else to "normal".
func NormalizeTypography(style *figma.TypeStyle) (TypographyStyle, bool) {
	if style == nil || style.FontFamily == "" || style.FontSize == 0 {
		return TypographyStyle{}, false
	}

	lineHeight := "normal"
	switch {
	case style.LineHeightPx != 0:
		lineHeight = px(style.LineHeightPx)
	case style.LineHeightPercentFontSize != 0:
		lineHeight = formatNumber(style.LineHeightPercentFontSize / 100)
	}

	letterSpacing := "normal"
	if style.LetterSpacing != 0 {
		letterSpacing = px(style.LetterSpacing)
	}

	fontWeight := style.FontWeight
	if fontWeight == 0 {
		fontWeight = defaultFontWeight
	}

	return TypographyStyle{
		FontFamily:     style.FontFamily,
		FontSize:       px(style.FontSize),
		FontWeight:     fontWeight,
		LineHeight:     lineHeight,
		LetterSpacing:  letterSpacing,
		TextCase:       style.TextCase,
		TextDecoration: style.TextDecoration,
	}, true
}

func px(v float64) string {
	return formatNumber(v) + "px"
}

// formatNumber renders v in its shortest decimal form: 16, 1.5, 0.25.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
