package tailwind

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// RenderCSS writes the theme as CSS custom properties on :root:
//
//	--color-<slug>
//	--font-<slug>-family, -size, -weight, -line-height, -letter-spacing
//
// The output is lexed back before it is written; a declaration that does not
// survive the round trip is reported as an error.
func RenderCSS(w io.Writer, theme *ThemeExtension) error {
	var sb strings.Builder
	declarations := 0

	decl := func(name, value string) {
		fmt.Fprintf(&sb, "  --%s: %s;\n", EscapeIdent(name), value)
		declarations++
	}

	sb.WriteString(":root {\n")
	for _, slug := range sortedKeys(theme.Colors) {
		decl("color-"+slug, theme.Colors[slug])
	}
	for _, slug := range sortedKeys(theme.Typography) {
		entry := theme.Typography[slug]
		decl("font-"+slug+"-family", quoteString(strings.Trim(entry.FontFamily, "'")))
		decl("font-"+slug+"-size", entry.FontSize)
		decl("font-"+slug+"-weight", formatWeight(entry.FontWeight))
		decl("font-"+slug+"-line-height", entry.LineHeight)
		decl("font-"+slug+"-letter-spacing", entry.LetterSpacing)
		if entry.TextTransform != "" {
			decl("font-"+slug+"-text-transform", cssTextTransform(entry.TextTransform))
		}
		if entry.TextDecoration != "" {
			decl("font-"+slug+"-text-decoration", entry.TextDecoration)
		}
	}
	sb.WriteString("}\n")

	out := sb.String()
	parsed, err := ValidateCSS(out)
	if err != nil {
		return err
	}
	if parsed != declarations {
		return fmt.Errorf("generated CSS has %d custom properties, expected %d", parsed, declarations)
	}

	_, err = io.WriteString(w, out)
	return err
}

// ValidateCSS parses src and returns the number of custom property declarations it holds.
func ValidateCSS(src string) (int, error) {
	p := css.NewParser(parse.NewInputString(src), false)

	count := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if errors.Is(p.Err(), io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("invalid CSS: %w", p.Err())
		case css.CustomPropertyGrammar:
			if len(data) > 2 {
				count++
			}
		}
	}
}

// EscapeIdent escapes every character that may not appear unescaped in a CSS identifier.
func EscapeIdent(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r >= 0x80:
			sb.WriteRune(r)
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// cssTextTransform maps Figma text cases to text-transform keywords.
// Values without a CSS equivalent pass through.
func cssTextTransform(textCase string) string {
	switch textCase {
	case "upper":
		return "uppercase"
	case "lower":
		return "lowercase"
	case "title":
		return "capitalize"
	}
	return textCase
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
