package formatter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kataras/figma-tokens/pkg/tailwind"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

// ToMarkdown renders a human-readable report of one sync: the generated theme as CSS
// variables, followed by every extracted token with its status. Tokens that could not
// be resolved are listed again at the end so they are easy to spot in review.
func ToMarkdown(collection *tokens.Collection, theme *tailwind.ThemeExtension, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Design Tokens - %s\n\n", fileName))
	sb.WriteString("This document lists the design tokens extracted from the Figma file and the Tailwind theme generated from them.\n\n")

	if theme != nil {
		sb.WriteString("## Tailwind Theme\n\n")

		if len(theme.Colors) > 0 {
			sb.WriteString("### Color Palette\n\n")
			sb.WriteString("```css\n")
			for _, key := range sortedKeys(theme.Colors) {
				sb.WriteString(fmt.Sprintf("--%s: %s;\n", tailwind.EscapeIdent("color-"+key), theme.Colors[key]))
			}
			sb.WriteString("```\n\n")
		}

		if len(theme.Typography) > 0 {
			sb.WriteString("### Typography\n\n")
			sb.WriteString("| Key | Family | Size | Weight | Line Height | Letter Spacing |\n")
			sb.WriteString("|-----|--------|------|--------|-------------|----------------|\n")
			for _, key := range sortedKeys(theme.Typography) {
				e := theme.Typography[key]
				sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %g | %s | %s |\n",
					escapeCell(key), escapeCell(e.FontFamily), escapeCell(e.FontSize), e.FontWeight,
					escapeCell(e.LineHeight), escapeCell(e.LetterSpacing)))
			}
			sb.WriteString("\n")
		}
	}

	if collection == nil {
		return sb.String()
	}

	sb.WriteString("## Extracted Tokens\n\n")
	writeTokenTable(&sb, "Colors", collection.Colors)
	writeTokenTable(&sb, "Typography", collection.Typography)
	writeTokenTable(&sb, "Document Styles", collection.Other)

	var unresolved []tokens.DesignToken
	for _, group := range [][]tokens.DesignToken{collection.Colors, collection.Typography} {
		for _, token := range group {
			if token.Status != tokens.StatusResolved {
				unresolved = append(unresolved, token)
			}
		}
	}

	if len(unresolved) > 0 {
		sb.WriteString("## Unresolved Tokens\n\n")
		for _, token := range unresolved {
			sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", escapeCell(token.Name), token.Type, token.Status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeTokenTable(sb *strings.Builder, title string, group []tokens.DesignToken) {
	if len(group) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("### %s\n\n", title))
	sb.WriteString("| Name | Type | Status | Value |\n")
	sb.WriteString("|------|------|--------|-------|\n")
	for _, token := range group {
		value := token.Value
		if value != "" {
			value = "`" + value + "`"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", escapeCell(token.Name), token.Type, token.Status, value))
	}
	sb.WriteString("\n")
}

// escapeCell keeps a style name from breaking the surrounding table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
