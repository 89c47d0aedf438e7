package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/tailwind"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

// Terminal styles of the sync summary.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleGood    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleWarn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleSummary = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)

// renderStyle applies a lipgloss style to text when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// countStatus counts the tokens of group in each status.
func countStatus(group []tokens.DesignToken) (resolved, empty, missing int) {
	for _, token := range group {
		switch token.Status {
		case tokens.StatusResolved:
			resolved++
		case tokens.StatusEmpty:
			empty++
		case tokens.StatusMissing:
			missing++
		}
	}
	return
}

// printSummary writes the result of a sync: token counts, written files and content glob matches.
func printSummary(w io.Writer, result *figmatokens.Result, written []string, matches []tailwind.ContentMatch, useColors bool) {
	var body string

	line := func(label string, group []tokens.DesignToken) {
		resolved, empty, missing := countStatus(group)
		s := fmt.Sprintf("%-11s %3d", label, resolved)
		if empty > 0 {
			s += renderStyle(styleMuted, fmt.Sprintf("  %d empty", empty), useColors)
		}
		if missing > 0 {
			s += renderStyle(styleWarn, fmt.Sprintf("  %d missing", missing), useColors)
		}
		body += s + "\n"
	}

	body += renderStyle(styleTitle, "Design tokens", useColors) + "\n"
	line("Colors", result.Tokens.Colors)
	line("Typography", result.Tokens.Typography)
	line("Document", result.Tokens.Other)

	body += "\n" + renderStyle(styleTitle, "Theme", useColors) + "\n"
	body += fmt.Sprintf("%-11s %3d\n", "Colors", len(result.Theme.Colors))
	body += fmt.Sprintf("%-11s %3d\n", "Typography", len(result.Theme.Typography))

	if len(written) > 0 {
		body += "\n" + renderStyle(styleTitle, "Files", useColors) + "\n"
		for _, path := range written {
			body += renderStyle(styleGood, "✓ ", useColors) + path + "\n"
		}
	}

	if len(matches) > 0 {
		body += "\n" + renderStyle(styleTitle, "Content", useColors) + "\n"
		for _, m := range matches {
			count := fmt.Sprintf("%d file(s)", m.Files)
			if m.Files == 0 {
				count = renderStyle(styleWarn, "no files", useColors)
			}
			body += fmt.Sprintf("%s  %s\n", m.Pattern, count)
		}
	}

	body = body[:len(body)-1]
	if useColors {
		body = styleSummary.Render(body)
	}
	fmt.Fprintln(w, body)
}
