// Package tailwind turns a token collection into a Tailwind CSS theme extension
// and renders it as tailwind.config.ts, tokens.json and CSS custom properties.
package tailwind

import (
	"strings"

	"github.com/kataras/figma-tokens/pkg/tokens"
)

// Logger receives generation warnings. *logrus.Logger and the CLI logger satisfy it.
type Logger interface {
	Warnf(format string, args ...any)
}

// ThemeExtension is the theme.extend section of a Tailwind configuration.
// Map keys are slugs of the token names.
type ThemeExtension struct {
	Colors     map[string]string          `json:"colors"`
	Typography map[string]TypographyEntry `json:"typography"`
}

// TypographyEntry is the CSS-like style object of one typography token.
type TypographyEntry struct {
	FontFamily     string  `json:"fontFamily"`
	FontSize       string  `json:"fontSize"`
	FontWeight     float64 `json:"fontWeight"`
	LineHeight     string  `json:"lineHeight"`
	LetterSpacing  string  `json:"letterSpacing"`
	TextTransform  string  `json:"textTransform,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
}

type options struct {
	logger        Logger
	lastWriteWins bool
}

// Option configures Generate.
type Option func(*options)

// WithLogger sets the logger that receives skipped-entry and collision warnings.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLastWriteWins makes a later token overwrite an earlier one with the same
// slug instead of receiving a numeric suffix.
func WithLastWriteWins() Option {
	return func(o *options) {
		o.lastWriteWins = true
	}
}

func (o *options) warnf(format string, args ...any) {
	if o.logger != nil {
		o.logger.Warnf(format, args...)
	}
}

// Generate folds a collection into a theme extension.
//
// Tokens without a value are skipped silently. Typography tokens whose value
// cannot be decoded are skipped with a warning. The result only depends on the
// collection, so generating twice yields equal extensions.
func Generate(collection *tokens.Collection, opts ...Option) *ThemeExtension {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	theme := &ThemeExtension{
		Colors:     make(map[string]string),
		Typography: make(map[string]TypographyEntry),
	}
	if collection == nil {
		return theme
	}

	colorKeys := newSlugger(o.lastWriteWins, collisionWarning(o, "color"))
	for _, token := range collection.Colors {
		if token.Value == "" {
			continue
		}
		theme.Colors[colorKeys.key(token.Name)] = token.Value
	}

	typographyKeys := newSlugger(o.lastWriteWins, collisionWarning(o, "typography"))
	for _, token := range collection.Typography {
		if token.Value == "" {
			continue
		}

		style, err := tokens.DecodeTypography(token.Value)
		if err != nil {
			o.warnf("Could not parse typography value for %s: %v", token.Name, err)
			continue
		}

		theme.Typography[typographyKeys.key(token.Name)] = typographyEntry(style)
	}

	return theme
}

func typographyEntry(style tokens.TypographyStyle) TypographyEntry {
	entry := TypographyEntry{
		FontFamily:    "'" + style.FontFamily + "'",
		FontSize:      style.FontSize,
		FontWeight:    style.FontWeight,
		LineHeight:    style.LineHeight,
		LetterSpacing: style.LetterSpacing,
	}
	if style.TextCase != "" {
		entry.TextTransform = strings.ToLower(style.TextCase)
	}
	if style.TextDecoration != "" {
		entry.TextDecoration = strings.ToLower(style.TextDecoration)
	}
	return entry
}

func collisionWarning(o *options, section string) func(name, slug, key string) {
	return func(name, slug, key string) {
		if o.lastWriteWins {
			o.warnf("%s token %q overwrites key %q", section, name, slug)
			return
		}
		o.warnf("%s token %q collides on key %q, stored as %q", section, name, slug, key)
	}
}
