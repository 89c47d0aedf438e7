package tailwind

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kataras/figma-tokens/pkg/tokens"
)

// DefaultContent is the content glob written when none is configured.
var DefaultContent = []string{"./src/**/*.{js,jsx,ts,tsx}"}

// Config is a complete Tailwind configuration object.
type Config struct {
	Content []string `json:"content"`
	Theme   Theme    `json:"theme"`
	Plugins []any    `json:"plugins"`
}

// Theme holds the extend section; the default theme is left untouched.
type Theme struct {
	Extend *ThemeExtension `json:"extend"`
}

// NewConfig wraps a theme extension into a configuration.
// An empty content list falls back to DefaultContent.
func NewConfig(theme *ThemeExtension, content []string) *Config {
	if len(content) == 0 {
		content = DefaultContent
	}
	if theme == nil {
		theme = &ThemeExtension{Colors: map[string]string{}, Typography: map[string]TypographyEntry{}}
	}
	return &Config{
		Content: content,
		Theme:   Theme{Extend: theme},
		Plugins: []any{},
	}
}

// RenderTS writes cfg as a tailwind.config.ts module.
// Object keys are sorted, so equal configurations render byte-identical files.
func RenderTS(w io.Writer, cfg *Config) error {
	body, err := marshalIndent(cfg)
	if err != nil {
		return fmt.Errorf("encode tailwind config: %w", err)
	}

	_, err = fmt.Fprintf(w, "import type { Config } from 'tailwindcss';\n\nconst config: Config = %s;\n\nexport default config;", body)
	return err
}

// WriteTokensJSON writes the raw token collection as indented JSON.
func WriteTokensJSON(w io.Writer, collection *tokens.Collection) error {
	body, err := marshalIndent(collection)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	_, err = w.Write(body)
	return err
}

// marshalIndent encodes v with two-space indentation and without HTML escaping,
// matching what JSON.stringify(v, null, 2) produces for the same data.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
