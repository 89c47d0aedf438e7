// Package tokens extracts design tokens from a Figma file.
//
// Two independent extraction paths exist. Fetch resolves every published
// FILL and TEXT style through the style metadata and node endpoints, and
// WalkStyles collects STYLE nodes found in the document tree. Their outputs
// are kept in separate collections and are never merged.
package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Token types assigned by the metadata-driven path.
// Tokens found by the tree walker keep Figma's raw style_type instead.
const (
	TypeColor      = "color"
	TypeTypography = "typography"
)

// Status tells how a token's value was obtained.
type Status string

const (
	// StatusResolved means Value holds an extracted payload.
	StatusResolved Status = "resolved"
	// StatusEmpty means the style exists but has nothing to extract,
	// e.g. a gradient fill or an effect style.
	StatusEmpty Status = "empty"
	// StatusMissing means extraction failed: the style node was not returned
	// or lacks required attributes.
	StatusMissing Status = "missing"
)

// DesignToken is one named style extracted from a Figma file.
// Name is the human-entered style name and is neither unique nor slug-safe.
// Value is a hex color, a JSON-encoded TypographyStyle, or empty.
type DesignToken struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Status Status `json:"status"`
}

// Resolved reports whether the token carries a usable value.
func (t DesignToken) Resolved() bool {
	return t.Status == StatusResolved && t.Value != ""
}

// Collection groups the tokens of one file.
// Other holds the tree walker output and may duplicate entries of Colors and Typography.
type Collection struct {
	Colors     []DesignToken `json:"colors"`
	Typography []DesignToken `json:"typography"`
	Other      []DesignToken `json:"other"`
}

// Len returns the total number of tokens in all three groups.
func (c *Collection) Len() int {
	return len(c.Colors) + len(c.Typography) + len(c.Other)
}

// TypographyStyle is a text style normalized to CSS-ready values.
// Size-like fields carry their unit; FontWeight is numeric.
// TextCase and TextDecoration hold raw Figma enum values such as "UPPER".
type TypographyStyle struct {
	FontFamily     string  `json:"fontFamily"`
	FontSize       string  `json:"fontSize"`
	FontWeight     float64 `json:"fontWeight"`
	LineHeight     string  `json:"lineHeight"`
	LetterSpacing  string  `json:"letterSpacing"`
	TextCase       string  `json:"textCase,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
}

// Encode serializes the style into the string stored in DesignToken.Value.
func (s TypographyStyle) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode typography %q: %w", s.FontFamily, err)
	}
	return string(b), nil
}

// ErrIncompleteTypography is returned by DecodeTypography for a JSON value
// that is not an object or lacks fontFamily or fontSize.
var ErrIncompleteTypography = errors.New("typography value has no font family or size")

// DecodeTypography parses a value produced by TypographyStyle.Encode.
func DecodeTypography(value string) (TypographyStyle, error) {
	var s *TypographyStyle
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		return TypographyStyle{}, fmt.Errorf("decode typography: %w", err)
	}
	if s == nil || s.FontFamily == "" || s.FontSize == "" {
		return TypographyStyle{}, fmt.Errorf("decode typography: %w", ErrIncompleteTypography)
	}
	return *s, nil
}
