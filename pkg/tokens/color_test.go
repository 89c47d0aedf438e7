package tokens

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kataras/figma-tokens/pkg/figma"
)

func TestRGBAToHex(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       string
	}{
		{name: "black", r: 0, g: 0, b: 0, a: 1, want: "#000000"},
		{name: "white", r: 1, g: 1, b: 1, a: 1, want: "#ffffff"},
		{name: "rounds to nearest", r: 0, g: 0.0667, b: 1, a: 1, want: "#0011ff"},
		{name: "half alpha", r: 1, g: 0, b: 0, a: 0.5, want: "#ff000080"},
		{name: "transparent", r: 0.2, g: 0.4, b: 0.6, a: 0, want: "#33669900"},
		{name: "alpha above one is opaque", r: 0, g: 0, b: 0, a: 1.2, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBAToHex(tt.r, tt.g, tt.b, tt.a))
		})
	}
}

func TestRGBAToHexShape(t *testing.T) {
	opaque := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	translucent := regexp.MustCompile(`^#[0-9a-f]{8}$`)
	rng := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		r, g, b := rng.Float64(), rng.Float64(), rng.Float64()
		assert.Regexp(t, opaque, RGBAToHex(r, g, b, 1))

		a := rng.Float64()
		if a >= 1 {
			continue
		}
		assert.Regexp(t, translucent, RGBAToHex(r, g, b, a))
	}
}

func TestPaintHex(t *testing.T) {
	half := 0.5
	zero := 0.0

	tests := []struct {
		name   string
		paint  figma.Paint
		want   string
		wantOK bool
	}{
		{
			name:   "solid without opacity is opaque",
			paint:  figma.Paint{Type: "SOLID", Color: &figma.Color{R: 1, G: 0, B: 0, A: 1}},
			want:   "#ff0000",
			wantOK: true,
		},
		{
			name:   "solid with opacity",
			paint:  figma.Paint{Type: "SOLID", Opacity: &half, Color: &figma.Color{R: 0, G: 0, B: 1}},
			want:   "#0000ff80",
			wantOK: true,
		},
		{
			name:   "explicit zero opacity is kept",
			paint:  figma.Paint{Type: "SOLID", Opacity: &zero, Color: &figma.Color{R: 0, G: 0, B: 0}},
			want:   "#00000000",
			wantOK: true,
		},
		{
			name:  "gradient",
			paint: figma.Paint{Type: "GRADIENT_LINEAR"},
		},
		{
			name:  "solid without color",
			paint: figma.Paint{Type: "SOLID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := paintHex(tt.paint)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstFillHexUsesFirstFillOnly(t *testing.T) {
	fills := []figma.Paint{
		{Type: "GRADIENT_LINEAR"},
		{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1}},
	}
	_, ok := firstFillHex(fills)
	assert.False(t, ok)

	got, ok := firstFillHex(fills[1:])
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", got)

	_, ok = firstFillHex(nil)
	assert.False(t, ok)
}
