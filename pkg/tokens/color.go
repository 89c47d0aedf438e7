package tokens

import (
	"fmt"
	"math"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// RGBAToHex converts channels in the 0..1 range to "#rrggbb", or "#rrggbbaa" when a < 1.
// Inputs are not validated; out-of-range values produce out-of-range digits.
func RGBAToHex(r, g, b, a float64) string {
	hex := "#" + hexByte(r) + hexByte(g) + hexByte(b)
	if a < 1 {
		hex += hexByte(a)
	}
	return hex
}

func hexByte(v float64) string {
	return fmt.Sprintf("%02x", int(math.Round(v*255)))
}

// paintHex returns the hex value of a SOLID paint. The paint opacity is used
// as alpha; an absent opacity means fully opaque.
func paintHex(p figma.Paint) (string, bool) {
	if p.Type != "SOLID" || p.Color == nil {
		return "", false
	}

	alpha := 1.0
	if p.Opacity != nil {
		alpha = *p.Opacity
	}

	return RGBAToHex(p.Color.R, p.Color.G, p.Color.B, alpha), true
}

// firstFillHex resolves the first fill of a node.
func firstFillHex(fills []figma.Paint) (string, bool) {
	if len(fills) == 0 {
		return "", false
	}
	return paintHex(fills[0])
}
