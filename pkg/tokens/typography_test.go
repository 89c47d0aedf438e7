package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/figma-tokens/pkg/figma"
)

func TestNormalizeTypography(t *testing.T) {
	tests := []struct {
		name   string
		style  *figma.TypeStyle
		want   TypographyStyle
		wantOK bool
	}{
		{
			name:  "pixel line height",
			style: &figma.TypeStyle{FontFamily: "Inter", FontSize: 16, LineHeightPx: 24},
			want: TypographyStyle{
				FontFamily:    "Inter",
				FontSize:      "16px",
				FontWeight:    400,
				LineHeight:    "24px",
				LetterSpacing: "normal",
			},
			wantOK: true,
		},
		{
			name:  "percent line height",
			style: &figma.TypeStyle{FontFamily: "Inter", FontSize: 16, LineHeightPercentFontSize: 150},
			want: TypographyStyle{
				FontFamily:    "Inter",
				FontSize:      "16px",
				FontWeight:    400,
				LineHeight:    "1.5",
				LetterSpacing: "normal",
			},
			wantOK: true,
		},
		{
			name:  "pixel line height wins over percent",
			style: &figma.TypeStyle{FontFamily: "Inter", FontSize: 14, LineHeightPx: 20, LineHeightPercentFontSize: 142.857},
			want: TypographyStyle{
				FontFamily:    "Inter",
				FontSize:      "14px",
				FontWeight:    400,
				LineHeight:    "20px",
				LetterSpacing: "normal",
			},
			wantOK: true,
		},
		{
			name: "all attributes",
			style: &figma.TypeStyle{
				FontFamily:     "Roboto Mono",
				FontSize:       12.5,
				FontWeight:     700,
				LetterSpacing:  0.25,
				TextCase:       "UPPER",
				TextDecoration: "UNDERLINE",
			},
			want: TypographyStyle{
				FontFamily:     "Roboto Mono",
				FontSize:       "12.5px",
				FontWeight:     700,
				LineHeight:     "normal",
				LetterSpacing:  "0.25px",
				TextCase:       "UPPER",
				TextDecoration: "UNDERLINE",
			},
			wantOK: true,
		},
		{
			name:  "negative letter spacing",
			style: &figma.TypeStyle{FontFamily: "Inter", FontSize: 32, LetterSpacing: -0.5},
			want: TypographyStyle{
				FontFamily:    "Inter",
				FontSize:      "32px",
				FontWeight:    400,
				LineHeight:    "normal",
				LetterSpacing: "-0.5px",
			},
			wantOK: true,
		},
		{
			name:  "missing font family",
			style: &figma.TypeStyle{FontSize: 16, LineHeightPx: 24, FontWeight: 500},
		},
		{
			name:  "missing font size",
			style: &figma.TypeStyle{FontFamily: "Inter"},
		},
		{
			name: "nil style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTypography(tt.style)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypographyEncodeRoundTrip(t *testing.T) {
	styles := []TypographyStyle{
		{FontFamily: "Inter", FontSize: "16px", FontWeight: 400, LineHeight: "24px", LetterSpacing: "normal"},
		{FontFamily: "Inter", FontSize: "12px", FontWeight: 600, LineHeight: "1.5", LetterSpacing: "0.2px", TextCase: "UPPER", TextDecoration: "STRIKETHROUGH"},
	}

	for _, style := range styles {
		encoded, err := style.Encode()
		require.NoError(t, err)

		decoded, err := DecodeTypography(encoded)
		require.NoError(t, err)
		assert.Equal(t, style, decoded)
	}
}

func TestTypographyEncodeShape(t *testing.T) {
	style, ok := NormalizeTypography(&figma.TypeStyle{FontFamily: "Inter", FontSize: 16, LineHeightPx: 24})
	require.True(t, ok)

	encoded, err := style.Encode()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"fontFamily":"Inter","fontSize":"16px","fontWeight":400,"lineHeight":"24px","letterSpacing":"normal"}`,
		encoded)
}

func TestDecodeTypographyMalformed(t *testing.T) {
	_, err := DecodeTypography("{not json")
	assert.Error(t, err)

	for _, value := range []string{
		"null",
		"{}",
		`"Inter"`,
		`{"fontFamily":"Inter"}`,
		`{"fontSize":"16px"}`,
	} {
		_, err := DecodeTypography(value)
		assert.ErrorIs(t, err, ErrIncompleteTypography, value)
	}

	_, err = DecodeTypography("[1]")
	assert.Error(t, err)
}
