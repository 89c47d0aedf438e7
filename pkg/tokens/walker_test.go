package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/figma-tokens/pkg/figma"
)

func solid(r, g, b float64) []figma.Paint {
	return []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: r, G: g, B: b, A: 1}}}
}

func TestWalkStylesPreOrder(t *testing.T) {
	root := &figma.Node{
		ID:   "0:0",
		Type: "DOCUMENT",
		Children: []figma.Node{
			{
				ID:   "1:0",
				Type: "CANVAS",
				Children: []figma.Node{
					{
						ID:        "1:1",
						Type:      "STYLE",
						Name:      "Brand/Primary",
						StyleType: "FILL",
						Fills:     solid(0, 0.0667, 1),
						Children: []figma.Node{
							{ID: "1:2", Type: "STYLE", Name: "Nested", StyleType: "TEXT"},
						},
					},
					{ID: "1:3", Type: "FRAME", Name: "Not a style"},
				},
			},
			{ID: "2:1", Type: "STYLE", Name: "Shadow", StyleType: "EFFECT"},
		},
	}

	got := CollectStyles(root)
	require.Len(t, got, 3)
	assert.Equal(t, DesignToken{Name: "Brand/Primary", Type: "FILL", Value: "#0011ff", Status: StatusResolved}, got[0])
	assert.Equal(t, DesignToken{Name: "Nested", Type: "TEXT", Status: StatusEmpty}, got[1])
	assert.Equal(t, DesignToken{Name: "Shadow", Type: "EFFECT", Status: StatusEmpty}, got[2])
}

func TestWalkStylesTwoDepths(t *testing.T) {
	root := &figma.Node{
		Type: "DOCUMENT",
		Children: []figma.Node{
			{Type: "STYLE", Name: "Shallow", StyleType: "FILL", Fills: solid(1, 1, 1)},
			{
				Type: "FRAME",
				Children: []figma.Node{{
					Type: "GROUP",
					Children: []figma.Node{
						{Type: "STYLE", Name: "Deep", StyleType: "FILL", Fills: solid(0, 0, 0)},
					},
				}},
			},
		},
	}

	var names []string
	for token := range WalkStyles(root) {
		names = append(names, token.Name)
	}
	assert.Equal(t, []string{"Shallow", "Deep"}, names)
}

func TestWalkStylesRootIsStyle(t *testing.T) {
	root := &figma.Node{Type: "STYLE", Name: "Root", StyleType: "FILL", Fills: []figma.Paint{{Type: "GRADIENT_RADIAL"}}}

	got := CollectStyles(root)
	require.Len(t, got, 1)
	assert.Equal(t, StatusEmpty, got[0].Status)
	assert.Empty(t, got[0].Value)
}

func TestWalkStylesStopsEarly(t *testing.T) {
	root := &figma.Node{
		Type: "DOCUMENT",
		Children: []figma.Node{
			{Type: "STYLE", Name: "A"},
			{Type: "STYLE", Name: "B"},
			{Type: "STYLE", Name: "C"},
		},
	}

	var seen []string
	for token := range WalkStyles(root) {
		seen = append(seen, token.Name)
		if token.Name == "B" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestCollectStylesEmptyTree(t *testing.T) {
	assert.Empty(t, CollectStyles(&figma.Node{Type: "DOCUMENT"}))
	assert.NotNil(t, CollectStyles(nil))
}
