package tokens

import (
	"iter"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// WalkStyles returns a lazy pre-order sequence of the tokens of every STYLE
// node under root, root included. Siblings are visited in document order.
//
// A FILL style whose first fill is SOLID gets its hex value; every other
// style yields an empty value.
func WalkStyles(root *figma.Node) iter.Seq[DesignToken] {
	return func(yield func(DesignToken) bool) {
		walkStyles(root, yield)
	}
}

// CollectStyles drains WalkStyles into a slice.
func CollectStyles(root *figma.Node) []DesignToken {
	tokens := []DesignToken{}
	for token := range WalkStyles(root) {
		tokens = append(tokens, token)
	}
	return tokens
}

func walkStyles(node *figma.Node, yield func(DesignToken) bool) bool {
	if node == nil {
		return true
	}

	if node.Type == "STYLE" {
		if !yield(styleNodeToken(node)) {
			return false
		}
	}

	for i := range node.Children {
		if !walkStyles(&node.Children[i], yield) {
			return false
		}
	}

	return true
}

func styleNodeToken(node *figma.Node) DesignToken {
	token := DesignToken{
		Name:   node.Name,
		Type:   node.StyleType,
		Status: StatusEmpty,
	}

	if node.StyleType == "FILL" {
		if hex, ok := firstFillHex(node.Fills); ok {
			token.Value = hex
			token.Status = StatusResolved
		}
	}

	return token
}
