package tokens

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// FetchError reports the API call that aborted a Fetch.
// It unwraps to the underlying cause, e.g. a *figma.APIError.
type FetchError struct {
	Op      string // "file", "styles" or "nodes"
	FileKey string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s of %s: %v", e.Op, e.FileKey, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetch retrieves the design tokens of a file.
//
// It loads the file document and the published style metadata, then looks up
// the node of every published style in a single batch. FILL styles become
// color tokens and TEXT styles become typography tokens, both in metadata
// order. The document tree walk goes to Other unfiltered. A color token takes
// the first fill of its node; a fill opacity of 0 yields alpha 00 rather than
// an opaque color.
//
// Any failed API call aborts the whole fetch with a *FetchError; no partial
// collection is returned.
func Fetch(ctx context.Context, api figma.API, fileKey string) (*Collection, error) {
	var (
		file   *figma.FileResponse
		styles *figma.StylesResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := api.GetFile(gctx, fileKey)
		if err != nil {
			return &FetchError{Op: "file", FileKey: fileKey, Err: err}
		}
		file = resp
		return nil
	})
	g.Go(func() error {
		resp, err := api.GetFileStyles(gctx, fileKey)
		if err != nil {
			return &FetchError{Op: "styles", FileKey: fileKey, Err: err}
		}
		styles = resp
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metadata := styles.Meta.Styles
	nodeIDs := make([]string, 0, len(metadata))
	for _, style := range metadata {
		nodeIDs = append(nodeIDs, style.NodeID)
	}

	nodes, err := api.GetFileNodes(ctx, fileKey, nodeIDs)
	if err != nil {
		return nil, &FetchError{Op: "nodes", FileKey: fileKey, Err: err}
	}

	colors, err := resolveColors(ctx, filterStyles(metadata, "FILL"), nodes)
	if err != nil {
		return nil, err
	}

	return &Collection{
		Colors:     colors,
		Typography: resolveTypography(filterStyles(metadata, "TEXT"), nodes),
		Other:      CollectStyles(&file.Document),
	}, nil
}

func filterStyles(styles []figma.StyleMetadata, styleType string) []figma.StyleMetadata {
	filtered := make([]figma.StyleMetadata, 0, len(styles))
	for _, style := range styles {
		if style.StyleType == styleType {
			filtered = append(filtered, style)
		}
	}
	return filtered
}

// resolveColors resolves every FILL style concurrently. Each result is stored
// in the slot of its source style so the output keeps metadata order.
func resolveColors(ctx context.Context, styles []figma.StyleMetadata, nodes *figma.NodesResponse) ([]DesignToken, error) {
	colors := make([]DesignToken, len(styles))

	g, gctx := errgroup.WithContext(ctx)
	for i, style := range styles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			colors[i] = colorToken(style, nodes.Nodes[style.NodeID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return colors, nil
}

func colorToken(style figma.StyleMetadata, node *figma.NodeData) DesignToken {
	token := DesignToken{Name: style.Name, Type: TypeColor, Status: StatusMissing}
	if node == nil {
		return token
	}

	token.Status = StatusEmpty
	if hex, ok := firstFillHex(node.Document.Fills); ok {
		token.Value = hex
		token.Status = StatusResolved
	}
	return token
}

func resolveTypography(styles []figma.StyleMetadata, nodes *figma.NodesResponse) []DesignToken {
	typography := make([]DesignToken, 0, len(styles))
	for _, style := range styles {
		typography = append(typography, typographyToken(style, nodes.Nodes[style.NodeID]))
	}
	return typography
}

func typographyToken(style figma.StyleMetadata, node *figma.NodeData) DesignToken {
	token := DesignToken{Name: style.Name, Type: TypeTypography, Status: StatusMissing}
	if node == nil {
		return token
	}

	normalized, ok := NormalizeTypography(node.Document.Style)
	if !ok {
		return token
	}

	value, err := normalized.Encode()
	if err != nil {
		return token
	}

	token.Value = value
	token.Status = StatusResolved
	return token
}
