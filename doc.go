// Package figmatokens synchronizes design tokens from a Figma file into a
// Tailwind CSS configuration.
//
// It fetches the published color and text styles of a file through the Figma
// REST API, normalizes them into design tokens and generates the theme.extend
// section of tailwind.config.ts. Optionally it renders the same theme as CSS
// custom properties and a markdown report.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/kataras/figma-tokens" // package figmatokens
//
// # Quick start
//
//	result, err := figmatokens.Run(ctx, figmatokens.Options{
//	    AccessToken: os.Getenv("FIGMA_ACCESS_TOKEN"),
//	    FileKey:     "https://www.figma.com/design/ABC123/Design-System",
//	    CSS:         true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tailwind.config.ts", []byte(result.ConfigTS), 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. *logrus.Logger satisfies the
// interface as is.
//
// # Credentials
//
// Every call carries its own access token; nothing is read from the
// environment by this package. See pkg/setup for storing credentials in a
// project's .env.local file.
//
// # Lower level packages
//
//   - pkg/figma: API client, response cache and file key parsing.
//   - pkg/tokens: color and typography normalization, Fetch and the document walker.
//   - pkg/tailwind: theme generation and the TS, JSON and CSS renderers.
//   - pkg/formatter: the markdown report.
//   - pkg/setup: credential storage and the HTTP setup endpoints.
package figmatokens
