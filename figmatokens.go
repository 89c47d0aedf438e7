package figmatokens

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/formatter"
	"github.com/kataras/figma-tokens/pkg/tailwind"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

// Options configures a sync.
type Options struct {
	AccessToken   string
	FileKey       string   // file key or Figma file URL
	Content       []string // tailwind content globs, empty = tailwind.DefaultContent
	CSS           bool     // also render CSS custom properties
	Report        bool     // also render the markdown report
	LastWriteWins bool     // overwrite colliding slugs instead of suffixing them
	Retries       int      // extra attempts on rate limiting and server errors
	RetryBackoff  time.Duration
	Cache         *figma.ResponseCache // nil = a cache private to this run
	API           figma.API            // nil = figma.NewClient(AccessToken)
	Logger        Logger               // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the sync output.
type Result struct {
	FileKey    string
	FileName   string // Figma file name, set when Report is requested
	Tokens     *tokens.Collection
	Theme      *tailwind.ThemeExtension
	Config     *tailwind.Config
	ConfigTS   string // tailwind.config.ts
	TokensJSON string // tokens.json
	CSS        string // empty unless Options.CSS
	Markdown   string // empty unless Options.Report
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// ErrNoAccessToken is returned by Run when neither an access token nor an API is given.
var ErrNoAccessToken = errors.New("figma access token is required")

// Run fetches the design tokens of a Figma file and renders the Tailwind configuration.
func Run(ctx context.Context, opts Options) (*Result, error) {
	fileKey, err := figma.ResolveFileKey(opts.FileKey)
	if err != nil {
		return nil, fmt.Errorf("resolve file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	api := opts.API
	if api == nil {
		if opts.AccessToken == "" {
			return nil, ErrNoAccessToken
		}

		var clientOpts []figma.Option
		if opts.Retries > 0 {
			backoff := opts.RetryBackoff
			if backoff <= 0 {
				backoff = 2 * time.Second
			}
			clientOpts = append(clientOpts, figma.WithRetries(opts.Retries+1, backoff))
		}
		api = figma.NewClient(opts.AccessToken, clientOpts...)
	}

	responses := opts.Cache
	if responses == nil {
		responses = figma.NewResponseCache(time.Minute)
	}
	api = responses.Wrap(api, opts.AccessToken)

	opts.logInfo("Fetching design tokens from Figma...")
	collection, err := tokens.Fetch(ctx, api, fileKey)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Found %d color(s), %d text style(s) and %d document style(s)",
		len(collection.Colors), len(collection.Typography), len(collection.Other))

	for _, token := range slices.Concat(collection.Colors, collection.Typography) {
		if token.Status == tokens.StatusMissing {
			opts.logWarn("Style %q (%s) could not be resolved", token.Name, token.Type)
		}
	}

	opts.logInfo("Generating Tailwind configuration...")
	genOpts := []tailwind.Option{}
	if opts.Logger != nil {
		genOpts = append(genOpts, tailwind.WithLogger(opts.Logger))
	}
	if opts.LastWriteWins {
		genOpts = append(genOpts, tailwind.WithLastWriteWins())
	}
	theme := tailwind.Generate(collection, genOpts...)
	cfg := tailwind.NewConfig(theme, opts.Content)

	result := &Result{
		FileKey: fileKey,
		Tokens:  collection,
		Theme:   theme,
		Config:  cfg,
	}

	var buf bytes.Buffer
	if err := tailwind.RenderTS(&buf, cfg); err != nil {
		return nil, err
	}
	result.ConfigTS = buf.String()

	buf.Reset()
	if err := tailwind.WriteTokensJSON(&buf, collection); err != nil {
		return nil, err
	}
	result.TokensJSON = buf.String()

	if opts.CSS {
		buf.Reset()
		if err := tailwind.RenderCSS(&buf, theme); err != nil {
			return nil, fmt.Errorf("render css: %w", err)
		}
		result.CSS = buf.String()
	}

	if opts.Report {
		// Served from the response cache filled by Fetch.
		file, err := api.GetFile(ctx, fileKey)
		if err != nil {
			return nil, &tokens.FetchError{Op: "file", FileKey: fileKey, Err: err}
		}
		result.FileName = file.Name

		opts.logInfo("Generating markdown report...")
		result.Markdown = formatter.ToMarkdown(collection, theme, file.Name)
	}

	return result, nil
}

// ParseGlobs parses a comma-separated list of content globs.
// Brace expressions such as "*.{ts,tsx}" are kept intact.
func ParseGlobs(list string) []string {
	var (
		result []string
		depth  int
		start  int
	)

	flush := func(end int) {
		if trimmed := strings.TrimSpace(list[start:end]); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	for i, r := range list {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(list))

	return result
}
