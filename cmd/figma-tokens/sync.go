package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/tailwind"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch design tokens and write the Tailwind configuration",
	Long: `Fetch the color and text styles of the Figma file, then write
tailwind.config.ts and tokens.json. CSS custom properties and a markdown
report are written when --css-out and --report-out are set.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSync,
}

// retryBackoff is the wait unit between retried Figma requests.
var retryBackoff = 2 * time.Second

func init() {
	addSyncFlags(syncCmd)
}

// addSyncFlags registers the sync flags on cmd; the root command shares them
// because it runs sync by default.
func addSyncFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("out", "o", "tailwind.config.ts", "Tailwind config output file")
	f.String("tokens-out", "src/lib/design-system/tokens.json", "Raw tokens output file")
	f.String("css-out", "", "CSS custom properties output file (skipped when empty)")
	f.String("report-out", "", "Markdown report output file (skipped when empty)")
	f.StringSlice("content", nil, "Tailwind content globs (default ./src/**/*.{js,jsx,ts,tsx})")
	f.Bool("check-content", true, "Warn about content globs that match no files")
	f.Bool("last-write-wins", false, "Let later styles overwrite earlier ones with the same key")
	f.Int("retries", 0, "Extra attempts on rate limiting and server errors")
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := buildSyncConfig()
	if err != nil {
		return err
	}

	logger := newLogger()

	var clientOpts []figma.Option
	if cfg.APIURL != "" {
		clientOpts = append(clientOpts, figma.WithBaseURL(cfg.APIURL))
	}
	if cfg.Retries > 0 {
		clientOpts = append(clientOpts, figma.WithRetries(cfg.Retries+1, retryBackoff))
	}

	result, err := figmatokens.Run(cmd.Context(), figmatokens.Options{
		AccessToken:   cfg.Token,
		FileKey:       cfg.File,
		Content:       cfg.Content,
		CSS:           cfg.CSSOut != "",
		Report:        cfg.ReportOut != "",
		LastWriteWins: cfg.LastWriteWins,
		API:           figma.NewClient(cfg.Token, clientOpts...),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("sync design tokens: %w", err)
	}

	outputs := []struct {
		path    string
		content string
	}{
		{cfg.ConfigOut, result.ConfigTS},
		{cfg.TokensOut, result.TokensJSON},
		{cfg.CSSOut, result.CSS},
		{cfg.ReportOut, result.Markdown},
	}

	var written []string
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := writeOutput(out.path, out.content); err != nil {
			return err
		}
		written = append(written, out.path)
	}

	var matches []tailwind.ContentMatch
	if cfg.CheckContent {
		matches, err = tailwind.CheckContent(".", result.Config.Content)
		if err != nil {
			return err
		}
		for _, m := range matches {
			if m.Files == 0 && logger != nil {
				logger.Warnf("Content glob %s matches no files; Tailwind will purge the generated utilities", m.Pattern)
			}
		}
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	printSummary(cmd.OutOrStdout(), result, written, matches, !color.NoColor)
	color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Design tokens successfully generated and applied!")
	return nil
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
