package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .figma-tokens.yaml config file",
	Long:  `Create a .figma-tokens.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# figma-tokens configuration
# Keep the access token out of this file; use FIGMA_ACCESS_TOKEN or .env.local.

# Figma file key or URL
file: ""
env-file: .env.local
log-format: text # text | json

sync:
  out: tailwind.config.ts
  tokens-out: src/lib/design-system/tokens.json
  css-out: ""     # e.g. src/styles/tokens.css
  report-out: ""  # e.g. DESIGN_TOKENS.md
  content:
    - "./src/**/*.{js,jsx,ts,tsx}"
  check-content: true
  last-write-wins: false
  retries: 0

serve:
  addr: localhost:8787
  cache-ttl: 5m
  origins: [] # extra CORS origins, e.g. http://localhost:3000
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
