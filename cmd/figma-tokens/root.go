package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figma-tokens",
	Short: "Sync design tokens from Figma into a Tailwind CSS configuration",
	Long: `Fetch the published color and text styles of a Figma file and generate
tailwind.config.ts, tokens.json and optionally CSS custom properties.

Credentials are read from --token/--file, FIGMA_ACCESS_TOKEN/FIGMA_FILE_KEY,
.figma-tokens.yaml or the project's .env.local (see "figma-tokens setup").`,
	// Default behavior: run sync when no subcommand is given.
	// loadConfig is called here because PreRunE of syncCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runSync(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.StringP("token", "t", "", "Figma personal access token")
	f.StringP("file", "f", "", "Figma file key or file URL")
	f.String("env-file", ".env.local", "Credentials file written by setup")
	f.String("config", defaultConfigFile, "Config file path")
	f.String("log-format", "text", "Log format: text|json")
	f.BoolP("verbose", "v", false, "Enable debug logging")
	f.BoolP("quiet", "q", false, "Suppress progress output")
	f.String("api-url", "", "Figma API base URL")
	_ = f.MarkHidden("api-url")

	addSyncFlags(rootCmd)

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
