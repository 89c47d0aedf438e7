package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Validate Figma credentials and store them in the env file",
	Long: `Check that the access token can read the Figma file, then write
FIGMA_ACCESS_TOKEN and FIGMA_FILE_KEY to the env file (default .env.local).
Other lines of the file are kept.`,
	Example: `  figma-tokens setup --token figd_xxx --file https://www.figma.com/design/AbC123/Design-System`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSetup,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether Figma credentials are configured",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runStatus,
}

func runSetup(cmd *cobra.Command, _ []string) error {
	token := getStringWithFallback("token", "token", "")
	if token == "" {
		return fmt.Errorf("figma access token is required (--token or %s)", setup.TokenVar)
	}

	fileKey, err := figma.ResolveFileKey(getStringWithFallback("file", "file", ""))
	if err != nil {
		return fmt.Errorf("figma file: %w", err)
	}

	envFile := getStringWithFallback("env-file", "env-file", setup.DefaultEnvFile)

	var clientOpts []figma.Option
	if apiURL := getStringWithFallback("api-url", "api-url", ""); apiURL != "" {
		clientOpts = append(clientOpts, figma.WithBaseURL(apiURL))
	}

	if err := setup.Validate(cmd.Context(), figma.NewClient(token, clientOpts...), fileKey); err != nil {
		if figma.IsUnauthorized(err) {
			return fmt.Errorf("the access token was rejected by Figma: %w", err)
		}
		if figma.IsNotFound(err) {
			return fmt.Errorf("file %s was not found: %w", fileKey, err)
		}
		return err
	}

	if err := setup.Save(envFile, token, fileKey); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Figma credentials saved to %s\n", envFile)
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	envFile := getStringWithFallback("env-file", "env-file", setup.DefaultEnvFile)

	configured, err := setup.Status(envFile)
	if err != nil {
		return err
	}

	if configured {
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Figma is configured (%s)\n", envFile)
		return nil
	}

	color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "⚠ Figma is not configured, run \"figma-tokens setup\"\n")
	return nil
}
