package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// version can be overridden at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/figma-tokens
var version = figma.Version

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "figma-tokens version %s\n", version)
	},
}
