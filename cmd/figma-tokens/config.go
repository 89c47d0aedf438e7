package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/setup"
	"github.com/kataras/figma-tokens/pkg/tailwind"
)

const defaultConfigFile = ".figma-tokens.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags the user actually set; defaults live in the build* functions
	// so that a config file value is not shadowed by a flag default.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. The variable names the Next.js app reads. Empty values are skipped.
	if err := k.Load(env.ProviderWithValue("FIGMA_", ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		switch key {
		case setup.TokenVar:
			return "token", value
		case setup.FileKeyVar:
			return "file", value
		}
		return "", nil
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	// 3. FIGMA_TOKENS_* variables, "__" stands for "-"
	if err := k.Load(env.Provider("FIGMA_TOKENS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps a FIGMA_TOKENS_* variable name to a config key:
//
//	FIGMA_TOKENS_SYNC_RETRIES    -> sync.retries
//	FIGMA_TOKENS_SYNC_TOKENS__OUT -> sync.tokens-out
//	FIGMA_TOKENS_ENV__FILE       -> env-file
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "FIGMA_TOKENS_"))
	s = strings.ReplaceAll(s, "__", "-")
	return strings.ReplaceAll(s, "_", ".")
}

// syncConfig is the resolved configuration of the sync command.
type syncConfig struct {
	Token         string
	File          string
	EnvFile       string
	APIURL        string
	ConfigOut     string
	TokensOut     string
	CSSOut        string
	ReportOut     string
	Content       []string
	CheckContent  bool
	LastWriteWins bool
	Retries       int
}

// buildSyncConfig constructs the sync configuration from koanf state.
// Credentials missing from flags, env and config file are read from the env file.
func buildSyncConfig() (syncConfig, error) {
	cfg := syncConfig{
		Token:         getStringWithFallback("token", "token", ""),
		File:          getStringWithFallback("file", "file", ""),
		EnvFile:       getStringWithFallback("env-file", "env-file", setup.DefaultEnvFile),
		APIURL:        getStringWithFallback("api-url", "api-url", ""),
		ConfigOut:     getStringWithFallback("out", "sync.out", "tailwind.config.ts"),
		TokensOut:     getStringWithFallback("tokens-out", "sync.tokens-out", "src/lib/design-system/tokens.json"),
		CSSOut:        getStringWithFallback("css-out", "sync.css-out", ""),
		ReportOut:     getStringWithFallback("report-out", "sync.report-out", ""),
		Content:       getGlobsWithFallback("content", "sync.content", tailwind.DefaultContent),
		CheckContent:  getBoolWithFallback("check-content", "sync.check-content", true),
		LastWriteWins: getBoolWithFallback("last-write-wins", "sync.last-write-wins", false),
		Retries:       getIntWithFallback("retries", "sync.retries", 0),
	}

	if cfg.Token == "" || cfg.File == "" {
		creds, err := setup.Load(cfg.EnvFile)
		switch {
		case err == nil:
			if cfg.Token == "" {
				cfg.Token = creds.AccessToken
			}
			if cfg.File == "" {
				cfg.File = creds.FileKey
			}
		case !errors.Is(err, setup.ErrNotConfigured):
			return cfg, err
		}
	}

	if cfg.Token == "" {
		return cfg, fmt.Errorf("figma access token is required (--token, %s or %s)", setup.TokenVar, cfg.EnvFile)
	}
	if cfg.File == "" {
		return cfg, fmt.Errorf("figma file key is required (--file, %s or %s)", setup.FileKeyVar, cfg.EnvFile)
	}

	return cfg, nil
}

// serveConfig is the resolved configuration of the serve command.
type serveConfig struct {
	Addr     string
	EnvFile  string
	CacheTTL time.Duration
	Origins  []string
}

func buildServeConfig() serveConfig {
	return serveConfig{
		Addr:     getStringWithFallback("addr", "serve.addr", "localhost:8787"),
		EnvFile:  getStringWithFallback("env-file", "env-file", setup.DefaultEnvFile),
		CacheTTL: getDurationWithFallback("cache-ttl", "serve.cache-ttl", 5*time.Minute),
		Origins:  getGlobsWithFallback("origins", "serve.origins", nil),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback accepts durations from flags and strings such as "90s" from files and env.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	for _, key := range []string{flagKey, configKey} {
		switch v := k.Get(key).(type) {
		case time.Duration:
			return v
		case string:
			if d, err := time.ParseDuration(v); err == nil {
				return d
			}
		}
	}
	return defaultVal
}

// getGlobsWithFallback reads a list from flags and YAML, or a comma-separated
// string from env variables.
func getGlobsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if s, ok := k.Get(key).(string); ok {
			if globs := figmatokens.ParseGlobs(s); len(globs) > 0 {
				return globs
			}
			continue
		}
		if globs := k.Strings(key); len(globs) > 0 {
			return globs
		}
	}
	return defaultVal
}
