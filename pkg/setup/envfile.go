// Package setup stores and validates the Figma credentials of a project.
//
// Credentials live in a dotenv file (".env.local" by default) under the names
// FIGMA_ACCESS_TOKEN and FIGMA_FILE_KEY, next to whatever else the project keeps there.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// Environment variable names of the stored credentials.
const (
	TokenVar   = "FIGMA_ACCESS_TOKEN"
	FileKeyVar = "FIGMA_FILE_KEY"
)

// DefaultEnvFile is the credentials file used when none is configured.
const DefaultEnvFile = ".env.local"

// ErrNotConfigured is returned by Load when the env file lacks either credential.
var ErrNotConfigured = errors.New("figma credentials are not configured")

// Credentials is a stored access token and file key pair.
type Credentials struct {
	AccessToken string
	FileKey     string
}

// Status reports whether the env file at path holds both credentials.
// A missing file is not an error.
func Status(path string) (bool, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read env file %s: %w", path, err)
	}

	_, hasToken := values[TokenVar]
	_, hasFileKey := values[FileKeyVar]
	return hasToken && hasFileKey, nil
}

// Load reads the stored credentials. It fails with ErrNotConfigured when
// either value is absent or empty.
func Load(path string) (Credentials, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, ErrNotConfigured
		}
		return Credentials{}, fmt.Errorf("read env file %s: %w", path, err)
	}

	creds := Credentials{AccessToken: values[TokenVar], FileKey: values[FileKeyVar]}
	if creds.AccessToken == "" || creds.FileKey == "" {
		return Credentials{}, ErrNotConfigured
	}
	return creds, nil
}

// Save writes the credentials to the env file at path. Every other non-blank line
// is kept in place, previous credential lines are dropped and the new ones are
// appended. The file is created when it does not exist.
func Save(path, accessToken, fileKey string) error {
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" ||
			strings.HasPrefix(line, TokenVar+"=") ||
			strings.HasPrefix(line, FileKeyVar+"=") {
			continue
		}
		lines = append(lines, line)
	}

	lines = append(lines, TokenVar+"="+accessToken, FileKeyVar+"="+fileKey)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		return fmt.Errorf("write env file %s: %w", path, err)
	}
	return nil
}

// Validate checks that api can read the file. It makes a single GetFile call.
func Validate(ctx context.Context, api figma.API, fileKey string) error {
	if _, err := api.GetFile(ctx, fileKey); err != nil {
		return fmt.Errorf("validate figma credentials for file %s: %w", fileKey, err)
	}
	return nil
}
