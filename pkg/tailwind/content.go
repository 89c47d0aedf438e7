package tailwind

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ContentMatch is the number of project files matched by one content glob.
type ContentMatch struct {
	Pattern string
	Files   int
}

// CheckContent resolves each content glob relative to root and counts the files it matches.
// A glob matching nothing usually means Tailwind will purge every generated utility.
// Negated globs ("!…") are skipped.
func CheckContent(root string, globs []string) ([]ContentMatch, error) {
	fsys := os.DirFS(root)
	matches := make([]ContentMatch, 0, len(globs))

	for _, glob := range globs {
		if strings.HasPrefix(glob, "!") {
			continue
		}

		pattern := strings.TrimPrefix(glob, "./")
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid content glob %q", glob)
		}

		files, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", glob, err)
		}

		matches = append(matches, ContentMatch{Pattern: glob, Files: len(files)})
	}

	return matches, nil
}
