package tailwind

import (
	"regexp"
	"strconv"
	"strings"
)

// whitespace matches runs of ASCII and Unicode spaces, including the vertical tab
// and the byte order mark.
var whitespace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

// Slugify lowercases name and replaces every run of whitespace with a single hyphen.
// Leading and trailing whitespace become hyphens too. Nothing else is changed,
// so distinct names may share a slug.
func Slugify(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

// slugger hands out theme keys for one section of the theme.
// Unless lastWriteWins is set, a slug that is already taken receives the
// first free numeric suffix: "primary", "primary-2", "primary-3".
type slugger struct {
	used          map[string]bool
	lastWriteWins bool
	onCollision   func(name, slug, key string)
}

func newSlugger(lastWriteWins bool, onCollision func(name, slug, key string)) *slugger {
	return &slugger{
		used:          make(map[string]bool),
		lastWriteWins: lastWriteWins,
		onCollision:   onCollision,
	}
}

func (s *slugger) key(name string) string {
	slug := Slugify(name)
	if !s.used[slug] {
		s.used[slug] = true
		return slug
	}

	key := slug
	if !s.lastWriteWins {
		for n := 2; s.used[key]; n++ {
			key = slug + "-" + strconv.Itoa(n)
		}
		s.used[key] = true
	}

	if s.onCollision != nil {
		s.onCollision(name, slug, key)
	}
	return key
}
