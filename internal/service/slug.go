package service

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9 ]`)
	slugCollapseRe = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL slug from a title: lowercase, strip everything that
// is not alphanumeric or a space, then collapse space runs into single
// hyphens. "Hello World!" becomes "hello-world". The transform must stay
// byte-compatible with the slugs already in the store, so no unicode
// transliteration is applied.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return slugCollapseRe.ReplaceAllString(s, "-")
}
