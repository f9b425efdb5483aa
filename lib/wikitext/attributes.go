package wikitext

import (
	"regexp"
	"strings"

	"github.com/rinebergc/tesl-card-data-scraper/lib/htmlutil"
)

// Matches one `|key=value` attribute line inside a card's template block.
// The value is bounded by the end of the line, so markup containing pipes
// inside a value never starts a new attribute.
var attributeLine = regexp.MustCompile(`(?m)\|(\w+)=(.*)$`)

// ParseAttributes scans raw wikitext for `|key=value` lines and collects
// them into a map. A repeated key is overwritten by its later occurrence.
// Html tags inside values are dropped.
func ParseAttributes(raw string) map[string]string {
	attrs := map[string]string{}
	for _, match := range attributeLine.FindAllStringSubmatch(raw, -1) {
		attrs[match[1]] = htmlutil.StripTags(match[2])
	}
	return attrs
}

// StripNamespace removes the wiki namespace prefix from a page title,
// e.g. "Legends:Shackled" becomes "Shackled".
func StripNamespace(title string) string {
	_, name, found := strings.Cut(title, ":")
	if !found {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(name)
}
