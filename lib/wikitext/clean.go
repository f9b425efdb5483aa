package wikitext

import (
	"regexp"
	"strings"
)

var (
	boldMarker    = regexp.MustCompile(`'''`)
	numericSpace  = regexp.MustCompile(`&#32;`)
	ellipsis      = regexp.MustCompile(`\.(?:\s*\.)+`)
	attributeIcon = regexp.MustCompile(`\{\{LG Attribute Icon\|([^}]*)\}\}`)
	legendsLink   = regexp.MustCompile(`\[\[(?:Legends|LG):[^]|]*\|([^]]*)\]\]`)
	wordToken     = regexp.MustCompile(`[A-Za-z]+`)
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	punctNoSpace  = regexp.MustCompile(`([.,;:])(\S)`)
	newLeftMarker = regexp.MustCompile(`\{\{New ?Left\}\}`)
)

// CleanAbility normalizes the markup artifacts that show up in a card's
// ability text. The rewrites happen in a fixed order, each one applied
// across the whole string. This is a best-effort normalizer for one wiki
// dialect, not a wikitext renderer.
func CleanAbility(text string) string {
	text = boldMarker.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "~", "")
	text = numericSpace.ReplaceAllString(text, "")
	text = ellipsis.ReplaceAllString(text, "")
	text = attributeIcon.ReplaceAllString(text, "$1")
	text = legendsLink.ReplaceAllString(text, "$1")
	text = collapseDoubledWords(text)
	text = camelBoundary.ReplaceAllString(text, "$1 $2")
	text = punctNoSpace.ReplaceAllString(text, "$1 $2")
	text = newLeftMarker.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Fixes concatenation artifacts like "CreatureCreature" where the source
// markup glued a word to an identical copy of itself.
func collapseDoubledWords(text string) string {
	return wordToken.ReplaceAllStringFunc(text, func(token string) string {
		half := len(token) / 2
		if half < 2 || len(token)%2 != 0 {
			return token
		}
		if token[:half] == token[half:] {
			return token[:half]
		}
		return token
	})
}
