package legends

import (
	"github.com/rinebergc/tesl-card-data-scraper/lib/cardstore"
	"github.com/rinebergc/tesl-card-data-scraper/lib/wikitext"
)

// Extractor turns one wiki page into one card record. It is a pure
// function of the page title, the raw wikitext and the field
// configuration.
type Extractor struct {
	Fields Fields
}

// Extract pulls the card's attribute block out of raw wikitext and
// projects it onto the recognized fields. A page without an attribute
// block still yields a minimal record: its name and the default
// availability.
func (e Extractor) Extract(title, raw string) cardstore.Record {
	attrs := wikitext.ParseAttributes(raw)

	attrs["name"] = wikitext.StripNamespace(title)
	if attrs["availability"] == "" {
		attrs["availability"] = "Core"
	}
	if ability := attrs["ability"]; ability != "" {
		attrs["ability"] = wikitext.CleanAbility(ability)
	}

	record := cardstore.Record{}
	for _, field := range e.Fields.Columns() {
		value, ok := attrs[field]
		if ok {
			record[field] = value
		}
	}
	return record
}
