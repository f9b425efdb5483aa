package legends

import (
	"testing"

	"github.com/rinebergc/tesl-card-data-scraper/lib/cardstore"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract("Legends:Shackled", "|cost=3\n|rarity=Common\n")
	require.Equal(t, "Shackled", record["name"])
	require.Equal(t, "3", record["cost"])
	require.Equal(t, "Common", record["rarity"])
	require.Equal(t, "Core", record["availability"])
	// nothing else was on the page
	require.Len(t, record, 4)
}

func TestExtractAvailability(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract("Legends:Firebolt", "|cost=1\n")
	require.Equal(t, "Core", record["availability"])

	record = extractor.Extract("Legends:Firebolt", "|availability=Expert\n|cost=1\n")
	require.Equal(t, "Expert", record["availability"])

	record = extractor.Extract("Legends:Firebolt", "|availability=\n|cost=1\n")
	require.Equal(t, "Core", record["availability"])
}

func TestExtractStripsHtml(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract("Legends:Shackled", "|rarity=<b>Common</b>\n")
	require.Equal(t, "Common", record["rarity"])
}

func TestExtractCleansAbility(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract(
		"Legends:Firebolt",
		"|ability='''Summon''': Deal {{LG Attribute Icon|Fire}} damage.\n",
	)
	require.Equal(t, "Summon: Deal Fire damage.", record["ability"])
}

func TestExtractDropsUnrecognizedKeys(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract("Legends:Shackled", "|cost=3\n|obscurefield=junk\n")
	_, ok := record["obscurefield"]
	require.False(t, ok)
	require.Equal(t, "3", record["cost"])
}

func TestExtractKeywordPresence(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract("Legends:Wardcrafter", "|cost=2\n|ward=Ward\n|guard=\n")
	require.Equal(t, "Ward", record["ward"])
	// a keyword line that is present but empty still survives projection
	_, ok := record["guard"]
	require.True(t, ok)
	_, ok = record["charge"]
	require.False(t, ok)
}

func TestExtractEmptyPage(t *testing.T) {
	extractor := Extractor{Fields: DefaultFields()}

	record := extractor.Extract("Legends:Mystery", "Prose with no attribute block at all.")
	require.Equal(t, cardstore.Record{
		"name":         "Mystery",
		"availability": "Core",
	}, record)
}

func TestFieldsColumnsStable(t *testing.T) {
	fields := DefaultFields()
	require.Equal(t, fields.Columns(), fields.Columns())
	require.Equal(t, "name", fields.Columns()[0])
	require.Equal(t, "availability", fields.Columns()[1])
}
