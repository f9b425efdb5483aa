package wikitext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	raw := `{{Legends Card Summary
|cost=3
|rarity=Common
|ability=Summon: Draw a card.
}}`
	attrs := ParseAttributes(raw)
	require.Equal(t, "3", attrs["cost"])
	require.Equal(t, "Common", attrs["rarity"])
	require.Equal(t, "Summon: Draw a card.", attrs["ability"])
	require.Len(t, attrs, 3)
}

func TestParseAttributesStripsHtml(t *testing.T) {
	attrs := ParseAttributes("|rarity=<b>Common</b>\n")
	require.Equal(t, "Common", attrs["rarity"])
}

func TestParseAttributesLaterKeyWins(t *testing.T) {
	attrs := ParseAttributes("|cost=3\n|cost=5\n")
	require.Equal(t, "5", attrs["cost"])
}

func TestParseAttributesNoBlock(t *testing.T) {
	attrs := ParseAttributes("Just some prose about a card, nothing structured.")
	require.Empty(t, attrs)
}

func TestParseAttributesPipeInsideValue(t *testing.T) {
	// a pipe inside a template invocation on the same line must not
	// start a new attribute
	attrs := ParseAttributes("|ability={{LG Attribute Icon|Fire}} damage\n|cost=2\n")
	require.Equal(t, "{{LG Attribute Icon|Fire}} damage", attrs["ability"])
	require.Equal(t, "2", attrs["cost"])
}

func TestStripNamespace(t *testing.T) {
	require.Equal(t, "Shackled", StripNamespace("Legends:Shackled"))
	require.Equal(t, "Shackled", StripNamespace("Legends: Shackled "))
	require.Equal(t, "Shackled", StripNamespace("Shackled"))
}
