package legends

// Fields is the configuration of recognized card fields. Details are the
// categorical and free-text fields, keywords are the presence-style
// ability tags. Together they decide what survives extraction and the
// column order of the persisted csv.
type Fields struct {
	Details  []string `json:"details"`
	Keywords []string `json:"keywords"`
}

// Columns returns the csv column order: the record identifier first,
// then details, then keywords. The order is fixed by configuration, not
// by map traversal, so it is identical across runs.
func (f Fields) Columns() []string {
	columns := make([]string, 0, 1+len(f.Details)+len(f.Keywords))
	columns = append(columns, "name")
	columns = append(columns, f.Details...)
	columns = append(columns, f.Keywords...)
	return columns
}

func DefaultFields() Fields {
	return Fields{
		Details: []string{
			"availability", "deckcode", "type", "attribute", "ability", "cost", "rarity", "image",
		},
		Keywords: []string{
			"activate", "asilence", "assemble", "banish", "battle", "beast form", "betray",
			"breakthrough", "change", "charge", "consume", "copy", "cover", "drain", "empower",
			"equip", "exalt", "expertise", "guard", "heal", "indestructible", "invade",
			"last gasp", "lethal", "mobilize", "move", "pilfer", "plot", "prophecy", "rally",
			"regenerate", "sacrifice", "shackle", "shout", "silence", "slay", "steal", "summon",
			"transform", "treasure hunt", "uniqueability", "unsummon", "veteran", "ward",
			"wax and wane", "wounded",
		},
	}
}
