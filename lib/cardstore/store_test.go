package cardstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testColumns = []string{"name", "availability", "cost", "ability", "charge", "guard"}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cards.csv"), testColumns)

	table, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, table.Records)
	require.Equal(t, testColumns, table.Columns)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	store := NewStore(path, testColumns)

	err := store.Write(Table{
		Columns: testColumns,
		Records: []Record{
			{"name": "Shackled", "availability": "Core", "cost": "3"},
			{"name": "Wardcrafter", "availability": "Core", "guard": "Guard"},
		},
	})
	require.NoError(t, err)

	table, err := store.Load()
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	require.Equal(t, "3", table.Records[0]["cost"])
	require.Equal(t, "Guard", table.Records[1]["guard"])
	require.Equal(t, map[string]bool{"Shackled": true, "Wardcrafter": true}, table.Names())
}

// records with disjoint optional fields still produce full rows, with the
// other record's columns rendered as empty cells
func TestWriteSparseUnion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	store := NewStore(path, testColumns)

	err := store.Write(Table{
		Columns: testColumns,
		Records: []Record{
			{"name": "Firebolt", "cost": "1"},
			{"name": "Cover", "charge": "Charge"},
		},
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(
		t,
		"name,availability,cost,ability,charge,guard\n"+
			"Firebolt,,1,,,\n"+
			"Cover,,,,Charge,\n",
		string(contents),
	)
}

func TestLoadToleratesMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	err := os.WriteFile(path, []byte("name,cost\nShackled,3\n"), 0600)
	require.NoError(t, err)

	table, err := NewStore(path, testColumns).Load()
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	require.Equal(t, "3", table.Records[0]["cost"])
	_, hasAbility := table.Records[0]["ability"]
	require.False(t, hasAbility)
}

func TestLoadFailsFastOnMalformedDataset(t *testing.T) {
	dir := t.TempDir()

	noName := filepath.Join(dir, "no_name.csv")
	require.NoError(t, os.WriteFile(noName, []byte("cost,rarity\n3,Common\n"), 0600))
	_, err := NewStore(noName, testColumns).Load()
	require.Error(t, err)

	emptyName := filepath.Join(dir, "empty_name.csv")
	require.NoError(t, os.WriteFile(emptyName, []byte("name,cost\n,3\n"), 0600))
	_, err = NewStore(emptyName, testColumns).Load()
	require.Error(t, err)

	ragged := filepath.Join(dir, "ragged.csv")
	require.NoError(t, os.WriteFile(ragged, []byte("name,cost\nShackled,3,extra\n"), 0600))
	_, err = NewStore(ragged, testColumns).Load()
	require.Error(t, err)
}
