package legends

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageDumperWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pages")
	dumper, err := NewPageDumper(dir)
	require.NoError(t, err)

	dumper.Write("Shackled", "|cost=3\n")

	contents, err := os.ReadFile(filepath.Join(dir, "Shackled.txt"))
	require.NoError(t, err)
	require.Equal(t, "|cost=3\n", string(contents))
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "A Night to Remember", sanitizeFilename("A Night to Remember"))
	require.Equal(t, "Dagoth Ur_ Reborn", sanitizeFilename("Dagoth Ur: Reborn"))
	require.Equal(t, "What_Why", sanitizeFilename("What?Why"))
}
