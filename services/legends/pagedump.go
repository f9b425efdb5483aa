package legends

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PageDumper writes each fetched page's raw wikitext to a directory,
// one .txt file per card. Useful for inspecting what the extractor saw.
type PageDumper struct {
	directory string
}

func NewPageDumper(dir string) (*PageDumper, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}
	return &PageDumper{directory: dir}, nil
}

func (d *PageDumper) Write(name, contents string) {
	path := filepath.Join(d.directory, sanitizeFilename(name)+".txt")
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write page dump", "name", name, "err", err)
		return
	}
	slog.Debug("saved page", "name", name, "path", path)
}

// replaces characters that are hostile to filesystems, keeping the card
// name readable
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
}
