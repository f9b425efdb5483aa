package cardstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Record is one card, a sparse mapping from field name to value.
// A field the source page never supplied is simply absent.
type Record map[string]string

// Table is an ordered set of records plus the column order they are
// written out in. Cells missing from a record render as empty strings.
type Table struct {
	Columns []string
	Records []Record
}

// Names returns the set of record identifiers in the table.
func (t Table) Names() map[string]bool {
	names := make(map[string]bool, len(t.Records))
	for _, r := range t.Records {
		names[r["name"]] = true
	}
	return names
}

// Store reads and writes the card table as a single csv file with a
// header row and a fixed column order.
type Store struct {
	path    string
	columns []string
}

func NewStore(path string, columns []string) Store {
	return Store{
		path:    path,
		columns: columns,
	}
}

// Load reads the persisted table. A file that does not exist yet yields
// an empty table, anything else that goes wrong is surfaced as an error
// rather than silently treated as an empty dataset.
func (s Store) Load() (Table, error) {
	out := Table{Columns: s.columns}

	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return Table{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("read %s: missing header row", s.path)
	}

	header := rows[0]
	nameIdx := -1
	for i, col := range header {
		if col == "name" {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return Table{}, fmt.Errorf("read %s: no name column", s.path)
	}

	for _, row := range rows[1:] {
		record := Record{}
		for i, cell := range row {
			if cell == "" {
				continue
			}
			record[header[i]] = cell
		}
		if record["name"] == "" {
			return Table{}, fmt.Errorf("read %s: record with empty name", s.path)
		}
		out.Records = append(out.Records, record)
	}
	return out, nil
}

// Write persists the table atomically: the csv is written to a temporary
// file next to the target and renamed over it, so a crash mid-write never
// leaves a corrupt dataset behind.
func (s Store) Write(table Table) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cards-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	err = writer.Write(table.Columns)
	if err != nil {
		tmp.Close()
		return err
	}
	for _, record := range table.Records {
		row := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			row[i] = record[col]
		}
		err = writer.Write(row)
		if err != nil {
			tmp.Close()
			return err
		}
	}
	writer.Flush()
	err = writer.Error()
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
