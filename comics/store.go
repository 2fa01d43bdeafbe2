package comics

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the exact header row of the catalog file.
var csvHeader = []string{"code", "title", "author", "publisher", "price", "kind"}

// CatalogStore reads and writes the available-comics list from a CSV file.
// The file is the system of record for the available compartment; it is
// opened per operation and closed before the operation returns.
type CatalogStore struct {
	path string
}

// NewCatalogStore returns a store bound to the CSV file at path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Path returns the catalog file location.
func (s *CatalogStore) Path() string { return s.path }

// Load reads the catalog file and returns one comic per data row.
//
// The single header row is skipped. Rows with fewer than six fields are
// dropped silently; a non-integer price becomes 0 and the row is still kept.
// A missing or unreadable file yields an empty list together with the error,
// which callers treat as soft: the session continues with an empty catalog.
func (s *CatalogStore) Load() ([]Comic, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row lengths vary; short rows are filtered below

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	var catalog []Comic
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		price, err := strconv.Atoi(row[4])
		if err != nil {
			price = 0
		}
		catalog = append(catalog, Comic{
			Code:      row[0],
			Title:     row[1],
			Author:    row[2],
			Publisher: row[3],
			Price:     price,
			Kind:      row[5],
		})
	}
	return catalog, nil
}

// Save truncates the catalog file and writes the header followed by every
// comic in order. Failures wrap ErrPersistence.
func (s *CatalogStore) Save(catalog []Comic) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	for _, c := range catalog {
		row := []string{c.Code, c.Title, c.Author, c.Publisher, strconv.Itoa(c.Price), c.Kind}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
