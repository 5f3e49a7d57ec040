// Package store persists the channel catalog as a CSV file on disk.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// Header is the fixed column schema of the catalog file.
var Header = []string{"ID", "Title", "Published At", "Duration", "ViewCount", "LikeCount"}

// CatalogStore reads and writes the catalog dataset at a fixed path.
// It assumes single-writer, single-run-at-a-time usage.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a store for the catalog file at path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Path returns the location of the catalog file.
func (s *CatalogStore) Path() string {
	return s.path
}

// Load reads all records from the catalog file. A missing file is an empty
// dataset, not an error. Rows with too few columns are skipped and rows
// with unparseable counts get those counts coerced to zero; a sync run
// should never be blocked by a hand-edited file.
func (s *CatalogStore) Load() ([]*model.VideoRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("path", s.path).Msg("Catalog file not found, starting with empty dataset")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]*model.VideoRecord, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] { // skip header
		if len(row) < 4 {
			skipped++
			continue
		}
		rec := &model.VideoRecord{
			ID:          strings.TrimSpace(row[0]),
			Title:       strings.TrimSpace(row[1]),
			PublishedAt: strings.TrimSpace(row[2]),
			Duration:    strings.TrimSpace(row[3]),
		}
		if rec.ID == "" {
			skipped++
			continue
		}
		if len(row) > 4 {
			rec.ViewCount = model.ParseCount(strings.TrimSpace(row[4]))
		}
		if len(row) > 5 {
			rec.LikeCount = model.ParseCount(strings.TrimSpace(row[5]))
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		log.Warn().Int("skipped_rows", skipped).Str("path", s.path).Msg("Skipped malformed catalog rows")
	}
	log.Info().Int("record_count", len(records)).Str("path", s.path).Msg("Loaded catalog")
	return records, nil
}

// Save overwrites the catalog file with the given records, header first.
// Text fields are quoted only when their content requires it (commas,
// quotes, newlines); Load accepts both forms and the output stays
// byte-deterministic for a given record sequence. The write goes through
// a temp file and an atomic rename so readers never observe a partially
// written catalog.
func (s *CatalogStore) Save(records []*model.VideoRecord) error {
	pending, err := renameio.NewPendingFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to create pending catalog file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			log.Debug().Err(err).Msg("cleanup pending catalog file")
		}
	}()

	w := csv.NewWriter(pending)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Title,
			rec.PublishedAt,
			rec.Duration,
			strconv.FormatInt(rec.ViewCount, 10),
			strconv.FormatInt(rec.LikeCount, 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write catalog row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush catalog file: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}

	log.Info().Int("record_count", len(records)).Str("path", s.path).Msg("Saved catalog")
	return nil
}
