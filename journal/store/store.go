package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"daybook/journal/entry"
	"daybook/journal/record"

	"go.uber.org/zap"
)

// EntriesDir is the subdirectory of the journal root where records are
// written. Discovery still recurses the whole root, matching journals that
// keep records elsewhere.
const EntriesDir = "entries"

// Store holds the resident entries of one journal.
type Store struct {
	root   string
	codec  *record.Codec
	logger *zap.Logger

	entries          []*entry.Entry
	pendingDeletions []*entry.Entry
	skipped          []string
}

// New creates a store over the given journal root directory.
func New(root string, codec *record.Codec, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{root: root, codec: codec, logger: logger}
}

// Root returns the journal root directory.
func (s *Store) Root() string {
	return s.root
}

// Entries returns the resident entries in ascending creation order.
func (s *Store) Entries() []*entry.Entry {
	return s.entries
}

// PendingDeletions returns the entries scheduled for physical removal on
// the next save.
func (s *Store) PendingDeletions() []*entry.Entry {
	return s.pendingDeletions
}

// Skipped returns the record files the last Load could not decode.
func (s *Store) Skipped() []string {
	return s.skipped
}

// Files walks the journal root and returns every record file path.
func (s *Store) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), record.Extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal %s: %w", s.root, err)
	}
	return files, nil
}

// Load replaces the entry set with the decoded contents of the journal
// directory. Malformed records are skipped, never surfaced; re-running
// Load against an unchanged directory yields an equal entry sequence.
func (s *Store) Load() error {
	files, err := s.Files()
	if err != nil {
		return err
	}

	entries := make([]*entry.Entry, 0, len(files))
	skipped := make([]string, 0)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read record %s: %w", path, err)
		}
		e, err := s.codec.Decode(data)
		if err != nil {
			if errors.Is(err, record.ErrMalformed) {
				s.logger.Debug("skipping malformed record", zap.String("path", path), zap.Error(err))
				skipped = append(skipped, path)
				continue
			}
			return err
		}
		entries = append(entries, e)
	}

	entry.SortByDate(entries)
	s.entries = entries
	s.skipped = skipped
	s.pendingDeletions = nil
	s.logger.Debug("journal loaded",
		zap.Int("entries", len(entries)),
		zap.Int("skipped", len(skipped)),
	)
	return nil
}

// Apply replaces the entry set with a reconciliation result and schedules
// the given entries for deletion. The set is re-sorted by creation instant.
func (s *Store) Apply(entries, deleted []*entry.Entry) {
	entry.SortByDate(entries)
	s.entries = entries
	s.pendingDeletions = deleted
}

// Add appends a new entry, marks it modified, and keeps the date ordering.
func (s *Store) Add(e *entry.Entry) {
	e.Modified = true
	s.entries = append(s.entries, e)
	entry.SortByDate(s.entries)
}

// Save writes every modified entry to its record file and removes the
// files of entries scheduled for deletion. A failed write or a missing
// file at deletion time is fatal; records already written stay on disk.
func (s *Store) Save() error {
	dir := filepath.Join(s.root, EntriesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create entries directory: %w", err)
	}

	written := 0
	for _, e := range s.entries {
		if !e.Modified {
			continue
		}
		data, err := s.codec.Encode(e)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, record.Filename(e.ID))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write record %s: %w", path, err)
		}
		e.Modified = false
		written++
	}

	removed := 0
	for _, e := range s.pendingDeletions {
		path := filepath.Join(dir, record.Filename(e.ID))
		// No existence check: a record that vanished underneath us is an
		// integrity problem, not something to paper over.
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete record %s: %w", path, err)
		}
		removed++
	}
	s.pendingDeletions = nil

	s.logger.Debug("journal saved", zap.Int("written", written), zap.Int("removed", removed))
	return nil
}
