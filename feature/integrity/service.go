package integrity

import (
	"os"
	"path/filepath"
	"strings"

	"daybook/journal/record"
	"daybook/journal/store"

	"go.uber.org/zap"
)

// Report is the outcome of a journal integrity check.
type Report struct {
	// Entries is the number of entries currently loaded.
	Entries int `json:"entries"`
	// DuplicateIdentities lists identities shared by more than one loaded
	// entry. Reconciliation resolves these as "first match wins".
	DuplicateIdentities []string `json:"duplicate_identities"`
	// MalformedFiles lists record files that failed to decode.
	MalformedFiles []string `json:"malformed_files"`
	// MisnamedFiles lists record files whose name does not match the
	// upper-cased identity they contain.
	MisnamedFiles []string `json:"misnamed_files"`
	// MissingInstant lists identities of entries without a creation
	// instant (e.g. parsed from a header with no title line).
	MissingInstant []string `json:"missing_instant"`
}

// Clean reports whether the check found nothing to flag.
func (r *Report) Clean() bool {
	return len(r.DuplicateIdentities) == 0 &&
		len(r.MalformedFiles) == 0 &&
		len(r.MisnamedFiles) == 0 &&
		len(r.MissingInstant) == 0
}

// Service runs integrity checks over one journal.
type Service struct {
	store  *store.Store
	codec  *record.Codec
	logger *zap.Logger
}

// NewService creates a new integrity service. The store is expected to be
// loaded by the caller.
func NewService(st *store.Store, codec *record.Codec, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, codec: codec, logger: logger}
}

// Check scans the journal directory and the loaded entry set and returns
// the combined report.
func (s *Service) Check() (*Report, error) {
	report := &Report{Entries: len(s.store.Entries())}

	seen := make(map[string]int)
	for _, e := range s.store.Entries() {
		id := strings.ToLower(e.ID)
		seen[id]++
		if seen[id] == 2 {
			report.DuplicateIdentities = append(report.DuplicateIdentities, id)
		}
		if e.Date.IsZero() {
			report.MissingInstant = append(report.MissingInstant, id)
		}
	}

	files, err := s.store.Files()
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		e, err := s.codec.Decode(data)
		if err != nil {
			report.MalformedFiles = append(report.MalformedFiles, path)
			continue
		}
		if filepath.Base(path) != record.Filename(e.ID) {
			report.MisnamedFiles = append(report.MisnamedFiles, path)
		}
	}

	s.logger.Debug("integrity check complete",
		zap.Int("entries", report.Entries),
		zap.Int("duplicates", len(report.DuplicateIdentities)),
		zap.Int("malformed", len(report.MalformedFiles)),
		zap.Int("misnamed", len(report.MisnamedFiles)),
	)
	return report, nil
}
