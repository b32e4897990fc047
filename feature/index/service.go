package index

import (
	"fmt"

	"daybook/journal/entry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service maintains and queries the search index.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates an index service over an open database.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the index table.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&EntryRow{}); err != nil {
		return fmt.Errorf("failed to migrate index schema: %w", err)
	}
	return nil
}

// Rebuild replaces the whole index with the given entries in one
// transaction.
func (s *Service) Rebuild(entries []*entry.Entry) error {
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, rowFromEntry(e))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM journal_entries").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	s.logger.Info("index rebuilt", zap.Int("entries", len(rows)))
	return nil
}

// Search returns indexed entries whose title, body, or tags contain the
// query, ordered by creation instant.
func (s *Service) Search(query string) ([]EntryRow, error) {
	var rows []EntryRow
	pattern := "%" + query + "%"
	err := s.db.
		Where("title LIKE ? OR body LIKE ? OR tags LIKE ?", pattern, pattern, pattern).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	return rows, nil
}
