package cmd

import (
	"fmt"

	"daybook/core/config"
	"daybook/core/logger"
	"daybook/journal/record"
	"daybook/journal/store"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger; shared by every
// command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openJournal builds the record codec and loads the journal store.
func openJournal(cfg *config.Config, l *zap.Logger) (*store.Store, *record.Codec, error) {
	codec := record.NewCodec(cfg.Journal.TagSymbols)
	st := store.New(cfg.Journal.Directory, codec, l)
	if err := st.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return st, codec, nil
}
