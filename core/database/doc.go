// Package database opens the connection backing the journal search index.
//
// It wraps GORM and supports two drivers: sqlite (the default, a single
// index file next to the journal) and mysql for shared setups. The index
// is derived data — it can always be rebuilt from the journal directory —
// so a failed connection degrades the search feature rather than the
// application.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("search index unavailable", zap.Error(err))
//	}
package database
