// Package index maintains a rebuildable search index over the journal.
//
// The index is a flat table of entry rows in a GORM-managed database
// (sqlite by default). It is derived data: `daybook index rebuild` drops
// and repopulates it from the loaded journal, and search queries never
// touch the record files. A stale or missing index degrades search, not
// the journal itself.
package index
