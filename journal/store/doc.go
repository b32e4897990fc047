// Package store owns the ordered collection of entries for one journal
// directory.
//
// Load discovers record files recursively under the journal root by
// extension, decodes each one (silently skipping malformed files), and
// replaces the entry set sorted by ascending creation instant. Save writes
// only entries marked modified and physically removes entries scheduled
// for deletion, one file at a time with no batch rollback: an I/O failure
// on record N leaves records 1..N-1 persisted.
//
// The store assumes single-writer access to the journal directory for the
// duration of a load/edit/save cycle.
package store
