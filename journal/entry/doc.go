// Package entry defines the journal entry model shared by every
// representation of the journal (on-disk records, the in-memory store, and
// the editable text document).
//
// An Entry carries a hexadecimal identity, a creation instant, a title/body
// pair, a starred flag, a normalized tag set, and optional provenance
// metadata (the Creator block plus opaque Location/Weather payloads).
//
// # Tags
//
// Tags are stored normalized: prefixed with the first configured tag symbol
// and lowercased. They are re-derived from the entry text, so editing a tag
// word in the body changes the tag set on the next parse.
//
// # Optional metadata
//
// Every Creator field is a pointer; nil means the field was absent from the
// source record. Reconciliation copies fields onto edited candidates only
// when they are set, so metadata survives an edit cycle untouched.
package entry
