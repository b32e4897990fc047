// Package integrity checks the health of a journal directory.
//
// The load path is deliberately forgiving: malformed records are skipped,
// identity collisions resolve to the first match, and entries without a
// creation instant pass through reconciliation untouched. This package is
// where those conditions become visible instead of silent.
//
// # Checks
//
//   - Duplicate identities among loaded entries
//   - Record files that fail to decode
//   - Record files whose name does not match the identity they contain
//   - Entries missing a creation instant
//
// The checks are read-only; fixing is left to the user.
package integrity
