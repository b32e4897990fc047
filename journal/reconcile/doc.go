// Package reconcile merges candidate entries parsed from an edited journal
// document back into the previously loaded entry set.
//
// Candidates are matched against previous entries by case-insensitive
// identity. A matched candidate inherits the match's tag set (unioned with
// its own) and every provenance field the match carries, then the pair is
// compared structurally: an unequal candidate replaces the match and is
// marked modified, an equal one is discarded in favor of the original. A
// candidate with no match is a new entry. Previous entries whose identity
// never appears among the candidates end up in the deletion set.
//
// The merge is a pure in-memory transformation; the store applies the
// result and performs the physical writes and removals.
package reconcile
