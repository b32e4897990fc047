// Package record converts between on-disk DayOne records and journal
// entries.
//
// Each entry is one XML property-list file named after the upper-cased
// identity with the ".doentry" extension. The codec is asymmetric by
// design:
//
//   - Decode is best-effort. A file that is not a well-formed plist, or is
//     missing a required field, yields ErrMalformed and is skipped by the
//     store's discovery loop. Optional fields (the Creator block, Location,
//     Weather) are populated opportunistically; a missing or badly typed
//     sub-field leaves the entry field absent rather than failing decode.
//   - Encode has no recoverable failure path. It is only invoked for
//     modified entries, defaults every missing field first (fresh identity,
//     host-derived Creator fields), and any I/O error on the caller's side
//     is fatal for the save.
//
// Timestamps are normalized to UTC on decode by adding the record's zone
// offset (standard offset, not DST-adjusted), mirroring the behavior of
// the DayOne applications this format interoperates with.
package record
