// Package backup mirrors the journal's record files into object storage.
//
// Sync uploads every record file under the configured prefix and prunes
// remote records that no longer exist locally, so the bucket always
// reflects the last-synced state of the journal directory. The bucket is
// created on first use.
//
// Backups are file-level: a record deleted locally disappears from the
// bucket on the next sync. This is a mirror, not an archive.
package backup
