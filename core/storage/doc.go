// Package storage provides an abstraction layer for object storage
// services.
//
// It wraps the MinIO Go client with the handful of operations the journal
// backup feature needs: bucket checks, uploads, listing, and removal. The
// abstraction supports both AWS S3 and self-hosted MinIO instances, and
// the Client interface keeps storage interactions mockable for unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
