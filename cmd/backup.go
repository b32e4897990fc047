package cmd

import (
	"context"
	"fmt"

	"daybook/core/storage"
	"daybook/feature/backup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd mirrors the journal's record files into object storage.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Mirror the journal into object storage",
	Long: `Upload every record file to the configured S3/MinIO bucket and
remove remote records whose local file is gone. The bucket always reflects
the last-synced state of the journal directory.`,
	RunE: runBackup,
}

func init() {
	RootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	st, _, err := openJournal(cfg, l)
	if err != nil {
		return err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := backup.NewService(client, cfg.Storage.Bucket, cfg.Storage.Prefix, st, l)
	summary, err := svc.Sync(ctx)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	l.Info("Backup finished",
		zap.Int("uploaded", summary.Uploaded),
		zap.Int("pruned", summary.Pruned),
	)
	return nil
}
