// Package config provides configuration management for daybook.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application
// settings, divided into subsections:
//   - Journal: journal directory, tag symbols, timestamp format, editor
//   - Server: HTTP API settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket for backups
//   - Database: search index connection (sqlite or mysql)
//   - Log: logging level and format
//
// Defaults come from `default:` struct tags; any value can be overridden
// with an environment variable named after the nested key, e.g.
// JOURNAL_DIRECTORY or LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Journal.Directory)
package config
