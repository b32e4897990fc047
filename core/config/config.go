package config

import (
	"reflect"
	"strings"

	"daybook/core/database"
	"daybook/core/logger"
	"daybook/core/server"
	"daybook/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// JournalConfig holds configuration for the journal itself.
type JournalConfig struct {
	// Directory is the journal root; records are discovered recursively
	// below it and written into its "entries" subdirectory.
	Directory string `mapstructure:"directory" default:"journal"`
	// TagSymbols are the characters recognized as tag prefixes. The first
	// one is applied when normalizing tags read from records.
	TagSymbols string `mapstructure:"tag_symbols" default:"#@"`
	// TimeFormat is the Go layout of the bracketed timestamp in editable
	// documents.
	TimeFormat string `mapstructure:"time_format" default:"2006-01-02 15:04"`
	// Editor is the command used by `daybook edit`; $EDITOR when empty.
	Editor string `mapstructure:"editor" default:""`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Journal holds configuration for the journal store and codecs.
	Journal JournalConfig `mapstructure:"journal"`
	// Server holds configuration for the HTTP API server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the backup object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the search index database.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine (e.g. everything set via environment).
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Register defaults from struct tags so AutomaticEnv sees every key.
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. JOURNAL_DIRECTORY -> journal.directory)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default
// values in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default (even if empty) to register the key for
		// AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
