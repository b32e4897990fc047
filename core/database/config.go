package database

// Config holds configuration for the search index database.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the sqlite database file, used when Driver is sqlite.
	Path string `mapstructure:"path" default:"daybook-index.db"`
	// Host is the database host (mysql).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql).
	Password string `mapstructure:"password" default:""`
	// Name is the database name (mysql).
	Name string `mapstructure:"name" default:"daybook"`
	// TimeoutSeconds is the connection timeout in seconds (mysql).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
