// Package server holds the HTTP API server configuration.
//
// The `daybook start` command handles the actual server startup; this
// package only defines the configuration structure embedded by
// core/config.
package server
