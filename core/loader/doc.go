// Package loader provides the plugin-like feature loading system for the
// HTTP API.
//
// Each feature implements the Feature interface, which defines its
// enablement check and route registration logic. The Manager holds the
// registry and loads enabled features in order during server startup.
//
// This keeps features like 'api' (entry browsing) and future modules
// developed and tested in isolation.
package loader
