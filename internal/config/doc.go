// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to the settings needed by the server while keeping
// configuration details separate from business logic.
//
// Environment variables use the DEVSECOPS_ prefix, with nested keys joined by
// underscores (for example DEVSECOPS_SERVER_PORT for server.port).
package config
