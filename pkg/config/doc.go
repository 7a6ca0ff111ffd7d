// Package config loads SDK configuration from environment variables with
// optional .env file support for local development.
//
// Configuration structs declare their environment bindings through the
// struct tags of github.com/caarlos0/env; Load parses them after a
// one-time godotenv bootstrap. Service clients keep their own config
// structs (base URL, access token, timeout) next to their constructors
// and load them through this package.
package config
