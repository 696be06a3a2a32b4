// Package config loads runtime configuration for the PopX CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory for the durable documents
//	-l string   minimum log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "data_dir": "popx-data",
//	  "log_level": "info"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
