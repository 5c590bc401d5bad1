// File: doc.go
// Title: Config Package Documentation
// Description: Documents configuration loading for the command-line
//              tool.

// Package config loads the ltlspec tool configuration.
//
// Configuration files are TOML by default, YAML when the extension
// says so. Nested keys are addressed with dot notation and every key
// can be overridden through the environment:
//
//	cfg, err := config.Load("ltlspec.toml")
//	level := cfg.GetString("log.level", "info")
//
// LTLSPEC_LOG_LEVEL=debug overrides log.level regardless of the file
// content. When no file exists, Default() yields a configuration
// where every lookup falls back to the environment and the caller's
// default.
package config
