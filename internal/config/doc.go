// Package config loads the twsfmt YAML configuration.
//
// ${VAR} references are expanded from the environment before parsing.
// Every field is optional; see defaults.go.
package config
