// Package config provides configuration management for pdftoc.
//
// Configuration comes from three layers, lowest precedence first:
// built-in defaults (NewConfig), an optional YAML configuration file
// (.pdftoc in the current or home directory), and CLI flags.
//
// Design decision: The Config struct is populated once during CLI parsing
// and passed through the application via dependency injection rather than
// global state. The inference engine receives it by value and never
// mutates it, so it is freely shared across worker goroutines.
package config
