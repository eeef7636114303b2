// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Commands depend on the Config interface so they stay easy to test and do not
// care where values come from. The Viper implementation layers, from lowest to
// highest priority: built-in defaults, an optional config file, and
// ULIDGEN_* environment variables. Command-line flags are applied on top by
// the command layer through Set.
package pkgconfig
