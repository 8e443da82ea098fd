// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Callers depend on the Config interface; the Viper implementation reads an
// optional YAML file, falls back to built-in defaults, and lets GOBRC_*
// environment variables override any key.
package pkgconfig
