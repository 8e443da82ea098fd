// Package pkgerror defines shared error types and sentinel errors used across
// gobrc.
//
// Engine code returns plain wrapped errors. Usecases convert them into the
// structured Error type here so the HTTP edge can map a stable code to a
// status, and the CLI can print a short message.
package pkgerror
