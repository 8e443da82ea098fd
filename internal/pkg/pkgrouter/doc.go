// Package pkgrouter wraps httprouter for the job API.
//
// Handlers return a payload or an error; the router encodes payloads into a
// {message, data, meta} envelope and maps pkgerror codes to HTTP statuses.
// Every route runs behind panic recovery, correlation IDs and access logging.
package pkgrouter
