// Package pkguid provides identifier generators.
//
// String IDs (UUIDv7) tag HTTP requests for log correlation. Numeric IDs
// (Snowflake) name aggregation jobs, so job IDs sort by submission time.
package pkguid
