// Package pkgroutine runs functions in bounded goroutines.
//
// The Manager limits concurrency, collects returned errors and turns panics
// into errors, so a crashed aggregation worker fails its run instead of
// silently dropping its share of the input.
package pkgroutine
