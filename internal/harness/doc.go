// Package harness runs two aggregation commands as subprocesses, times them
// and compares the first line each one prints.
package harness
