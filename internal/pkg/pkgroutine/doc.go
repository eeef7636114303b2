// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and turns
// panics into errors so that a failing worker is reported instead of
// crashing the process.
package pkgroutine
