// Package errors provides the structured error type shared by neto packages.
// Every failure carries a machine-readable code so callers can tell build-time,
// configuration and request-time problems apart without string matching.
package errors
