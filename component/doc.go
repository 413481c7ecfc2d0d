// Package component defines the lifecycle contract for managed
// infrastructure pieces such as a configured HTTP client.
package component
