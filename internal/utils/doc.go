// Package utils provides general-purpose helper utilities
// used across different parts of the application: legacy digest hashing,
// JSON response writing, identifier generation and HTTP client
// initialization.
package utils
