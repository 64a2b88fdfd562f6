// Package sanitizer holds the small text helpers the directory viewer runs
// user-visible and user-typed strings through.
//
// Escape prepares arbitrary values for literal insertion into HTML markup.
// The string normalizers (Trim, ToLower, ToUpper) are plain functions that can
// be chained with Apply or stored as a pipeline with Compose:
//
//	normalizeQuery := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//
//	q := normalizeQuery("  Ann ") // "ann"
//
// Every helper is stateless and safe for concurrent use.
package sanitizer
