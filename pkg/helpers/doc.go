// Package helpers provides the pure string helpers available to templates:
// regular expression matching and replacement plus a family of case
// conversions. Helpers are engine-agnostic; each template engine adapts
// them to its own calling convention.
package helpers
