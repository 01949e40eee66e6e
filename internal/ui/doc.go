// Package ui renders console output: the banner, colored status lines,
// progress for the running item, format listings and the final summary.
package ui
