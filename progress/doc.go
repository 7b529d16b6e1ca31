// Package progress keeps per-session cell counters. The dispatcher updates
// them after every command and the notebook prints a summary on exit.
package progress
