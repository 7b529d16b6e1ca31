// Package idgen wraps the UUID generator so that it can be stubbed in tests.
// Identifiers are opaque strings: session ids and temporary file names.
package idgen
