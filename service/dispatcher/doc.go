// Package dispatcher runs classified notebook commands. Each command kind
// maps to a handler that calls action services through the extension
// registry and renders the result with the printer.
package dispatcher
