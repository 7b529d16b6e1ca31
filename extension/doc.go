// Package extension provides the run-time registry of action services the
// notebook dispatcher calls into. Custom services registered through
// booklab.WithExtensionServices replace built-ins with the same name.
package extension
