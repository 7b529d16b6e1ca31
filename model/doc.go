// Package model groups the notebook data types: command tables and the
// parser (command), the per-run session state (session) and the action
// contracts and error taxonomy shared by services (types).
package model
