// Package policy gates notebook commands that run arbitrary user code or
// shell text: they can run automatically, after confirmation, or never.
package policy
