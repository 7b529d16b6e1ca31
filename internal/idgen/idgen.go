package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// NewFunc returns a new globally unique identifier. Override in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new session identifier.
func New() string { return NewFunc() }

// Compact returns a new identifier without dashes, usable in file names.
func Compact() string { return strings.ReplaceAll(NewFunc(), "-", "") }
