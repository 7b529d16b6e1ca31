package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidSyntax    = errors.New("invalid syntax")
	ErrInvalidDirectory = errors.New("invalid directory path")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrExecution        = errors.New("execution failed")
	ErrDenied           = errors.New("denied by policy")
	// ErrExit terminates the notebook loop
	ErrExit = errors.New("exit")
)

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("method %v not found", name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("invalid input %T", in)
}

func NewInvalidOutputError(in interface{}) error {
	return fmt.Errorf("invalid output %T", in)
}

// NewNotFoundError reports a missing file or directory
func NewNotFoundError(location string) error {
	return fmt.Errorf("file %w: %s", ErrNotFound, location)
}

// NewAlreadyExistsError reports a create on an existing location
func NewAlreadyExistsError(location string) error {
	return fmt.Errorf("file %w: %s", ErrAlreadyExists, location)
}

// NewInvalidSyntaxError reports a malformed command, usage shows the expected form
func NewInvalidSyntaxError(usage string) error {
	if usage == "" {
		return ErrInvalidSyntax
	}
	return fmt.Errorf("%w, usage: %s", ErrInvalidSyntax, usage)
}

func NewInvalidDirectoryError(location string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDirectory, location)
}

// NewExecutionError wraps a failed child process or interpreter run
func NewExecutionError(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrExecution, what)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecution, what, err)
}
