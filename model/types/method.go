package types

import (
	"context"
	"reflect"
)

type Signatures []Signature

func (s Signatures) Lookup(name string) *Signature {
	for i := range s {
		sig := &s[i]
		if sig.Name == name {
			return sig
		}
	}
	return nil
}

// Signature	method signature
type Signature struct {
	Name        string
	Description string
	Input       reflect.Type
	Output      reflect.Type
}

// Executable is a function that can be executed
type Executable func(context context.Context, input, output interface{}) error

// NewExecutable adapts a typed method to Executable, rejecting mismatched input or output
func NewExecutable[I, O any](fn func(ctx context.Context, input *I, output *O) error) Executable {
	return func(ctx context.Context, in, out interface{}) error {
		input, ok := in.(*I)
		if !ok {
			return NewInvalidInputError(in)
		}
		output, ok := out.(*O)
		if !ok {
			return NewInvalidOutputError(out)
		}
		return fn(ctx, input, output)
	}
}
