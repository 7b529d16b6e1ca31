package types

import "context"

type executionContextKey string

// ExecutionContextKey carries per-cell values (session id, cell, command)
var ExecutionContextKey = executionContextKey("execution-context")

// EnsureExecutionContext returns ctx carrying an execution map extended with key/value pairs
func EnsureExecutionContext(ctx context.Context, pairs ...string) context.Context {
	values := map[string]string{}
	if existing, ok := ctx.Value(ExecutionContextKey).(map[string]string); ok {
		for k, v := range existing {
			values[k] = v
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		values[pairs[i]] = pairs[i+1]
	}
	return context.WithValue(ctx, ExecutionContextKey, values)
}

// ExecutionContext returns values stored by EnsureExecutionContext or nil
func ExecutionContext(ctx context.Context) map[string]string {
	if ctx == nil {
		return nil
	}
	values, _ := ctx.Value(ExecutionContextKey).(map[string]string)
	return values
}
