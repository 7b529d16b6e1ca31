package logs

import (
	"context"
	"log/slog"

	"github.com/viant/booklab/model/types"
)

// Handler adds the execution context values (session, cell, command) to every record
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	for k, v := range types.ExecutionContext(ctx) {
		record.Add(k, v)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
