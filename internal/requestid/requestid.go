// Package requestid carries the per-request ID through contexts and into
// log events created with zerolog's Event.Ctx.
package requestid

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	Header   = "X-Request-ID"
	LogField = "request_id"
)

type ctxKey struct{}

// New returns a fresh random request ID.
func New() string {
	return uuid.NewString()
}

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Hook adds request_id to every event whose context carries one.
func Hook() zerolog.Hook {
	return zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		if id := FromContext(e.GetCtx()); id != "" {
			e.Str(LogField, id)
		}
	})
}
