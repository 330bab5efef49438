package console

import (
	"context"
	"fmt"
	"time"

	"github.com/Semior001/newsreader/pkg/logx"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Handler handles a single menu state and returns the next one.
type Handler func(ctx context.Context, sess Session) (State, error)

// Middleware wraps a Handler.
type Middleware func(Handler) Handler

// With returns a new handler with middleware applied.
func (h Handler) With(mws ...Middleware) Handler {
	base := h
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// RequestID is a middleware that adds a fresh request id to context.
func RequestID() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, sess Session) (State, error) {
			return next(logx.ContextWithRequestID(ctx, uuid.New().String()), sess)
		}
	}
}

// Logger is a middleware that logs every processed state.
func Logger(lg *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, sess Session) (State, error) {
			start := time.Now()

			st, err := next(ctx, sess)

			lg.DebugCtx(ctx, "state processed",
				slog.String("country", sess.Country),
				slog.String("category", sess.Category),
				slog.Int("page", sess.Page.Number),
				slog.String("next", st.String()),
				slog.Duration("duration", time.Since(start)),
				slog.Any("err", err),
			)

			return st, err
		}
	}
}

// Recover is a middleware that turns panics into errors.
func Recover(lg *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, sess Session) (st State, err error) {
			defer func() {
				if r := recover(); r != nil {
					lg.ErrorCtx(ctx, "panic recovered", slog.Any("panic", r))
					st, err = StateMenu, fmt.Errorf("panic: %v", r)
				}
			}()

			return next(ctx, sess)
		}
	}
}
