package wrap

import (
	"context"
	"errors"
)

// logCtxError carries the LogCtx that was active where the error happened,
// so the caller that finally logs it can report the original action.
type logCtxError struct {
	err    error
	logCtx LogCtx
}

func (e *logCtxError) Error() string {
	return e.err.Error()
}

func (e *logCtxError) Unwrap() error {
	return e.err
}

// Error attaches the LogCtx of ctx to err. Nil stays nil.
// Wrapping an already wrapped error replaces the carried LogCtx with the newer one.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var e *logCtxError
	if errors.As(err, &e) {
		return &logCtxError{err: err, logCtx: WithLogCtxValue(e.logCtx, FromContext(ctx))}
	}

	return &logCtxError{
		err:    err,
		logCtx: FromContext(ctx),
	}
}

// ErrorCtx restores the LogCtx carried by err into ctx.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *logCtxError
	if errors.As(err, &e) && e != nil {
		return context.WithValue(ctx, LogCtxKey, WithLogCtxValue(FromContext(ctx), e.logCtx))
	}
	return ctx
}

// WithLogCtxValue merges newer over base, keeping base values where newer is empty.
func WithLogCtxValue(base, newer LogCtx) LogCtx {
	if newer.Action == "" {
		newer.Action = base.Action
	}
	if newer.RequestID == "" {
		newer.RequestID = base.RequestID
	}
	if newer.City == "" {
		newer.City = base.City
	}
	if newer.Category == "" {
		newer.Category = base.Category
	}
	return newer
}
