package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorIDKey   contextKey = "actor_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func GetActorID(ctx context.Context) string {
	if actorID, ok := ctx.Value(actorIDKey).(string); ok {
		return actorID
	}
	return ""
}

// FromContext returns a logger annotated with request_id and actor_id
// when they are present in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()

	if requestID := GetRequestID(ctx); requestID != "" {
		logger = logger.With(slog.String("request_id", requestID))
	}
	if actorID := GetActorID(ctx); actorID != "" {
		logger = logger.With(slog.String("actor_id", actorID))
	}
	return logger
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs msg at error level with the error attached.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).Error(msg, append([]any{slog.Any("error", err)}, args...)...)
}
