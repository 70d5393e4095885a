package context

import (
	"context"

	"github.com/Ramsey-B/clover/pkg/tracing"
)

type ContextKey string

var (
	RunIDKey   = ContextKey("X-Run-Id")
	CommandKey = ContextKey("X-Command")
	SourceKey  = ContextKey("X-Source")
)

func SetRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

func GetRunID(ctx context.Context) string {
	value, ok := ctx.Value(RunIDKey).(string)
	if !ok {
		return ""
	}
	return value
}

func SetCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

func GetCommand(ctx context.Context) string {
	value, ok := ctx.Value(CommandKey).(string)
	if !ok {
		return ""
	}
	return value
}

// SetSource records the fixture file being processed
func SetSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, SourceKey, source)
}

func GetSource(ctx context.Context) string {
	value, ok := ctx.Value(SourceKey).(string)
	if !ok {
		return ""
	}
	return value
}

// Fields returns the populated context values as log fields, including the
// active trace and span when tracing is enabled
func Fields(ctx context.Context) map[string]any {
	fields := map[string]any{}
	if v := GetRunID(ctx); v != "" {
		fields["run_id"] = v
	}
	if v := GetCommand(ctx); v != "" {
		fields["command"] = v
	}
	if v := GetSource(ctx); v != "" {
		fields["source"] = v
	}
	if v := tracing.GetTraceID(ctx); v != "" {
		fields["trace_id"] = v
		fields["span_id"] = tracing.GetSpanID(ctx)
	}
	return fields
}
