package context

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/tracing"
)

func TestContextValues(t *testing.T) {
	runID := uuid.NewString()

	ctx := SetRunID(context.Background(), runID)
	ctx = SetCommand(ctx, "tree")
	ctx = SetSource(ctx, "ge.yaml")

	assert.Equal(t, runID, GetRunID(ctx))
	assert.Equal(t, "tree", GetCommand(ctx))
	assert.Equal(t, "ge.yaml", GetSource(ctx))
	assert.Equal(t, map[string]any{
		"run_id":  runID,
		"command": "tree",
		"source":  "ge.yaml",
	}, Fields(ctx))
}

func TestContextValuesMissing(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRunID(ctx))
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetSource(ctx))
	assert.Empty(t, Fields(ctx))
}

func TestFieldsIncludeActiveSpan(t *testing.T) {
	shutdown := tracing.Setup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}))
	defer func() {
		require.NoError(t, shutdown(context.Background()))
	}()

	ctx, span := tracing.StartSpan(SetRunID(context.Background(), "run"), "fields")
	defer span.End()

	fields := Fields(ctx)
	assert.Equal(t, "run", fields["run_id"])
	assert.Equal(t, tracing.GetTraceID(ctx), fields["trace_id"])
	assert.Equal(t, tracing.GetSpanID(ctx), fields["span_id"])
	assert.NotEmpty(t, fields["trace_id"])
}
