package seidel

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelDebug))

	NewSolver(WithSeed(1)).SolveMinY([]HalfPlane{{-1, 1, -2}, {1, -4, 9}})
	out := buf.String()
	assert.Contains(t, out, "constraint rejected candidate")
	assert.Contains(t, out, "msg=solved")
	assert.Contains(t, out, "status=Optimal")

	SetLogger(nil)
	buf.Reset()
	NewSolver(WithSeed(1)).SolveMinY([]HalfPlane{{-1, 1, -2}, {1, -4, 9}})
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
