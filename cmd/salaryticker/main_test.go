package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/fishcast/internal/salary"
)

func execute(ctx context.Context, args ...string) (string, error) {
	cmd := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRoot_RequiresMonthly(t *testing.T) {
	_, err := execute(context.Background())
	require.Error(t, err)
}

func TestRoot_RejectsNonPositiveSalary(t *testing.T) {
	_, err := execute(context.Background(), "--monthly", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, salary.ErrInvalidSalary)
}

func TestRoot_RejectsBadSince(t *testing.T) {
	_, err := execute(context.Background(), "--monthly", "100", "--since", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--since")
}

func TestRoot_RejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []string{"0s", "-1s"} {
		t.Run(interval, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() {
				_, err = execute(context.Background(), "--monthly", "3000", "--interval="+interval)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--interval must be positive")
		})
	}
}

func TestRoot_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	since := time.Now().Add(-time.Hour).Format(time.RFC3339)
	out, err := execute(ctx, "-m", "43200", "--since", since, "--interval", "5ms")
	require.NoError(t, err)
	assert.Contains(t, out, "earning 1.0000 per minute")
	assert.Contains(t, out, "earned 60.")
}
