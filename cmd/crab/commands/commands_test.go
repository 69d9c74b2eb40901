package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/cmd/crab/commands"
	"go.trai.ch/crab/internal/app"
	"go.trai.ch/crab/internal/build"
)

type mockApp struct {
	runFunc   func(ctx context.Context, assets []string, opts app.RunOptions) error
	watchFunc func(ctx context.Context, assets []string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, assets []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, assets, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, assets []string, opts app.RunOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, assets, opts)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedAssets []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, assets []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedAssets = assets
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build",
			"--target", "node",
			"-p", "dev",
			"--output", "linear",
			"--timeout", "30s",
			"--json",
			"-n",
			"app/Cargo.toml",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "node", capturedOpts.Target)
		assert.Equal(t, "dev", capturedOpts.Profile)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
		assert.Equal(t, 30*time.Second, capturedOpts.Timeout)
		assert.True(t, capturedOpts.JSON)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, []string{"app/Cargo.toml"}, capturedAssets)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedOpts.Target)
		assert.Empty(t, capturedOpts.Profile)
		assert.Equal(t, "auto", capturedOpts.OutputMode)
		assert.Zero(t, capturedOpts.Timeout)
		assert.False(t, capturedOpts.JSON)
		assert.False(t, capturedOpts.NoCache)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "app/Cargo.toml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	var capturedOpts app.RunOptions
	var capturedAssets []string
	called := false

	mock := &mockApp{
		watchFunc: func(_ context.Context, assets []string, opts app.RunOptions) error {
			capturedOpts = opts
			capturedAssets = assets
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "-t", "browser", "lib/src/lib.rs"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "browser", capturedOpts.Target)
	assert.Equal(t, []string{"lib/src/lib.rs"}, capturedAssets)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
