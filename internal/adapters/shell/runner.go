// Package shell implements the command runner for external build tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// DefaultTimeout bounds a single external tool invocation. The wrapped
// toolchains can legitimately run for minutes on a cold cache, but a hung
// process must not hang the build request forever.
const DefaultTimeout = 15 * time.Minute

// tailLimit bounds how much trailing output is retained for error reports.
const tailLimit = 4096

// Runner implements ports.CommandRunner using os/exec and pty.
type Runner struct {
	logger  ports.Logger
	timeout time.Duration
}

// NewRunner creates a Runner with the default command timeout.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:  logger,
		timeout: DefaultTimeout,
	}
}

// SetTimeout overrides the per-command timeout. Zero or negative restores
// the default.
func (r *Runner) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	r.timeout = d
}

// Execute runs the command under a pty so the toolchain emits the same
// progress output it would on a developer's terminal. The pty merges stdout
// and stderr, so everything streams to the stdout writer; when the pty cannot
// be allocated the command falls back to plain pipes and the stderr writer is
// used.
func (r *Runner) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Info("exec: " + cmd.Tool + " " + strings.Join(cmd.Args, " "))

	tail := newTailBuffer(tailLimit)
	c := r.build(ctx, cmd)

	ptmx, err := pty.Start(c)
	if err != nil {
		return r.executePiped(ctx, c, cmd, io.MultiWriter(stdout, tail), stderr, tail)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		_, _ = io.Copy(io.MultiWriter(stdout, tail), ptmx)
	}()

	waitErr := c.Wait()
	<-ioDone

	return r.wrapWait(ctx, cmd, waitErr, tail)
}

// executePiped is the fallback when no pty is available (some CI sandboxes).
func (r *Runner) executePiped(ctx context.Context, c *exec.Cmd, cmd *domain.Command, stdout, stderr io.Writer, tail *tailBuffer) error {
	c.Stdout = stdout
	c.Stderr = io.MultiWriter(stderr, tail)
	return r.wrapWait(ctx, cmd, c.Run(), tail)
}

// Capture runs the command with plain pipes and returns its stdout, for
// tools whose output is parsed rather than displayed.
func (r *Runner) Capture(ctx context.Context, cmd *domain.Command) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	c := r.build(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		tail := newTailBuffer(tailLimit)
		_, _ = tail.Write(stderr.Bytes())
		return nil, r.wrapWait(ctx, cmd, err, tail)
	}

	return stdout.Bytes(), nil
}

// LookPath reports the absolute path of a tool on the current PATH.
func (r *Runner) LookPath(tool string) (string, error) {
	return exec.LookPath(tool)
}

func (r *Runner) build(ctx context.Context, cmd *domain.Command) *exec.Cmd {
	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Tool
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // tool invocations are the adapter's purpose
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Tool
	}
	c.Dir = cmd.Dir
	c.Env = env

	return c
}

// wrapWait converts a process exit into the error the pipeline reports:
// exit code and a bounded output tail as metadata, or the timeout sentinel
// when the context deadline killed the process.
func (r *Runner) wrapWait(ctx context.Context, cmd *domain.Command, waitErr error, tail *tailBuffer) error {
	if waitErr == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err := zerr.Wrap(domain.ErrCommandTimedOut, cmd.Tool+" did not finish within "+r.timeout.String())
		err = zerr.With(err, "tool", cmd.Tool)
		return zerr.With(err, "timeout", r.timeout.String())
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	err := zerr.Wrap(waitErr, "command failed")
	err = zerr.With(err, "tool", cmd.Tool)
	err = zerr.With(err, "exit_code", exitCode)
	if out := strings.TrimSpace(tail.String()); out != "" {
		err = zerr.With(err, "output", out)
	}
	return err
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if len(t.buf) > t.limit {
		t.buf = t.buf[len(t.buf)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

// allowListedEnvVars are the system environment variables inherited by the
// spawned toolchain. Everything else must come in explicitly through the
// command's Env so builds do not silently depend on ambient state.
var allowListedEnvVars = map[string]struct{}{
	"HOME":        {},
	"TERM":        {},
	"USER":        {},
	"PATH":        {},
	"CARGO_HOME":  {},
	"RUSTUP_HOME": {},
}

// resolveEnvironment merges the allow-listed system environment with the
// command's explicit overrides.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of the resolved environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
