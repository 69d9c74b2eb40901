// Package linear provides a synchronous, line-buffered renderer for CI
// environments.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/crab/internal/ui/output"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for CI/non-interactive environments.
// It outputs linear, chronological logs with asset path prefixes.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	builds  map[string]*buildState // spanID -> build state
	buffers map[string]*bytes.Buffer
}

type buildState struct {
	asset     string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to the process
// standard streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	out := termenv.NewOutput(stderr, termenv.WithProfile(output.ColorProfileANSI()))

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  out,
		builds:  make(map[string]*buildState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op for the linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op for the linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the planned assets.
func (r *Renderer) OnPlanEmit(assets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Building %d asset(s)\n", len(assets))
}

// OnBuildStart prints a build start message.
func (r *Renderer) OnBuildStart(spanID, asset string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builds[spanID] = &buildState{
		asset:     asset,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", asset)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Building...\n", prefix)
}

// OnBuildLog buffers log data and prints complete lines with asset prefix.
func (r *Renderer) OnBuildLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	build, ok := r.builds[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, put it back.
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				r.buffers[spanID] = newBuf
			}
			break
		}

		r.printLineLocked(build.asset, line)
	}
}

// OnBuildComplete flushes the remaining buffer and prints completion status.
func (r *Renderer) OnBuildComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	build, ok := r.builds[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(build.startTime)
	prefix := fmt.Sprintf("[%s]", build.asset)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n",
			prefix, symbol, duration, err)
	} else {
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n",
			prefix, symbol, duration)
	}

	delete(r.builds, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked flushes any remaining data in the buffer for a build.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	build, ok := r.builds[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(build.asset, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the asset path prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(asset string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	prefix := fmt.Sprintf("[%s]", asset)
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", prefix, string(line))
}
