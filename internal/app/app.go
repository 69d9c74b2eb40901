// Package app implements the application layer for crab: project loading,
// renderer selection, concurrent asset builds and the watch loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/crab/internal/adapters/detector"
	"go.trai.ch/crab/internal/adapters/linear"
	"go.trai.ch/crab/internal/adapters/telemetry"
	"go.trai.ch/crab/internal/adapters/tui"
	"go.trai.ch/crab/internal/adapters/watcher"
	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/crab/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	projects   ports.ProjectLoader
	pipeline   *pipeline.Pipeline
	logger     ports.Logger
	store      ports.BuildInfoStore
	hasher     ports.Hasher
	runner     ports.CommandRunner
	watch      ports.Watcher
	env        domain.EnvOverrides
	teaOptions []tea.ProgramOption
}

// New creates a new App instance. env carries the profile override variables
// captured at process start.
func New(
	projects ports.ProjectLoader,
	pipe *pipeline.Pipeline,
	log ports.Logger,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	runner ports.CommandRunner,
	watch ports.Watcher,
	env domain.EnvOverrides,
) *App {
	return &App{
		projects: projects,
		pipeline: pipe,
		logger:   log,
		store:    store,
		hasher:   hasher,
		runner:   runner,
		watch:    watch,
		env:      env,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run and Watch methods.
type RunOptions struct {
	// Target overrides the project's consumption target when non-empty.
	Target string
	// Profile overrides the captured profile environment variable.
	Profile string
	// OutputMode forces the renderer: auto, tui, linear or ci.
	OutputMode string
	// Timeout bounds each external tool invocation. Zero keeps the default.
	Timeout time.Duration
	// NoCache bypasses stored fingerprints and rebuilds everything.
	NoCache bool
	// JSON switches logging to machine-readable output.
	JSON bool
}

// Run executes one build pass over the requested assets.
func (a *App) Run(ctx context.Context, assets []string, opts RunOptions) error {
	project, options, err := a.prepare(assets, opts)
	if err != nil {
		return err
	}

	renderer, tracer := a.setupRendering(ctx, opts)
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "build panic: %v\n", r)
			}
			_ = renderer.Stop()
		}()

		if err := a.buildAll(ctx, tracer, project, options, opts.NoCache); err != nil {
			return errors.Join(domain.ErrBuildExecutionFailed, err)
		}
		return nil
	})

	return g.Wait()
}

// Watch builds the requested assets and then rebuilds them as their
// dependencies change, until the context is canceled.
func (a *App) Watch(ctx context.Context, assets []string, opts RunOptions) error {
	project, options, err := a.prepare(assets, opts)
	if err != nil {
		return err
	}

	renderer, tracer := a.setupRendering(ctx, opts)
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()
		return a.watchLoop(ctx, tracer, project, options)
	})

	return g.Wait()
}

// watchLoop runs the initial build and then serves debounced change batches.
// Build failures are logged, not fatal: the loop keeps watching so the next
// save can fix the build.
func (a *App) watchLoop(ctx context.Context, tracer ports.Tracer, project *domain.Project, options domain.BuildOptions) error {
	if err := a.buildAll(ctx, tracer, project, options, false); err != nil {
		a.logger.Error(err)
	}

	if err := a.watch.Start(ctx, project.Root); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() {
		_ = a.watch.Stop()
	}()

	changes := make(chan []string, 1)
	deb := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for event := range a.watch.Events() {
			deb.Add(event.Path)
		}
	}()

	a.logger.Info("watching " + project.Root)

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changes:
			candidates := a.matchAssets(project, paths)
			if len(candidates) == 0 {
				continue
			}

			sub := *project
			sub.Assets = candidates
			if err := a.buildAll(ctx, tracer, &sub, options, false); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// matchAssets maps a batch of changed paths to the project assets they may
// invalidate, using each asset's last known dependency list. Assets with no
// stored build info are always candidates.
func (a *App) matchAssets(project *domain.Project, changed []string) []string {
	changedSet := make(map[string]struct{}, len(changed))
	for _, p := range changed {
		changedSet[filepath.Clean(p)] = struct{}{}
	}

	var candidates []string
	for _, asset := range project.Assets {
		if _, ok := changedSet[filepath.Clean(asset)]; ok {
			candidates = append(candidates, asset)
			continue
		}

		info, err := a.store.Get(project.Root, asset)
		if err != nil || info == nil {
			candidates = append(candidates, asset)
			continue
		}

		for _, dep := range info.Dependencies {
			if _, ok := changedSet[filepath.Clean(dep)]; ok {
				candidates = append(candidates, asset)
				break
			}
		}
	}
	return candidates
}

// prepare resolves the project, asset list, target and build options for a
// command invocation.
func (a *App) prepare(assets []string, opts RunOptions) (*domain.Project, domain.BuildOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, domain.BuildOptions{}, zerr.Wrap(err, "failed to resolve working directory")
	}

	project, err := a.resolveProject(cwd, assets)
	if err != nil {
		return nil, domain.BuildOptions{}, err
	}

	if opts.Target != "" {
		target, err := domain.ParseTarget(opts.Target)
		if err != nil {
			return nil, domain.BuildOptions{}, zerr.With(
				zerr.Wrap(err, "unusable --target override"),
				"target", opts.Target,
			)
		}
		project.Target = target
	}

	env := a.env
	if opts.Profile != "" {
		env.Profile = opts.Profile
	}
	options, err := domain.ResolveBuildOptions(env)
	if err != nil {
		return nil, domain.BuildOptions{}, err
	}

	if opts.Timeout > 0 {
		if t, ok := a.runner.(interface{ SetTimeout(time.Duration) }); ok {
			t.SetTimeout(opts.Timeout)
		}
	}
	if opts.JSON {
		if j, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			j.SetJSON(true)
		}
	}

	return project, options, nil
}

// resolveProject loads crab.yaml, or synthesizes a project from explicit CLI
// asset arguments, which bypass the file's asset list.
func (a *App) resolveProject(cwd string, assets []string) (*domain.Project, error) {
	if len(assets) == 0 {
		project, err := a.projects.Load(cwd)
		if err != nil {
			return nil, err
		}
		if len(project.Assets) == 0 {
			return nil, domain.ErrNoAssetsSpecified
		}
		return project, nil
	}

	// Explicit assets: the project file contributes root and target when
	// present, but is not required.
	project := &domain.Project{Target: domain.TargetBrowser}
	if loaded, err := a.projects.Load(cwd); err == nil {
		project.Root = loaded.Root
		project.Target = loaded.Target
		project.Concurrency = loaded.Concurrency
	} else if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	} else {
		project.Root = cwd
	}

	for _, asset := range assets {
		abs := asset
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(cwd, asset)
		}
		abs = filepath.Clean(abs)

		if _, err := os.Stat(abs); err != nil {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrAssetNotFound, "no such file: "+asset),
				"asset", asset,
			)
		}
		project.Assets = append(project.Assets, abs)
	}

	return project, nil
}

// setupRendering selects the renderer for the environment and wires the
// telemetry pipeline to it.
func (a *App) setupRendering(ctx context.Context, opts RunOptions) (ports.Renderer, *telemetry.OTelTracer) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(os.Stderr)
		teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(model, teaOpts...)
	} else {
		renderer = linear.NewRenderer(os.Stdout, os.Stderr)
	}

	// Every started span is reported to the renderer through the bridge.
	bridge := telemetry.NewBridge(renderer)
	otel.SetTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	))

	tracer := telemetry.NewOTelTracer("crab").WithRenderer(renderer)
	return renderer, tracer
}

// buildAll builds every project asset concurrently, bounded by the project's
// concurrency setting.
func (a *App) buildAll(ctx context.Context, tracer ports.Tracer, project *domain.Project, options domain.BuildOptions, noCache bool) error {
	display := make([]string, len(project.Assets))
	for i, asset := range project.Assets {
		display[i] = displayName(project.Root, asset)
	}
	tracer.EmitPlan(ctx, display)

	limit := project.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, asset := range project.Assets {
		g.Go(func() error {
			return a.buildOne(ctx, tracer, project, asset, display[i], options, noCache)
		})
	}

	return g.Wait()
}

// buildOne builds a single asset, skipping it when its dependency
// fingerprint is unchanged since the last recorded build.
func (a *App) buildOne(
	ctx context.Context,
	tracer ports.Tracer,
	project *domain.Project,
	asset, display string,
	options domain.BuildOptions,
	noCache bool,
) error {
	if !noCache && a.unchanged(project.Root, asset) {
		a.logger.Info("skipping " + display + " (unchanged)")
		return nil
	}

	ctx, span := tracer.Start(ctx, display,
		ports.WithAttribute("asset", asset),
		ports.WithAttribute("profile", string(options.Profile)),
	)
	defer span.End()

	build, err := a.pipeline.Build(ctx, &pipeline.Request{
		Asset:   asset,
		Target:  project.Target,
		Options: options,
		Output:  span,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	if build.Kind == domain.KindConfig {
		return nil
	}

	if err := pipeline.WriteEmit(asset, build.Content); err != nil {
		span.RecordError(err)
		return err
	}

	a.record(project.Root, asset, build)
	return nil
}

// unchanged reports whether the asset's stored fingerprint still matches its
// dependency set on disk.
func (a *App) unchanged(root, asset string) bool {
	info, err := a.store.Get(root, asset)
	if err != nil || info == nil || len(info.Dependencies) == 0 {
		return false
	}

	fp, err := a.hasher.Fingerprint(fingerprintPaths(asset, info.Dependencies))
	if err != nil {
		return false
	}
	return fp == info.Fingerprint
}

// record persists the build's fingerprint so future runs can skip it. Store
// failures are logged and never fail the build that produced the artifacts.
func (a *App) record(root, asset string, build *domain.AssetBuild) {
	fp, err := a.hasher.Fingerprint(fingerprintPaths(asset, build.Dependencies))
	if err != nil {
		a.logger.Warn("failed to fingerprint " + asset + ": " + err.Error())
		return
	}

	err = a.store.Put(root, domain.BuildInfo{
		Asset:        asset,
		Fingerprint:  fp,
		Dependencies: build.Dependencies,
		ModuleName:   build.Result.ModuleName,
		BuiltAt:      time.Now().UTC(),
	})
	if err != nil {
		a.logger.Warn("failed to record build info for " + asset + ": " + err.Error())
	}
}

// fingerprintPaths is the canonical fingerprint input: the dependency set
// plus the asset itself.
func fingerprintPaths(asset string, deps []string) []string {
	return append(slices.Clone(deps), asset)
}

// displayName is the asset path shown in renderers and span names:
// project-relative when possible.
func displayName(root, asset string) string {
	rel, err := filepath.Rel(root, asset)
	if err != nil || rel == "" {
		return asset
	}
	return filepath.ToSlash(rel)
}
