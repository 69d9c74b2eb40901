// Package pipeline implements the per-asset build flow: classification,
// crate resolution, strategy execution, artifact resolution and emit.
package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one asset build.
type Request struct {
	// Asset is the absolute path of the requesting asset.
	Asset string
	// Target is the consumption context of the generated module.
	Target domain.Target
	// Options is the resolved build configuration.
	Options domain.BuildOptions
	// Output receives the live combined output of build subprocesses.
	// Nil discards output.
	Output io.Writer
}

// Pipeline orchestrates single-asset builds. It holds no per-build state;
// every Build call is independent and may run concurrently with others.
type Pipeline struct {
	runner    ports.CommandRunner
	prober    ports.ToolProber
	manifests ports.ManifestLoader
	metadata  ports.MetadataClient
	configs   ports.ConfigParser
	logger    ports.Logger
}

// New creates a Pipeline from its collaborators.
func New(
	runner ports.CommandRunner,
	prober ports.ToolProber,
	manifests ports.ManifestLoader,
	metadata ports.MetadataClient,
	configs ports.ConfigParser,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		runner:    runner,
		prober:    prober,
		manifests: manifests,
		metadata:  metadata,
		configs:   configs,
		logger:    logger,
	}
}

// Build runs the full pipeline for one asset.
func (p *Pipeline) Build(ctx context.Context, req *Request) (*domain.AssetBuild, error) {
	start := time.Now()

	kind := domain.ClassifyAsset(req.Asset)

	var crateDir string
	switch kind {
	case domain.KindCrateManifest:
		crateDir = filepath.Dir(req.Asset)

	case domain.KindRustSource:
		dir, err := p.manifests.FindCrateDir(filepath.Dir(req.Asset))
		if err != nil {
			return nil, err
		}
		crateDir = dir

	case domain.KindConfig:
		cfg, err := p.configs.Parse(req.Asset)
		if err != nil {
			return nil, err
		}
		return &domain.AssetBuild{
			Asset:   req.Asset,
			Kind:    kind,
			Config:  cfg,
			Elapsed: time.Since(start),
		}, nil

	default:
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedAsset, "only Cargo.toml, .rs and .toml assets are supported"),
			"asset", req.Asset,
		)
	}

	build, err := p.buildCrate(ctx, req, crateDir)
	if err != nil {
		return nil, err
	}

	build.Kind = kind
	build.Elapsed = time.Since(start)
	return build, nil
}

// buildCrate runs the crate build path: manifest load, toolchain probe,
// strategy execution, artifact and dependency resolution, emit.
func (p *Pipeline) buildCrate(ctx context.Context, req *Request, crateDir string) (*domain.AssetBuild, error) {
	manifest, err := p.manifests.Load(crateDir)
	if err != nil {
		return nil, err
	}

	tc := p.prober.Probe(ctx)
	strategy, err := SelectStrategy(tc, p.runner, p.metadata)
	if err != nil {
		return nil, err
	}
	p.logger.Info("building " + manifest.Name + " via " + strategy.Name())

	output := req.Output
	if output == nil {
		output = io.Discard
	}

	res, err := strategy.Run(ctx, Input{
		Manifest: manifest,
		Target:   req.Target,
		Options:  req.Options,
		Output:   output,
	})
	if err != nil {
		return nil, err
	}

	assetDir := filepath.Dir(req.Asset)
	artifacts, err := domain.ResolveArtifacts(res, req.Options, assetDir)
	if err != nil {
		return nil, err
	}

	deps, err := p.readDependencies(res, req.Options, req.Asset)
	if err != nil {
		return nil, err
	}

	content, err := emitContent(req.Target, res, artifacts)
	if err != nil {
		return nil, err
	}

	return &domain.AssetBuild{
		Asset:        req.Asset,
		Result:       res,
		Artifacts:    artifacts,
		Dependencies: deps,
		Content:      content,
	}, nil
}

// readDependencies parses the compiler-emitted .d file for the build.
func (p *Pipeline) readDependencies(res domain.BuildResult, opts domain.BuildOptions, asset string) ([]string, error) {
	path := domain.DepInfoPath(res, opts)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the build result
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDependencyParse, err), "path", path)
	}

	deps, err := domain.ParseDepInfo(string(data), asset)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return deps, nil
}
