package pipeline

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Input carries everything a strategy needs to run one crate build.
type Input struct {
	// Manifest is the validated manifest of the crate being built.
	Manifest *domain.CrateManifest
	// Target is the consumption context of the generated module.
	Target domain.Target
	// Options is the resolved build configuration.
	Options domain.BuildOptions
	// Output receives the live combined output of build subprocesses.
	Output io.Writer
}

// Strategy is one way of turning a crate into a wasm module. Exactly one
// strategy runs per build.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Run executes the strategy to completion.
	Run(ctx context.Context, in Input) (domain.BuildResult, error)
}

// SelectStrategy picks the build strategy for the probed toolchain. wasm-pack
// is the supported path and wins whenever present; raw cargo plus
// wasm-bindgen is a degraded fallback. With neither combination available the
// error names exactly the tools to install.
func SelectStrategy(tc domain.Toolchain, runner ports.CommandRunner, metadata ports.MetadataClient) (Strategy, error) {
	switch {
	case tc.HasWasmPack:
		return &WasmPackStrategy{
			runner:    runner,
			NoInstall: tc.HasCargo && tc.HasWasmBindgen,
		}, nil
	case tc.HasCargo && tc.HasWasmBindgen:
		return &BindgenStrategy{runner: runner, metadata: metadata}, nil
	default:
		missing := strings.Join(tc.MissingTools(), ", ")
		return nil, zerr.With(zerr.Wrap(domain.ErrToolchainMissing, "install "+missing), "install", missing)
	}
}

// WasmPackStrategy builds the crate with wasm-pack.
type WasmPackStrategy struct {
	runner ports.CommandRunner

	// NoInstall instructs wasm-pack to skip reinstalling its bundled
	// dependencies. Set when cargo and wasm-bindgen are both already present.
	NoInstall bool
}

// Name identifies the strategy in logs.
func (s *WasmPackStrategy) Name() string { return "wasm-pack" }

// Run invokes wasm-pack in the crate directory. Older wasm-pack releases
// ship init instead of build; the subcommand is picked by probing the help
// output.
func (s *WasmPackStrategy) Run(ctx context.Context, in Input) (domain.BuildResult, error) {
	args := []string{s.subcommand(ctx, in.Manifest.Dir)}
	if s.NoInstall {
		args = append(args, "-m", "no-install")
	}
	args = append(args, "--target", in.Target.PackTarget(), in.Options.Profile.Flag())

	cmd := &domain.Command{
		Tool: domain.ToolWasmPack,
		Args: args,
		Dir:  in.Manifest.Dir,
	}
	if err := s.runner.Execute(ctx, cmd, in.Output, in.Output); err != nil {
		return domain.BuildResult{}, zerr.With(errors.Join(domain.ErrBuildFailed, err), "crate", in.Manifest.Name)
	}

	return domain.BuildResult{
		CrateDir:   in.Manifest.Dir,
		OutDir:     filepath.Join(in.Manifest.Dir, domain.PkgDirName),
		ModuleName: in.Manifest.ModuleName(),
	}, nil
}

// subcommand probes wasm-pack build --help for build subcommand support. A
// failing probe selects the legacy init subcommand.
func (s *WasmPackStrategy) subcommand(ctx context.Context, dir string) string {
	_, err := s.runner.Capture(ctx, &domain.Command{
		Tool: domain.ToolWasmPack,
		Args: []string{"build", "--help"},
		Dir:  dir,
	})
	if err != nil {
		return "init"
	}
	return "build"
}

// BindgenStrategy builds the crate with raw cargo and wasm-bindgen. It is a
// degraded fallback: any failure collapses to a single build error carrying
// the install-wasm-pack remediation, with the actual cause preserved in the
// chain.
type BindgenStrategy struct {
	runner   ports.CommandRunner
	metadata ports.MetadataClient
}

// Name identifies the strategy in logs.
func (s *BindgenStrategy) Name() string { return "cargo+wasm-bindgen" }

// Run executes the fallback build.
func (s *BindgenStrategy) Run(ctx context.Context, in Input) (domain.BuildResult, error) {
	res, err := s.run(ctx, in)
	if err != nil {
		joined := errors.Join(domain.ErrBuildFailed, err)
		return domain.BuildResult{}, zerr.With(joined, "hint", "install wasm-pack for the supported build path")
	}
	return res, nil
}

func (s *BindgenStrategy) run(ctx context.Context, in Input) (domain.BuildResult, error) {
	crateDir := in.Manifest.Dir

	build := &domain.Command{
		Tool: domain.ToolCargo,
		Args: []string{"build", "--target", domain.WasmTriple, in.Options.CargoFlag},
		Dir:  crateDir,
	}
	if err := s.runner.Execute(ctx, build, in.Output, in.Output); err != nil {
		return domain.BuildResult{}, err
	}

	targetDir, err := s.metadata.TargetDirectory(ctx, crateDir)
	if err != nil {
		return domain.BuildResult{}, err
	}

	moduleName := in.Manifest.ModuleName()
	wasmPath := filepath.Join(targetDir, domain.WasmTriple, in.Options.TargetSubdir, moduleName+".wasm")
	outDir := filepath.Join(crateDir, domain.PkgDirName)

	bindgen := &domain.Command{
		Tool: domain.ToolWasmBindgen,
		Args: []string{wasmPath, "--out-dir", outDir, "--target", in.Target.BindgenTarget()},
		Dir:  crateDir,
	}
	if err := s.runner.Execute(ctx, bindgen, in.Output, in.Output); err != nil {
		return domain.BuildResult{}, err
	}

	return domain.BuildResult{
		CrateDir:   crateDir,
		OutDir:     outDir,
		ModuleName: moduleName,
	}, nil
}
