package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// OutputArtifacts holds the four artifact paths handed back to the host, all
// relative to the requesting asset's directory, forward-slashed, and carrying
// an explicit ./ or ../ prefix so the host can compare them across platforms.
type OutputArtifacts struct {
	// Loader is the generated entry script (<module>.js).
	Loader string
	// Glue is the companion implementation script (<module>_bg.js).
	Glue string
	// Wasm is the compiled binary (<module>_bg.wasm).
	Wasm string
	// DepInfo is the compiler-emitted dependency file (<module>.d).
	DepInfo string
}

// DepInfoPath returns the absolute path of the dependency file cargo emits
// for a build: <crate>/target/<triple>/<profile>/<module>.d.
func DepInfoPath(res BuildResult, opts BuildOptions) string {
	return filepath.Join(
		res.CrateDir,
		CargoTargetDirName,
		WasmTriple,
		opts.TargetSubdir,
		res.ModuleName+DepInfoExt,
	)
}

// ResolveArtifacts computes the artifact paths for a completed build,
// relativized from the requesting asset's directory. Relativization is never
// based on the process working directory.
func ResolveArtifacts(res BuildResult, opts BuildOptions, assetDir string) (OutputArtifacts, error) {
	var arts OutputArtifacts
	var err error

	if arts.Loader, err = relativize(assetDir, filepath.Join(res.OutDir, res.ModuleName+".js")); err != nil {
		return OutputArtifacts{}, err
	}
	if arts.Glue, err = relativize(assetDir, filepath.Join(res.OutDir, res.ModuleName+"_bg.js")); err != nil {
		return OutputArtifacts{}, err
	}
	if arts.Wasm, err = relativize(assetDir, filepath.Join(res.OutDir, res.ModuleName+"_bg.wasm")); err != nil {
		return OutputArtifacts{}, err
	}
	if arts.DepInfo, err = relativize(assetDir, DepInfoPath(res, opts)); err != nil {
		return OutputArtifacts{}, err
	}

	return arts, nil
}

// relativize computes fromDir-relative paths in the normalized form the host
// expects: forward slashes and an explicit relative marker.
func relativize(fromDir, target string) (string, error) {
	rel, err := filepath.Rel(fromDir, target)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to relativize artifact path"), "target", target)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel, nil
}
