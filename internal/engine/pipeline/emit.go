package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/zerr"
)

// emitContent produces the JavaScript asset content handed to the host. A
// node-targeted module inlines the generated loader verbatim, so the server
// runtime resolves the wasm binary relative to the emitted file. A browser
// build re-exports the loader instead, letting the host bundler trace and
// bundle the generated module itself.
func emitContent(target domain.Target, res domain.BuildResult, arts domain.OutputArtifacts) (string, error) {
	if target == domain.TargetNode {
		loaderPath := filepath.Join(res.OutDir, res.ModuleName+".js")
		data, err := os.ReadFile(loaderPath) //nolint:gosec // Path is derived from the build result
		if err != nil {
			wrapped := zerr.Wrap(err, "failed to read generated loader")
			return "", zerr.With(wrapped, "path", loaderPath)
		}
		return string(data), nil
	}

	return fmt.Sprintf("export * from %q;\n", arts.Loader), nil
}

// EmitPath returns the path the CLI writes emitted content to: the requesting
// asset's path with the emit suffix appended.
func EmitPath(asset string) string {
	return asset + domain.EmitSuffix
}

// WriteEmit writes emitted content next to the requesting asset.
func WriteEmit(asset, content string) error {
	path := EmitPath(asset)
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrEmitWriteFailed, err), "path", path)
	}
	return nil
}
