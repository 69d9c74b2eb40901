package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/core/domain"
)

func TestEmitPath(t *testing.T) {
	assert.Equal(t, "/work/app/Cargo.toml.crab.js", EmitPath("/work/app/Cargo.toml"))
	assert.Equal(t, "/work/src/lib.rs.crab.js", EmitPath("/work/src/lib.rs"))
}

func TestWriteEmit(t *testing.T) {
	asset := filepath.Join(t.TempDir(), "Cargo.toml")

	require.NoError(t, WriteEmit(asset, "export {};\n"))

	data, err := os.ReadFile(EmitPath(asset))
	require.NoError(t, err)
	assert.Equal(t, "export {};\n", string(data))
}

func TestWriteEmit_Failure(t *testing.T) {
	asset := filepath.Join(t.TempDir(), "missing-dir", "Cargo.toml")

	err := WriteEmit(asset, "content")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmitWriteFailed)
}

func TestEmitContent_Browser(t *testing.T) {
	content, err := emitContent(domain.TargetBrowser, domain.BuildResult{}, domain.OutputArtifacts{
		Loader: "./pkg/my_crate.js",
	})
	require.NoError(t, err)
	assert.Equal(t, "export * from \"./pkg/my_crate.js\";\n", content)
}

func TestEmitContent_Node(t *testing.T) {
	outDir := t.TempDir()
	loader := "const wasm = require('./my_crate_bg.wasm');\n"
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "my_crate.js"), []byte(loader), 0o644))

	content, err := emitContent(domain.TargetNode, domain.BuildResult{
		OutDir:     outDir,
		ModuleName: "my_crate",
	}, domain.OutputArtifacts{})
	require.NoError(t, err)
	assert.Equal(t, loader, content)
}

func TestEmitContent_Node_MissingLoader(t *testing.T) {
	_, err := emitContent(domain.TargetNode, domain.BuildResult{
		OutDir:     t.TempDir(),
		ModuleName: "my_crate",
	}, domain.OutputArtifacts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read generated loader")
}
