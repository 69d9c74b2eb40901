package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/adapters/config"
	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func writeProject(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ProjectFileName), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, `target: node
assets:
  - app/Cargo.toml
  - lib/src/lib.rs
concurrency: 2
`)

	project, err := newTestLoader(t).Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, project.Root)
	assert.Equal(t, domain.TargetNode, project.Target)
	assert.Equal(t, 2, project.Concurrency)
	assert.Equal(t, []string{
		filepath.Join(root, "app", "Cargo.toml"),
		filepath.Join(root, "lib", "src", "lib.rs"),
	}, project.Assets)
}

func TestLoader_Load_DefaultTarget(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "assets:\n  - app/Cargo.toml\n")

	project, err := newTestLoader(t).Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.TargetBrowser, project.Target)
}

func TestLoader_Load_FromSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "assets:\n  - app/Cargo.toml\n")

	sub := filepath.Join(root, "app", "src")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	project, err := newTestLoader(t).Load(sub)
	require.NoError(t, err)
	assert.Equal(t, root, project.Root)
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := newTestLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestLoader_Load_UnknownField(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "assets:\n  - app/Cargo.toml\ntypo_field: true\n")

	_, err := newTestLoader(t).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectParseFailed)
	assert.Contains(t, err.Error(), "typo_field")
}

func TestLoader_Load_InvalidTarget(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "target: desktop\nassets:\n  - app/Cargo.toml\n")

	_, err := newTestLoader(t).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProject)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestLoader_Load_DuplicateAssets(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "assets:\n  - app/Cargo.toml\n  - ./app/Cargo.toml\n")

	_, err := newTestLoader(t).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProject)
	assert.Contains(t, err.Error(), "duplicate asset")
}

func TestLoader_Load_NegativeConcurrency(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "assets:\n  - app/Cargo.toml\nconcurrency: -1\n")

	_, err := newTestLoader(t).Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency must not be negative")
}

func TestLoader_DiscoverRoot(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "assets: []\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	got, err := newTestLoader(t).DiscoverRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestLoader_DiscoverRoot_NotFound(t *testing.T) {
	_, err := newTestLoader(t).DiscoverRoot(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
