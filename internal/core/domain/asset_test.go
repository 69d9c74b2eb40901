package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crab/internal/core/domain"
)

func TestClassifyAsset(t *testing.T) {
	tests := []struct {
		name string
		path string
		want domain.AssetKind
	}{
		{name: "crate manifest", path: filepath.Join("crates", "demo", "Cargo.toml"), want: domain.KindCrateManifest},
		{name: "crate manifest lowercase", path: "cargo.toml", want: domain.KindCrateManifest},
		{name: "rust source", path: filepath.Join("src", "lib.rs"), want: domain.KindRustSource},
		{name: "generic toml", path: "Settings.toml", want: domain.KindConfig},
		{name: "javascript", path: "index.js", want: domain.KindUnsupported},
		{name: "no extension", path: "Makefile", want: domain.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClassifyAsset(tt.path))
		})
	}
}

func TestAssetKindString(t *testing.T) {
	assert.Equal(t, "crate-manifest", domain.KindCrateManifest.String())
	assert.Equal(t, "rust-source", domain.KindRustSource.String())
	assert.Equal(t, "config", domain.KindConfig.String())
	assert.Equal(t, "unsupported", domain.KindUnsupported.String())
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Target
		wantErr bool
	}{
		{name: "node", input: "node", want: domain.TargetNode},
		{name: "nodejs alias", input: "nodejs", want: domain.TargetNode},
		{name: "browser", input: "browser", want: domain.TargetBrowser},
		{name: "bundler alias", input: "bundler", want: domain.TargetBrowser},
		{name: "case insensitive", input: "Node", want: domain.TargetNode},
		{name: "web is not a valid consumption target", input: "web", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTarget(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrInvalidTarget))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetMapping(t *testing.T) {
	assert.Equal(t, "nodejs", domain.TargetNode.PackTarget())
	assert.Equal(t, "bundler", domain.TargetBrowser.PackTarget())
	assert.Equal(t, "nodejs", domain.TargetNode.BindgenTarget())
	assert.Equal(t, "web", domain.TargetBrowser.BindgenTarget())
}
