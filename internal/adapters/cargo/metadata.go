package cargo

import (
	"context"
	"encoding/json"
	"errors"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataClient = (*MetadataClient)(nil)

// metadataDTO is the slice of cargo metadata's JSON document we consume.
type metadataDTO struct {
	TargetDirectory string `json:"target_directory"`
}

// MetadataClient queries cargo's structured project description.
type MetadataClient struct {
	runner ports.CommandRunner
}

// NewMetadataClient creates a MetadataClient backed by the given runner.
func NewMetadataClient(runner ports.CommandRunner) *MetadataClient {
	return &MetadataClient{runner: runner}
}

// TargetDirectory returns the crate's shared build output directory as
// reported by cargo metadata --format-version 1.
func (c *MetadataClient) TargetDirectory(ctx context.Context, crateDir string) (string, error) {
	out, err := c.runner.Capture(ctx, &domain.Command{
		Tool: domain.ToolCargo,
		Args: []string{"metadata", "--format-version", "1"},
		Dir:  crateDir,
	})
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrMetadataQueryFailed, err), "crate_dir", crateDir)
	}

	var meta metadataDTO
	if err := json.Unmarshal(out, &meta); err != nil {
		return "", zerr.With(errors.Join(domain.ErrMetadataQueryFailed, err), "crate_dir", crateDir)
	}

	if meta.TargetDirectory == "" {
		err := zerr.Wrap(domain.ErrMetadataQueryFailed, "metadata reports no target_directory")
		return "", zerr.With(err, "crate_dir", crateDir)
	}

	return meta.TargetDirectory, nil
}
