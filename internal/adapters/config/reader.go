// Package config reads runtime configs and global.json files.
package config

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigReader = (*Reader)(nil)

// Reader implements ports.ConfigReader on top of the filesystem.
type Reader struct {
	logger ports.Logger
}

// NewReader creates a new Reader.
func NewReader(logger ports.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadRuntimeConfig parses the runtime config at path into framework references.
func (r *Reader) ReadRuntimeConfig(path string, optional bool) (*domain.RuntimeConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if optional && errors.Is(err, iofs.ErrNotExist) {
			r.logger.Debug("runtime config not found", "path", path)
			return &domain.RuntimeConfig{Path: path}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read runtime config"), "path", path)
	}

	var file RuntimeConfigFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidRuntimeConfig, err.Error()), "path", path)
	}

	refs, err := frameworkReferences(file.RuntimeOptions)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	r.logger.Debug("read runtime config", "path", path, "frameworks", len(refs))
	return &domain.RuntimeConfig{Path: path, Frameworks: refs}, nil
}

func frameworkReferences(opts RuntimeOptionsDTO) ([]domain.FrameworkReference, error) {
	dtos := opts.Frameworks
	if opts.Framework != nil {
		dtos = append([]FrameworkDTO{*opts.Framework}, dtos...)
	}
	if len(dtos) == 0 {
		return nil, nil
	}

	refs := make([]domain.FrameworkReference, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Name == "" {
			return nil, zerr.Wrap(domain.ErrInvalidRuntimeConfig, "framework reference without a name")
		}
		version, err := domain.ParseVersion(dto.Version)
		if err != nil {
			return nil, zerr.With(err, "framework", dto.Name)
		}

		ref := domain.NewFrameworkReference(dto.Name, version)
		if err := applySettings(&ref, opts.RollForwardSettingsDTO); err != nil {
			return nil, err
		}
		if err := applySettings(&ref, dto.RollForwardSettingsDTO); err != nil {
			return nil, zerr.With(err, "framework", dto.Name)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// applySettings overwrites the settings of ref that dto specifies.
func applySettings(ref *domain.FrameworkReference, dto RollForwardSettingsDTO) error {
	if dto.RollForward != nil && dto.RollForwardOnNoCandidateFx != nil {
		return zerr.Wrap(domain.ErrConflictingRollForwardSettings,
			"rollForward and rollForwardOnNoCandidateFx are mutually exclusive")
	}

	switch {
	case dto.RollForward != nil:
		policy, err := domain.ParseRollForwardPolicy(*dto.RollForward)
		if err != nil {
			return err
		}
		ref.Policy = policy
	case dto.RollForwardOnNoCandidateFx != nil:
		policy, err := domain.ParseRollForwardOnNoCandidateFx(*dto.RollForwardOnNoCandidateFx)
		if err != nil {
			return err
		}
		ref.Policy = policy
	}

	if dto.ApplyPatches != nil {
		ref.ApplyPatches = *dto.ApplyPatches
	}
	return nil
}
