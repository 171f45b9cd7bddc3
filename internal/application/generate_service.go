package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// GenerateService writes and verifies the per-profile lint files:
// load config → pick profiles → render catalog → emit or compare.
type GenerateService struct {
	catalog      domain.CatalogSource
	newWriter    domain.ProfileWriterFactory
	configLoader domain.ConfigLoader
	logger       *zerolog.Logger
}

func NewGenerateService(
	catalog domain.CatalogSource,
	newWriter domain.ProfileWriterFactory,
	configLoader domain.ConfigLoader,
	logger *zerolog.Logger,
) *GenerateService {
	return &GenerateService{
		catalog:      catalog,
		newWriter:    newWriter,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Generate emits one file per configured profile into the configured output
// directory. It stops at the first failing profile.
func (s *GenerateService) Generate(ctx context.Context, projectPath string) (*domain.GenerateReport, error) {
	cfg, profiles, err := s.load(projectPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := resolveDir(projectPath, cfg.OutputDir)
	writer := s.newWriter(cfg.ToolPrefix, cfg.WrapWidth)

	paths, err := writer.EmitAll(dir, s.catalog, profiles)
	if err != nil {
		return nil, fmt.Errorf("generating profiles: %w", err)
	}

	report := &domain.GenerateReport{OutputDir: dir}
	for i, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", path, err)
		}
		f := domain.GeneratedFile{
			Profile: profiles[i].String(),
			Path:    path,
			Lints:   len(s.catalog.For(profiles[i])),
			Bytes:   int(info.Size()),
		}
		s.logger.Debug().Str("profile", f.Profile).Str("path", f.Path).Int("lints", f.Lints).Msg("wrote profile")
		report.Files = append(report.Files, f)
	}

	s.logger.Info().Str("dir", dir).Int("files", len(report.Files)).Msg("generated lint profiles")
	return report, nil
}

// Check renders every configured profile in memory and compares it with the
// file on disk. Nothing is written.
func (s *GenerateService) Check(ctx context.Context, projectPath string) (*domain.DriftReport, error) {
	cfg, profiles, err := s.load(projectPath)
	if err != nil {
		return nil, err
	}

	dir := resolveDir(projectPath, cfg.OutputDir)
	writer := s.newWriter(cfg.ToolPrefix, cfg.WrapWidth)
	report := &domain.DriftReport{OutputDir: dir}

	for _, p := range profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var want bytes.Buffer
		if err := writer.Render(&want, s.catalog.For(p)); err != nil {
			return nil, fmt.Errorf("rendering %s profile: %w", p, err)
		}

		path := filepath.Join(dir, p.Filename())
		drift := domain.FileDrift{Profile: p.String(), Path: path, Status: domain.DriftNone}

		got, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			drift.Status = domain.DriftMissing
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		case !bytes.Equal(got, want.Bytes()):
			drift.Status = domain.DriftStale
		}

		if drift.Status != domain.DriftNone {
			s.logger.Warn().Str("profile", drift.Profile).Str("status", drift.Status).Msg("profile drift")
		}
		report.Files = append(report.Files, drift)
	}
	return report, nil
}

func (s *GenerateService) load(projectPath string) (domain.ProjectConfig, []domain.Profile, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, nil, fmt.Errorf("loading config: %w", err)
	}
	profiles, err := cfg.SelectedProfiles()
	if err != nil {
		return domain.ProjectConfig{}, nil, err
	}
	return cfg, profiles, nil
}

func resolveDir(projectPath, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectPath, dir)
}
