package main

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/bank"
	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/storage"
	"github.com/prepdeck/prepdeck/internal/subject"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newStore builds the profile store over the configured storage backend. The
// returned closer releases the backend and must always be called.
func newStore(cfg *config.Config) (*profile.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		kv, err := storage.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("storage.OpenSQLite() > %w", err)
		}
		return profile.NewStore(kv), kv.Close, nil
	default:
		kv, err := storage.NewFileKV(cfg.DataDirectory)
		if err != nil {
			return nil, nil, fmt.Errorf("storage.NewFileKV() > %w", err)
		}
		return profile.NewStore(kv), func() error { return nil }, nil
	}
}

// newLoader builds the question bank loader, remote when a base URL is
// configured and local otherwise.
func newLoader(cfg *config.Config) (*bank.Loader, func() error) {
	if cfg.Banks.BaseURL != "" {
		source := bank.NewHTTPSource(cfg.Banks.BaseURL, cfg.Banks.RetryAttempts)
		return bank.NewLoader(source), source.Close
	}
	return bank.NewLoader(bank.NewFileSource(cfg.Banks.Directory)), func() error { return nil }
}

func loadCatalog(cfg *config.Config) ([]subject.Subject, error) {
	if cfg.Banks.SubjectsFile == "" {
		return subject.DefaultCatalog(), nil
	}
	catalog, err := subject.LoadCatalog(cfg.Banks.SubjectsFile)
	if err != nil {
		return nil, fmt.Errorf("subject.LoadCatalog() > %w", err)
	}
	return catalog, nil
}

// loadSubjectBank resolves a subject by name and loads its question bank.
func loadSubjectBank(ctx context.Context, cfg *config.Config, subjectName string) (subject.Subject, []bank.Question, func() error, error) {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return subject.Subject{}, nil, nil, err
	}
	sub, err := subject.Find(catalog, subjectName)
	if err != nil {
		return subject.Subject{}, nil, nil, err
	}

	loader, closeLoader := newLoader(cfg)
	questions, err := loader.Load(ctx, sub)
	if err != nil {
		_ = closeLoader()
		return subject.Subject{}, nil, nil, fmt.Errorf("loader.Load() > %w", err)
	}
	return sub, questions, closeLoader, nil
}
