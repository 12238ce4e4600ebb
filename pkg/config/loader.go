package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog file names under the config directory. Each holds one top-level
// map keyed by catalog key; a missing file yields an empty registry.
const (
	enginesFile             = "engines.yaml"
	chainsFile              = "chains.yaml"
	stancesFile             = "stances.yaml"
	operationalizationsFile = "operationalizations.yaml"
	workflowsFile           = "workflows.yaml"
	viewsFile               = "views.yaml"
	transformationsFile     = "transformations.yaml"
	settingsFile            = "settings.yaml"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load catalog YAML files from configDir
//  2. Expand environment variables
//  3. Build in-memory registries with reload hooks
//  4. Run the cross-catalog validation pass (non-fatal findings)
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Catalog inconsistencies are collected, not fatal: the catalogs are
	// maintained outside this repo and a broken cross-reference should
	// degrade the single engine, not the whole service.
	cfg.Findings = Validate(cfg)
	for _, f := range cfg.Findings {
		log.Warn("Catalog validation finding", "catalog", f.Catalog, "key", f.Key, "detail", f.Detail)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"engines", stats.Engines,
		"chains", stats.Chains,
		"stances", stats.Stances,
		"operationalizations", stats.Operationalizations,
		"workflows", stats.Workflows,
		"views", stats.Views,
		"transformations", stats.Transformations,
		"findings", stats.Findings)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	engines, err := loadCatalog[EngineDefinition](configDir, enginesFile, "engines")
	if err != nil {
		return nil, err
	}
	chains, err := loadCatalog[ChainDefinition](configDir, chainsFile, "chains")
	if err != nil {
		return nil, err
	}
	stances, err := loadCatalog[StanceDefinition](configDir, stancesFile, "stances")
	if err != nil {
		return nil, err
	}
	ops, err := loadCatalog[Operationalization](configDir, operationalizationsFile, "operationalizations")
	if err != nil {
		return nil, err
	}
	workflows, err := loadCatalog[WorkflowTemplate](configDir, workflowsFile, "workflows")
	if err != nil {
		return nil, err
	}
	views, err := loadCatalog[ViewDefinition](configDir, viewsFile, "views")
	if err != nil {
		return nil, err
	}
	transformations, err := loadCatalog[TransformationTemplate](configDir, transformationsFile, "transformations")
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(configDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		configDir:           configDir,
		Settings:            settings,
		Engines:             NewEngineRegistry(fillKeys(engines, func(e *EngineDefinition, k string) { e.Key = k })),
		Chains:              NewChainRegistry(fillKeys(chains, func(c *ChainDefinition, k string) { c.Key = k })),
		Stances:             NewStanceRegistry(fillKeys(stances, func(s *StanceDefinition, k string) { s.Key = k })),
		Operationalizations: NewOperationalizationRegistry(fillKeys(ops, func(o *Operationalization, k string) { o.EngineKey = k })),
		Workflows:           NewWorkflowRegistry(fillKeys(workflows, func(w *WorkflowTemplate, k string) { w.Key = k })),
		Views:               NewViewRegistry(fillKeys(views, func(v *ViewDefinition, k string) { v.Key = k })),
		Transformations:     NewTransformationRegistry(fillKeys(transformations, func(t *TransformationTemplate, k string) { t.Key = k })),
	}

	// Reload hooks re-read each catalog file on demand
	cfg.Engines.loader = func() (map[string]*EngineDefinition, error) {
		m, err := loadCatalog[EngineDefinition](configDir, enginesFile, "engines")
		return fillKeys(m, func(e *EngineDefinition, k string) { e.Key = k }), err
	}
	cfg.Chains.loader = func() (map[string]*ChainDefinition, error) {
		m, err := loadCatalog[ChainDefinition](configDir, chainsFile, "chains")
		return fillKeys(m, func(c *ChainDefinition, k string) { c.Key = k }), err
	}
	cfg.Stances.loader = func() (map[string]*StanceDefinition, error) {
		m, err := loadCatalog[StanceDefinition](configDir, stancesFile, "stances")
		return fillKeys(m, func(s *StanceDefinition, k string) { s.Key = k }), err
	}
	cfg.Operationalizations.loader = func() (map[string]*Operationalization, error) {
		m, err := loadCatalog[Operationalization](configDir, operationalizationsFile, "operationalizations")
		return fillKeys(m, func(o *Operationalization, k string) { o.EngineKey = k }), err
	}
	cfg.Workflows.loader = func() (map[string]*WorkflowTemplate, error) {
		m, err := loadCatalog[WorkflowTemplate](configDir, workflowsFile, "workflows")
		return fillKeys(m, func(w *WorkflowTemplate, k string) { w.Key = k }), err
	}
	cfg.Views.loader = func() (map[string]*ViewDefinition, error) {
		m, err := loadCatalog[ViewDefinition](configDir, viewsFile, "views")
		return fillKeys(m, func(v *ViewDefinition, k string) { v.Key = k }), err
	}
	cfg.Transformations.loader = func() (map[string]*TransformationTemplate, error) {
		m, err := loadCatalog[TransformationTemplate](configDir, transformationsFile, "transformations")
		return fillKeys(m, func(t *TransformationTemplate, k string) { t.Key = k }), err
	}

	return cfg, nil
}

// loadCatalog reads one catalog file into a map keyed by catalog key.
// A missing file is not an error — the registry is simply empty.
func loadCatalog[T any](configDir, file, topKey string) (map[string]T, error) {
	data, err := os.ReadFile(filepath.Join(configDir, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Catalog file not found, registry will be empty", "file", file)
			return map[string]T{}, nil
		}
		return nil, NewLoadError(file, err)
	}

	data = ExpandEnv(data)

	var doc map[string]map[string]T
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewLoadError(file, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	items, ok := doc[topKey]
	if !ok {
		slog.Warn("Catalog file has no top-level key, registry will be empty", "file", file, "key", topKey)
		return map[string]T{}, nil
	}
	return items, nil
}

// fillKeys copies map values to pointers and stamps each with its map key.
func fillKeys[T any](items map[string]T, set func(*T, string)) map[string]*T {
	out := make(map[string]*T, len(items))
	for k, v := range items {
		item := v
		set(&item, k)
		out[k] = &item
	}
	return out
}

func loadSettings(configDir string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(configDir, settingsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, NewLoadError(settingsFile, err)
	}

	data = ExpandEnv(data)

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, NewLoadError(settingsFile, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	settings.applyDefaults()
	return &settings, nil
}
