package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeCatalog(t, dir, "engines.yaml", `
engines:
  dialectical:
    name: Dialectical Analysis
    category: structural
    dimensions:
      - key: contradiction
        description: Internal tensions the text works through
    depth_levels:
      - depth: standard
        passes:
          - number: 1
            label: Surface reading
            stance: analytic
          - number: 2
            label: Deep reading
            stance: phantom_stance
            consumes_from: [1]
  genealogical:
    name: Genealogical Analysis
    category: historical
`)
	writeCatalog(t, dir, "chains.yaml", `
chains:
  core:
    name: Core Chain
    engines: [dialectical, genealogical]
  broken:
    engines: [phantom_engine]
`)
	writeCatalog(t, dir, "stances.yaml", `
stances:
  analytic:
    name: Analytic
    prose: Read for argument structure.
`)
	writeCatalog(t, dir, "operationalizations.yaml", `
operationalizations:
  dialectical:
    depths:
      deep:
        - number: 1
          label: Operationalized deep pass
          stance: analytic
          focus_dimensions: [contradiction]
`)
	return dir
}

func TestInitializeLoadsCatalogs(t *testing.T) {
	cfg, err := Initialize(context.Background(), fixtureDir(t))
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.Engines)
	assert.Equal(t, 2, stats.Chains)
	assert.Equal(t, 1, stats.Stances)
	assert.Equal(t, 1, stats.Operationalizations)
	assert.Equal(t, 0, stats.Workflows)

	// Keys are stamped from the map key, not the document body
	engine, err := cfg.GetEngine("dialectical")
	require.NoError(t, err)
	assert.Equal(t, "dialectical", engine.Key)
	assert.Equal(t, "Dialectical Analysis", engine.Name)
	require.NotNil(t, engine.Dimension("contradiction"))
	assert.Nil(t, engine.Dimension("nonexistent"))

	passes := engine.InlinePasses("standard")
	require.Len(t, passes, 2)
	assert.Equal(t, "analytic", passes[0].StanceKey)
	assert.Equal(t, []int{1}, passes[1].ConsumesFrom)

	// Operationalization wins over inline passes at its depth
	deep := cfg.ResolvePasses(engine, "deep")
	require.Len(t, deep, 1)
	assert.Equal(t, "Operationalized deep pass", deep[0].Label)
	assert.Equal(t, passes, cfg.ResolvePasses(engine, "standard"))

	chain, err := cfg.GetChain("core")
	require.NoError(t, err)
	assert.Equal(t, BlendSequential, chain.EffectiveBlendMode())
}

func TestInitializeCollectsFindings(t *testing.T) {
	cfg, err := Initialize(context.Background(), fixtureDir(t))
	require.NoError(t, err)

	var catalogs []string
	for _, f := range cfg.Findings {
		catalogs = append(catalogs, f.Catalog+"/"+f.Key)
	}
	assert.Contains(t, catalogs, "chains/broken")
	assert.Contains(t, catalogs, "engines/dialectical")
}

func TestInitializeEmptyDir(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 0, stats.Engines)
	assert.Equal(t, 0, stats.Views)
	assert.Empty(t, cfg.Findings)

	// Absent settings.yaml falls back to defaults wholesale
	assert.Equal(t, DefaultSettings(), cfg.Settings)
}

func TestSettingsPartialMerge(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "settings.yaml", `
queue:
  workers: 4
retention:
  enabled: true
  max_age: 24h
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Settings.Queue.Workers)
	assert.Equal(t, DefaultSettings().Queue.ClaimInterval, cfg.Settings.Queue.ClaimInterval)
	assert.True(t, cfg.Settings.Retention.Enabled)
	assert.Equal(t, "24h0m0s", cfg.Settings.Retention.MaxAge.String())
	assert.Equal(t, DefaultSettings().Retention.SweepInterval, cfg.Settings.Retention.SweepInterval)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "engines.yaml", "engines: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestReloadPicksUpCatalogChanges(t *testing.T) {
	dir := fixtureDir(t)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Engines.Count())

	writeCatalog(t, dir, "engines.yaml", `
engines:
  dialectical:
    name: Dialectical Analysis
  genealogical:
    name: Genealogical Analysis
  rhetorical:
    name: Rhetorical Analysis
`)
	require.NoError(t, cfg.Engines.Reload())
	assert.Equal(t, 3, cfg.Engines.Count())
	assert.True(t, cfg.Engines.Has("rhetorical"))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXEGETE_TEST_MODEL", "claude-sonnet-4-5")

	out := ExpandEnv([]byte("model: {{.EXEGETE_TEST_MODEL}}"))
	assert.Equal(t, "model: claude-sonnet-4-5", string(out))

	// Missing variables expand to empty
	out = ExpandEnv([]byte("key: {{.EXEGETE_TEST_ABSENT}}"))
	assert.Equal(t, "key: ", string(out))

	// Plain dollar signs pass through untouched
	out = ExpandEnv([]byte(`pattern: ^\$[0-9]+`))
	assert.Equal(t, `pattern: ^\$[0-9]+`, string(out))
}

func TestEngineListSummaries(t *testing.T) {
	cfg, err := Initialize(context.Background(), fixtureDir(t))
	require.NoError(t, err)

	summaries := cfg.Engines.ListSummaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, "dialectical", summaries[0].Key)
	assert.Equal(t, "genealogical", summaries[1].Key)
}
