package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent/document"
	testutil "github.com/exegete-ai/exegete/test/util"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("postgres url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgresql://ignored")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "exegete_prod")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, BackendPostgres, cfg.Backend)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "exegete_prod", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
	})

	t.Run("sqlite url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "sqlite:///var/lib/exegete.db")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, BackendSQLite, cfg.Backend)
		assert.Equal(t, "/var/lib/exegete.db", cfg.Path)
	})

	t.Run("unset url defaults to sqlite", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_PATH", "")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, BackendSQLite, cfg.Backend)
		assert.Equal(t, "exegete.db", cfg.Path)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "mysql://nope")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://ignored")
		t.Setenv("DB_PORT", "not-a-port")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
	})
}

func TestNewClientUnknownBackend(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Backend: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database backend")
}

func TestNewClientSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		Backend: BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "exegete_test.db"),
	}

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, BackendSQLite, client.Backend())

	// Schema bootstrap happened: entity writes work immediately
	doc, err := client.Document.Create().
		SetID("doc-1").
		SetTitle("Phenomenology of Spirit").
		SetRole(document.RoleTarget).
		SetContent("the text").
		SetCharCount(8).
		Save(ctx)
	require.NoError(t, err)

	got, err := client.Document.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phenomenology of Spirit", got.Title)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 1, health.MaxOpenConns)
}

func TestHealthUnhealthy(t *testing.T) {
	client, err := NewClient(context.Background(), Config{
		Backend: BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "closed.db"),
	})
	require.NoError(t, err)

	db := client.DB()
	require.NoError(t, client.Close())
	require.NoError(t, db.Close())

	health, err := Health(context.Background(), db)
	require.Error(t, err)
	assert.Equal(t, "unhealthy", health.Status)
}

func TestPostgresBackendRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	ctx := context.Background()
	client, db := testutil.SetupTestDatabase(t)

	doc, err := client.Document.Create().
		SetID("doc-pg").
		SetTitle("Critique of Pure Reason").
		SetAuthor("Kant").
		SetRole(document.RolePriorWork).
		SetContent("the prior text").
		SetCharCount(14).
		Save(ctx)
	require.NoError(t, err)

	got, err := client.Document.Query().Where(document.RoleEQ(document.RolePriorWork)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)

	health, err := Health(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}
