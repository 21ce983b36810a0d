//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wolfeidau/abacgen/internal/population"
	"github.com/wolfeidau/abacgen/internal/store"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) (*PopulationStore, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	st, err := NewPopulationStore(ctx, &Config{
		Pool:        PoolConfig{ConnString: connString},
		AutoMigrate: true,
	})
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = container.Terminate(ctx)
	}
	return st, cleanup
}

func generateTestPopulation(t *testing.T, preset string) (*population.Config, *population.Population) {
	cfg, err := population.ConfigForPreset(preset)
	require.NoError(t, err)
	cfg.Users = 100
	cfg.Documents = 40
	cfg.HelpdeskOperators = 5
	cfg.ApplicationAdmins = 5
	cfg.Customers = 10
	cfg.ProjectManagers = 5
	cfg.LegalOfficers = 2
	cfg.FinancialOfficers = 2
	cfg.Auditors = 2
	cfg.Consultants = 2
	cfg.Projects = 5
	cfg.Now = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	pop, err := population.NewGenerator(cfg, zerolog.Nop()).Run()
	require.NoError(t, err)
	return cfg, pop
}

func TestSaveRunAndCountEntities(t *testing.T) {
	ctx := context.Background()
	st, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	for _, preset := range []string{population.PresetBasic, population.PresetExtended} {
		t.Run(preset, func(t *testing.T) {
			cfg, pop := generateTestPopulation(t, preset)

			run := &store.Run{RunID: "run-" + preset, Preset: cfg.Preset, Seed: cfg.Seed}
			require.NoError(t, st.SaveRun(ctx, run, pop))

			users, documents, err := st.CountEntities(ctx, run.RunID)
			require.NoError(t, err)
			require.EqualValues(t, len(pop.Users), users)
			require.EqualValues(t, len(pop.Documents), documents)
		})
	}
}

func TestSaveRunDuplicateRunID(t *testing.T) {
	ctx := context.Background()
	st, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	cfg, pop := generateTestPopulation(t, population.PresetBasic)

	run := &store.Run{RunID: "run-dup", Preset: cfg.Preset, Seed: cfg.Seed}
	require.NoError(t, st.SaveRun(ctx, run, pop))

	err := st.SaveRun(ctx, run, pop)
	require.ErrorIs(t, err, store.ErrRunAlreadyExists)
}

func TestCountEntitiesUnknownRun(t *testing.T) {
	ctx := context.Background()
	st, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	users, documents, err := st.CountEntities(ctx, "no-such-run")
	require.NoError(t, err)
	require.Zero(t, users)
	require.Zero(t, documents)
}
