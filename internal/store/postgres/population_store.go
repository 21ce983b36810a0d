package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/abacgen/internal/models"
	"github.com/wolfeidau/abacgen/internal/population"
	"github.com/wolfeidau/abacgen/internal/store"
)

// Config holds configuration for the PostgreSQL population store.
type Config struct {
	Pool PoolConfig

	// AutoMigrate applies the schema on startup.
	AutoMigrate bool
}

// PopulationStore implements store.PopulationStore using PostgreSQL. Bulk
// entity loads use the COPY protocol; a whole run is saved in a single
// transaction, so a failed load leaves nothing behind.
type PopulationStore struct {
	pool *pgxpool.Pool
}

var _ store.PopulationStore = (*PopulationStore)(nil)

// NewPopulationStore connects to the database and optionally applies the
// schema.
func NewPopulationStore(ctx context.Context, cfg *Config) (*PopulationStore, error) {
	pool, err := NewPool(ctx, &cfg.Pool)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := runMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &PopulationStore{pool: pool}, nil
}

// SaveRun persists the run record and the full population under it.
func (s *PopulationStore) SaveRun(ctx context.Context, run *store.Run, pop *population.Population) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is safe to call after commit

	_, err = tx.Exec(ctx, `
		INSERT INTO runs (run_id, preset, seed) VALUES ($1, $2, $3)
	`, run.RunID, run.Preset, run.Seed)
	if err != nil {
		return mapPostgresError(err)
	}

	if err := copyOrganizations(ctx, tx, run.RunID, pop); err != nil {
		return err
	}
	if err := copyUsers(ctx, tx, run.RunID, pop); err != nil {
		return err
	}
	if err := copyDocuments(ctx, tx, run.RunID, pop); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	log.Debug().
		Str("run_id", run.RunID).
		Int("users", len(pop.Users)).
		Int("documents", len(pop.Documents)).
		Msg("Saved generation run")

	return nil
}

func copyOrganizations(ctx context.Context, tx pgx.Tx, runID string, pop *population.Population) error {
	rows := make([][]any, 0, len(pop.Organizations))
	for _, org := range pop.Organizations {
		rows = append(rows, []any{
			runID, org.OrgID, org.Departments, org.OfficeCount,
			org.Region, org.Country, org.FoundedYear, org.Size, org.Industry,
		})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"organizations"},
		[]string{
			"run_id", "org_id", "departments", "office_count",
			"region", "country", "founded_year", "org_size", "industry",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy organizations: %w", mapPostgresError(err))
	}
	return nil
}

func copyUsers(ctx context.Context, tx pgx.Tx, runID string, pop *population.Population) error {
	rows := make([][]any, 0, len(pop.Users))
	for _, u := range pop.Users {
		rows = append(rows, []any{
			runID, u.UserID, u.Role, u.Tenant(), u.Department, u.Office, u.Position,
			u.Registered, u.PayrollingPermissions, u.Supervisor,
			u.Supervisee.Sorted(), u.Projects.Sorted(),
			u.SecurityClearance, u.Experience, u.CustomerTier,
			u.Region, u.Country, u.City, u.TimeZone, u.WorkingHours,
			u.TemporaryAccess.Sorted(), u.DelegatedAuthority.Sorted(),
			u.CurrentProjects.Sorted(), u.PastProjects.Sorted(), u.Certifications.Sorted(),
			u.IsActive, u.LastLogin, u.ContractType, u.BudgetAuthority,
		})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"users"},
		[]string{
			"run_id", "user_id", "role", "tenant", "department", "office", "position",
			"registered", "payrolling_permissions", "supervisor",
			"supervisee", "projects",
			"security_clearance", "experience", "customer_tier",
			"region", "country", "city", "time_zone", "working_hours",
			"temporary_access", "delegated_authority",
			"current_projects", "past_projects", "certifications",
			"is_active", "last_login", "contract_type", "budget_authority",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy users: %w", mapPostgresError(err))
	}
	return nil
}

func copyDocuments(ctx context.Context, tx pgx.Tx, runID string, pop *population.Population) error {
	rows := make([][]any, 0, len(pop.Documents))
	for _, d := range pop.Documents {
		rows = append(rows, docRow(runID, d))
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"documents"},
		[]string{
			"run_id", "doc_id", "doc_type", "owner_id", "tenant", "department", "office",
			"is_confidential", "contains_personal_info", "recipients",
			"security_level", "created_date", "expiry_date", "project_id", "version",
			"doc_size", "format", "language", "region", "country", "approval_status",
			"reviewers", "approvers", "related_documents", "tags",
			"compliance_requirements", "retention_period", "is_archived",
			"last_modified", "access_count", "priority",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy documents: %w", mapPostgresError(err))
	}
	return nil
}

func docRow(runID string, d *models.Document) []any {
	return []any{
		runID, d.DocID, d.Type, d.OwnerID, d.Tenant, d.Department, d.Office,
		d.Confidential, d.ContainsPersonalInfo, d.Recipients.Sorted(),
		d.SecurityLevel, d.CreatedDate, d.ExpiryDate, d.ProjectID, d.Version,
		d.Size, d.Format, d.Language, d.Region, d.Country, d.ApprovalStatus,
		d.Reviewers.Sorted(), d.Approvers.Sorted(), d.RelatedDocuments.Sorted(), d.Tags.Sorted(),
		d.ComplianceRequirements.Sorted(), d.RetentionPeriod, d.IsArchived,
		d.LastModified, d.AccessCount, d.Priority,
	}
}

// CountEntities returns the persisted user and document counts for a run.
func (s *PopulationStore) CountEntities(ctx context.Context, runID string) (int64, int64, error) {
	var users, documents int64
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE run_id = $1`, runID).Scan(&users)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count users: %w", err)
	}
	err = s.pool.QueryRow(ctx, `SELECT count(*) FROM documents WHERE run_id = $1`, runID).Scan(&documents)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return users, documents, nil
}

// Close releases the connection pool.
func (s *PopulationStore) Close() {
	s.pool.Close()
}
