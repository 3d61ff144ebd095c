package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"statusboard/internal/errors"
	"statusboard/internal/summary"
	"statusboard/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UploadLogRepository records upload metadata for the audit trail. It never
// stores uploaded row data.
type UploadLogRepository interface {
	Record(ctx context.Context, audit models.UploadAudit, profile summary.Profile) error
	Recent(ctx context.Context, limit int) ([]models.UploadAudit, error)
}

// uploadLogRepository implements UploadLogRepository
type uploadLogRepository struct {
	db *sqlx.DB
}

// NewUploadLogRepository creates a new upload log repository and ensures the
// backing table exists.
func NewUploadLogRepository(db *sqlx.DB) (UploadLogRepository, error) {
	repo := &uploadLogRepository{db: db}
	if err := repo.ensureSchema(); err != nil {
		return nil, errors.StorageError("upload log schema bootstrap failed", err)
	}
	return repo, nil
}

func (r *uploadLogRepository) ensureSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS upload_log (
		id UUID PRIMARY KEY,
		file_name TEXT NOT NULL,
		total_rows INTEGER NOT NULL,
		column_count INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL,
		profile JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	_, err := r.db.Exec(schema)
	return err
}

// Record inserts one audit entry. The descriptive profile rides along as
// JSONB for ad hoc inspection.
func (r *uploadLogRepository) Record(ctx context.Context, audit models.UploadAudit, profile summary.Profile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if audit.ID == "" {
		audit.ID = uuid.NewString()
	}

	query := `INSERT INTO upload_log (
		id, file_name, total_rows, column_count, duration_ms, profile, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		audit.ID, audit.FileName, audit.TotalRows, audit.ColumnCount,
		audit.DurationMS, profileJSON, audit.CreatedAt,
	)
	if err != nil {
		return errors.StorageError("failed to record upload", err)
	}
	return nil
}

// Recent returns the newest audit entries, most recent first.
func (r *uploadLogRepository) Recent(ctx context.Context, limit int) ([]models.UploadAudit, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, file_name, total_rows, column_count, duration_ms, created_at
		FROM upload_log ORDER BY created_at DESC LIMIT $1`

	var audits []models.UploadAudit
	if err := r.db.SelectContext(ctx, &audits, query, limit); err != nil {
		return nil, errors.StorageError("failed to list uploads", err)
	}
	return audits, nil
}
