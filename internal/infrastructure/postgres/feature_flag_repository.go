package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.FeatureFlagRepository = (*FeatureFlagRepo)(nil)

// FeatureFlagRepo tabla feature_flags.
type FeatureFlagRepo struct {
	q Querier
}

// NewFeatureFlagRepository construye el adaptador.
func NewFeatureFlagRepository(q Querier) *FeatureFlagRepo {
	return &FeatureFlagRepo{q: q}
}

const flagColumns = `key, enabled, description, created_at, updated_at`

func scanFlag(row pgx.Row) (*entity.FeatureFlag, error) {
	var f entity.FeatureFlag
	var desc *string
	if err := row.Scan(&f.Key, &f.Enabled, &desc, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.Description = derefString(desc)
	return &f, nil
}

func (r *FeatureFlagRepo) Get(ctx context.Context, key string) (*entity.FeatureFlag, error) {
	f, err := scanFlag(r.q.QueryRow(ctx, `SELECT `+flagColumns+` FROM feature_flags WHERE key = $1`, key))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feature flag: %w", err)
	}
	return f, nil
}

func (r *FeatureFlagRepo) List(ctx context.Context) ([]*entity.FeatureFlag, error) {
	rows, err := r.q.Query(ctx, `SELECT `+flagColumns+` FROM feature_flags ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list feature flags: %w", err)
	}
	defer rows.Close()
	var list []*entity.FeatureFlag
	for rows.Next() {
		f, err := scanFlag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feature flag: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *FeatureFlagRepo) Create(ctx context.Context, f *entity.FeatureFlag) error {
	query := `
		INSERT INTO feature_flags (key, enabled, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, f.Key, f.Enabled, nullString(f.Description), f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert feature flag: %w", err)
	}
	return nil
}

// Update aplica solo los campos no nulos del patch (COALESCE) y devuelve la fila resultante.
func (r *FeatureFlagRepo) Update(ctx context.Context, key string, p entity.FeatureFlagPatch) (*entity.FeatureFlag, error) {
	query := `
		UPDATE feature_flags
		SET enabled = COALESCE($2, enabled),
			description = COALESCE($3, description),
			updated_at = now()
		WHERE key = $1
		RETURNING ` + flagColumns
	f, err := scanFlag(r.q.QueryRow(ctx, query, key, p.Enabled, p.Description))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update feature flag: %w", err)
	}
	return f, nil
}

func (r *FeatureFlagRepo) Delete(ctx context.Context, key string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM feature_flags WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete feature flag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
