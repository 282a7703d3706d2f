package pgsql

import (
	"context"
	"fmt"

	"github.com/fintracc/finance_tracker_app/internal/apperrors"
	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintracc/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintracc/finance_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category row.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	model := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (id, name, session_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.CategoryID,
		model.Name,
		model.SessionID,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", model.CategoryID, err)
	}
	return nil
}

// DeleteCategory removes the row matching both id and session. Zero affected
// rows means ErrNotFound, whether the id does not exist or belongs to a
// different session.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, sessionID string, categoryID string) error {
	query := `DELETE FROM categories WHERE session_id = $1 AND id = $2;`

	ct, err := r.Pool.Exec(ctx, query, sessionID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
