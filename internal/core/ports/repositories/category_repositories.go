package repositories

import (
	"context"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
)

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes the category matching both id and session.
	// Returns apperrors.ErrNotFound when no row matches, whether the id does
	// not exist or belongs to another session.
	DeleteCategory(ctx context.Context, sessionID string, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryWriter
}
