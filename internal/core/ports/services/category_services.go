package services

import (
	"context"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/fintracc/finance_tracker_app/internal/dto"
)

// CategorySvcFacade defines operations for category data.
type CategorySvcFacade interface {
	// CreateCategory persists a new category scoped to sessionID.
	CreateCategory(ctx context.Context, sessionID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes the session's category with the given id.
	// Returns apperrors.ErrNotFound when nothing matches.
	DeleteCategory(ctx context.Context, sessionID string, categoryID string) error
}
