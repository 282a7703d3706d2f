package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintracc/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: repo}
}

// Ensure categoryServiceImpl implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, sessionID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		SessionID:  sessionID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, sessionID string, categoryID string) error {
	// ErrNotFound passes through untouched: a missing id and a foreign
	// session's id must stay indistinguishable to the caller.
	if err := s.categoryRepo.DeleteCategory(ctx, sessionID, categoryID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
