package mapping

import (
	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/fintracc/finance_tracker_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		SessionID:  d.SessionID,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		SessionID:  m.SessionID,
		CreatedAt:  m.CreatedAt,
	}
}
