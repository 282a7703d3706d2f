package services

import (
	portsrepo "github.com/fintracc/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
)

// NewContainer creates a service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
	}
}
