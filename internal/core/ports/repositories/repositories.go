package repositories

// RepositoryProvider bundles the repositories needed to build the service
// layer. Handing services a scoped provider (rather than a process-wide
// singleton) keeps tests isolated.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
}
