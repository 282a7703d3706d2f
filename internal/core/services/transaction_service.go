package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintracc/finance_tracker_app/internal/apperrors"
	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintracc/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintracc/finance_tracker_app/internal/core/ports/services"
	"github.com/fintracc/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionServiceImpl{txnRepo: repo}
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, sessionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	// The binding layer guarantees presence and enum membership; the
	// magnitude sign check lives here because decimals carry no numeric
	// validator tags.
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be a positive magnitude: %w", apperrors.ErrValidation)
	}

	amount := req.Amount
	if req.Type == domain.Debit {
		amount = amount.Neg()
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Title:         req.Title,
		Amount:        amount,
		CategoryID:    req.CategoryID,
		SessionID:     sessionID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(req.Type)))
	return &txn, nil
}

func (s *transactionServiceImpl) GetTransactionByID(ctx context.Context, sessionID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, sessionID, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context, sessionID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := params.ToFilter()
	if err != nil {
		// Should not happen after binding validation, but a malformed date
		// slipping through is still the caller's fault.
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	page, err := s.txnRepo.ListTransactions(ctx, sessionID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	data := make([]dto.TransactionResponse, len(page.Transactions))
	for i := range page.Transactions {
		data[i] = dto.ToTransactionResponse(&page.Transactions[i])
	}

	// ceil(total/limit) in integer math; 0 rows means 0 pages.
	totalPages := (page.Total + int64(filter.Limit) - 1) / int64(filter.Limit)

	return &dto.ListTransactionsResponse{
		Data: data,
		Pagination: dto.PaginationResponse{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      page.Total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *transactionServiceImpl) GetTransactionsSummary(ctx context.Context, sessionID string) (*domain.TransactionSummary, error) {
	sum, err := s.txnRepo.SumTransactionAmounts(ctx, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize transactions")
		return nil, err
	}
	return &domain.TransactionSummary{Amount: sum}, nil
}
