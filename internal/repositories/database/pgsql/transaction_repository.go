package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fintracc/finance_tracker_app/internal/apperrors"
	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintracc/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintracc/finance_tracker_app/internal/models"
	"github.com/fintracc/finance_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = "id, title, amount, category_id, session_id, created_at"

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	model := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (id, title, amount, category_id, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.TransactionID,
		model.Title,
		model.Amount,
		model.CategoryID,
		model.SessionID,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", model.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves the row matching both id and session.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, sessionID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE session_id = $1 AND id = $2;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, sessionID, transactionID).Scan(
		&m.TransactionID,
		&m.Title,
		&m.Amount,
		&m.CategoryID,
		&m.SessionID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns one page of rows matching the filter plus the
// total match count before pagination.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, sessionID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	where, args := transactionPredicate(sessionID, filter)

	var total int64
	countQuery := "SELECT COUNT(*) FROM transactions WHERE " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	pageQuery := fmt.Sprintf(
		"SELECT %s FROM transactions WHERE %s %s LIMIT $%d OFFSET $%d",
		transactionColumns, where, orderClause(filter), len(args)+1, len(args)+2,
	)
	pageArgs := append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]models.Transaction, 0, filter.Limit)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.Title,
			&m.Amount,
			&m.CategoryID,
			&m.SessionID,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}

	return &domain.TransactionPage{
		Transactions: mapping.ToDomainTransactionSlice(txns),
		Total:        total,
	}, nil
}

// SumTransactionAmounts returns the signed sum of the session's amounts.
func (r *PgxTransactionRepository) SumTransactionAmounts(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE session_id = $1;`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, sessionID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return sum, nil
}

// transactionPredicate builds the WHERE clause for the listing pipeline: the
// session match AND-composed with every supplied filter. Returns the clause
// and the ordered argument list; placeholders are numbered by argument
// position so the clause composes with further LIMIT/OFFSET arguments.
func transactionPredicate(sessionID string, f domain.TransactionFilter) (string, []any) {
	conditions := []string{"session_id = $1"}
	args := []any{sessionID}

	add := func(format string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if f.StartDate != nil {
		add("created_at >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("created_at <= $%d", *f.EndDate)
	}
	// Direction is not stored; the amount sign carries it.
	switch f.Type {
	case domain.Credit:
		conditions = append(conditions, "amount > 0")
	case domain.Debit:
		conditions = append(conditions, "amount < 0")
	}
	// Value bounds compare against the stored signed amount, so a debit of
	// 500 (stored -500) falls below minValue=0.
	if f.MinValue != nil {
		add("amount >= $%d", *f.MinValue)
	}
	if f.MaxValue != nil {
		add("amount <= $%d", *f.MaxValue)
	}
	if f.CategoryID != nil {
		add("category_id = $%d", *f.CategoryID)
	}

	return strings.Join(conditions, " AND "), args
}

// orderClause maps the requested sort field and direction onto columns. The
// id column breaks ties so equal sort keys keep a stable order across pages.
func orderClause(f domain.TransactionFilter) string {
	column := "created_at"
	if f.SortBy == domain.SortByValue {
		column = "amount"
	}
	direction := "DESC"
	if f.Order == domain.OrderAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id", column, direction)
}
