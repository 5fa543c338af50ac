package postgres

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const mergeHistoryColumns = `id, user_id, source_wallet_id, source_wallet_name, source_currency,
	source_balance, source_transaction_count, target_wallet_id, target_wallet_name, target_currency,
	target_balance_before, target_balance_after, final_currency, target_transaction_count,
	merged_at, duration_ms`

// MergeHistoryRepo implements ports.MergeHistoryRepository.
type MergeHistoryRepo struct {
	pool Pool
}

// NewMergeHistoryRepo creates a new MergeHistoryRepo.
func NewMergeHistoryRepo(pool Pool) *MergeHistoryRepo {
	return &MergeHistoryRepo{pool: pool}
}

func (r *MergeHistoryRepo) Create(ctx context.Context, tx pgx.Tx, h *domain.WalletMergeHistory) error {
	query := `INSERT INTO wallet_merge_history (` + mergeHistoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := tx.Exec(ctx, query,
		h.ID, h.UserID, h.SourceWalletID, h.SourceWalletName, h.SourceCurrency,
		h.SourceBalance, h.SourceTransactionCount, h.TargetWalletID, h.TargetWalletName, h.TargetCurrency,
		h.TargetBalanceBefore, h.TargetBalanceAfter, h.FinalCurrency, h.TargetTransactionCount,
		h.MergedAt, h.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert merge history: %w", err)
	}
	return nil
}

// ListByUser returns the user's merges, newest first.
func (r *MergeHistoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletMergeHistory, error) {
	query := `SELECT ` + mergeHistoryColumns + ` FROM wallet_merge_history
		WHERE user_id = $1 ORDER BY merged_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list merge history: %w", err)
	}
	defer rows.Close()

	var out []domain.WalletMergeHistory
	for rows.Next() {
		h := domain.WalletMergeHistory{}
		err := rows.Scan(
			&h.ID, &h.UserID, &h.SourceWalletID, &h.SourceWalletName, &h.SourceCurrency,
			&h.SourceBalance, &h.SourceTransactionCount, &h.TargetWalletID, &h.TargetWalletName, &h.TargetCurrency,
			&h.TargetBalanceBefore, &h.TargetBalanceAfter, &h.FinalCurrency, &h.TargetTransactionCount,
			&h.MergedAt, &h.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("scan merge history row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merge history rows: %w", err)
	}
	return out, nil
}
