package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `id, from_wallet_id, to_wallet_id, amount, currency, original_amount,
	original_currency, exchange_rate, initiator_id, note, status, from_balance_before,
	from_balance_after, to_balance_before, to_balance_after, transfer_date, created_at, updated_at`

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransfer) error {
	query := `INSERT INTO wallet_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.FromWalletID, t.ToWalletID, t.Amount, t.Currency, t.OriginalAmount,
		t.OriginalCurrency, t.ExchangeRate, t.InitiatorID, t.Note, t.Status, t.FromBalanceBefore,
		t.FromBalanceAfter, t.ToBalanceBefore, t.ToBalanceAfter, t.TransferDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM wallet_transfers WHERE id = $1`

	t, err := scanTransfer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get transfer by id: %w", err)
	}
	return t, nil
}

// GetByIDForUpdate MUST be called within a transaction.
func (r *TransferRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM wallet_transfers WHERE id = $1 FOR UPDATE`

	t, err := scanTransfer(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get transfer for update: %w", err)
	}
	return t, nil
}

// ListByWallet returns transfers touching the wallet on either side, newest first.
func (r *TransferRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.WalletTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM wallet_transfers
		WHERE from_wallet_id = $1 OR to_wallet_id = $1
		ORDER BY transfer_date DESC, id`

	return r.list(ctx, r.pool, query, walletID)
}

func (r *TransferRepo) ListByWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.WalletTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM wallet_transfers
		WHERE from_wallet_id = $1 OR to_wallet_id = $1
		ORDER BY transfer_date DESC, id FOR UPDATE`

	return r.list(ctx, tx, query, walletID)
}

func (r *TransferRepo) ListByInitiator(ctx context.Context, userID uuid.UUID) ([]domain.WalletTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM wallet_transfers
		WHERE initiator_id = $1 ORDER BY transfer_date DESC, id`

	return r.list(ctx, r.pool, query, userID)
}

// Update rewrites everything but the initiator and creation time.
func (r *TransferRepo) Update(ctx context.Context, tx pgx.Tx, t *domain.WalletTransfer) error {
	query := `UPDATE wallet_transfers SET from_wallet_id = $1, to_wallet_id = $2, amount = $3,
		currency = $4, original_amount = $5, original_currency = $6, exchange_rate = $7,
		note = $8, status = $9, from_balance_before = $10, from_balance_after = $11,
		to_balance_before = $12, to_balance_after = $13, updated_at = $14
		WHERE id = $15`

	tag, err := tx.Exec(ctx, query,
		t.FromWalletID, t.ToWalletID, t.Amount, t.Currency, t.OriginalAmount,
		t.OriginalCurrency, t.ExchangeRate, t.Note, t.Status, t.FromBalanceBefore,
		t.FromBalanceAfter, t.ToBalanceBefore, t.ToBalanceAfter, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer not found: %s", t.ID)
	}
	return nil
}

// UpdateNote runs outside any caller transaction; the note carries no balance.
func (r *TransferRepo) UpdateNote(ctx context.Context, id uuid.UUID, note *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE wallet_transfers SET note = $1, updated_at = NOW() WHERE id = $2`, note, id)
	if err != nil {
		return fmt.Errorf("update transfer note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer not found: %s", id)
	}
	return nil
}

func (r *TransferRepo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM wallet_transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer not found: %s", id)
	}
	return nil
}

func (r *TransferRepo) list(ctx context.Context, q querier, query string, arg uuid.UUID) ([]domain.WalletTransfer, error) {
	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.WalletTransfer
	for rows.Next() {
		t := domain.WalletTransfer{}
		if err := rows.Scan(transferFields(&t)...); err != nil {
			return nil, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer rows: %w", err)
	}
	return transfers, nil
}

func transferFields(t *domain.WalletTransfer) []any {
	return []any{
		&t.ID, &t.FromWalletID, &t.ToWalletID, &t.Amount, &t.Currency, &t.OriginalAmount,
		&t.OriginalCurrency, &t.ExchangeRate, &t.InitiatorID, &t.Note, &t.Status, &t.FromBalanceBefore,
		&t.FromBalanceAfter, &t.ToBalanceBefore, &t.ToBalanceAfter, &t.TransferDate, &t.CreatedAt, &t.UpdatedAt,
	}
}

func scanTransfer(row pgx.Row) (*domain.WalletTransfer, error) {
	t := &domain.WalletTransfer{}
	if err := row.Scan(transferFields(t)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
