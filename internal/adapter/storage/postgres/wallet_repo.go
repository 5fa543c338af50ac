package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, owner_id, name, currency, balance, is_default, kind, description, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet within a database transaction.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.OwnerID, w.Name, w.Currency, w.Balance,
		w.IsDefault, w.Kind, w.Description, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update by id: %w", err)
	}
	return w, nil
}

// ListByOwner returns the wallets owned by ownerID, default first.
func (r *WalletRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1
		ORDER BY is_default DESC, created_at, id`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list wallets by owner: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w := domain.Wallet{}
		if err := rows.Scan(walletFields(&w)...); err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// ListByMember returns every wallet userID belongs to, with the user's role.
func (r *WalletRepo) ListByMember(ctx context.Context, userID uuid.UUID) ([]domain.MemberWallet, error) {
	query := `SELECT w.id, w.owner_id, w.name, w.currency, w.balance, w.is_default, w.kind,
		w.description, w.created_at, w.updated_at, m.role
		FROM wallets w JOIN wallet_members m ON m.wallet_id = w.id
		WHERE m.user_id = $1
		ORDER BY w.is_default DESC, w.created_at, w.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallets by member: %w", err)
	}
	defer rows.Close()

	var wallets []domain.MemberWallet
	for rows.Next() {
		mw := domain.MemberWallet{}
		dest := append(walletFields(&mw.Wallet), &mw.Role)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan member wallet row: %w", err)
		}
		wallets = append(wallets, mw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member wallet rows: %w", err)
	}
	return wallets, nil
}

// ExistsByOwnerAndName compares names case-insensitively, ignoring surrounding space.
func (r *WalletRepo) ExistsByOwnerAndName(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wallets WHERE owner_id = $1 AND lower(name) = lower($2))`

	var exists bool
	err := on(r.pool, tx).QueryRow(ctx, query, ownerID, strings.TrimSpace(name)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check wallet name: %w", err)
	}
	return exists, nil
}

// Update writes every mutable column of the wallet.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `UPDATE wallets SET name = $1, currency = $2, balance = $3, is_default = $4,
		kind = $5, description = $6, updated_at = $7 WHERE id = $8`

	tag, err := tx.Exec(ctx, query,
		w.Name, w.Currency, w.Balance, w.IsDefault, w.Kind, w.Description, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	return nil
}

// ClearDefault unsets the default flag on ownerID's wallets other than exceptID.
func (r *WalletRepo) ClearDefault(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, exceptID uuid.UUID) error {
	query := `UPDATE wallets SET is_default = FALSE, updated_at = NOW()
		WHERE owner_id = $1 AND id <> $2 AND is_default`

	if _, err := tx.Exec(ctx, query, ownerID, exceptID); err != nil {
		return fmt.Errorf("clear default wallet: %w", err)
	}
	return nil
}

// Delete removes the wallet row.
func (r *WalletRepo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", id)
	}
	return nil
}

func walletFields(w *domain.Wallet) []any {
	return []any{
		&w.ID, &w.OwnerID, &w.Name, &w.Currency, &w.Balance,
		&w.IsDefault, &w.Kind, &w.Description, &w.CreatedAt, &w.UpdatedAt,
	}
}

// scanWallet returns nil, nil when the row does not exist.
func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	if err := row.Scan(walletFields(w)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
