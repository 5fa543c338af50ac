package memory

import (
	"context"
	"fmt"
	"sort"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) Create(_ context.Context, tx pgx.Tx, t *domain.Transaction) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.wallets[t.WalletID]; !ok {
		return fmt.Errorf("insert transaction: wallet %s does not exist", t.WalletID)
	}
	st.txns[t.ID] = *t
	return nil
}

func (r *TransactionRepo) ListByWalletForUpdate(_ context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.Transaction, error) {
	st, err := r.store.working(tx)
	if err != nil {
		return nil, err
	}
	var out []domain.Transaction
	for _, t := range st.txns {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.Before(out[j].TransactionDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *TransactionRepo) CountByWallet(_ context.Context, walletID uuid.UUID) (int, error) {
	n := 0
	r.store.read(func(st *state) {
		for _, t := range st.txns {
			if t.WalletID == walletID {
				n++
			}
		}
	})
	return n, nil
}

// Update rewrites the row, including a re-pointed WalletID.
func (r *TransactionRepo) Update(_ context.Context, tx pgx.Tx, t *domain.Transaction) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.txns[t.ID]; !ok {
		return fmt.Errorf("transaction not found: %s", t.ID)
	}
	st.txns[t.ID] = *t
	return nil
}
