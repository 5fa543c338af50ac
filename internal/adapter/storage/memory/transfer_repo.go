package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	store *Store
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(store *Store) *TransferRepo {
	return &TransferRepo{store: store}
}

func (r *TransferRepo) Create(_ context.Context, tx pgx.Tx, t *domain.WalletTransfer) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	st.transfers[t.ID] = *t
	return nil
}

func (r *TransferRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.WalletTransfer, error) {
	var out *domain.WalletTransfer
	r.store.read(func(st *state) {
		if t, ok := st.transfers[id]; ok {
			out = &t
		}
	})
	return out, nil
}

func (r *TransferRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTransfer, error) {
	st, err := r.store.working(tx)
	if err != nil {
		return nil, err
	}
	t, ok := st.transfers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TransferRepo) ListByWallet(_ context.Context, walletID uuid.UUID) ([]domain.WalletTransfer, error) {
	var out []domain.WalletTransfer
	r.store.read(func(st *state) {
		out = transfersTouching(st, walletID)
	})
	return out, nil
}

func (r *TransferRepo) ListByWalletForUpdate(_ context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.WalletTransfer, error) {
	st, err := r.store.working(tx)
	if err != nil {
		return nil, err
	}
	return transfersTouching(st, walletID), nil
}

func (r *TransferRepo) ListByInitiator(_ context.Context, userID uuid.UUID) ([]domain.WalletTransfer, error) {
	var out []domain.WalletTransfer
	r.store.read(func(st *state) {
		for _, t := range st.transfers {
			if t.InitiatorID == userID {
				out = append(out, t)
			}
		}
	})
	sortTransfers(out)
	return out, nil
}

func (r *TransferRepo) Update(_ context.Context, tx pgx.Tx, t *domain.WalletTransfer) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.transfers[t.ID]; !ok {
		return fmt.Errorf("transfer not found: %s", t.ID)
	}
	st.transfers[t.ID] = *t
	return nil
}

// UpdateNote commits on its own, like a single-statement UPDATE.
func (r *TransferRepo) UpdateNote(ctx context.Context, id uuid.UUID, note *string) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	st, _ := r.store.working(tx)
	t, ok := st.transfers[id]
	if !ok {
		return fmt.Errorf("transfer not found: %s", id)
	}
	t.Note = note
	t.UpdatedAt = time.Now().UTC()
	st.transfers[id] = t
	return tx.Commit(ctx)
}

func (r *TransferRepo) Delete(_ context.Context, tx pgx.Tx, id uuid.UUID) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.transfers[id]; !ok {
		return fmt.Errorf("transfer not found: %s", id)
	}
	delete(st.transfers, id)
	return nil
}

func transfersTouching(st *state, walletID uuid.UUID) []domain.WalletTransfer {
	var out []domain.WalletTransfer
	for _, t := range st.transfers {
		if t.FromWalletID == walletID || t.ToWalletID == walletID {
			out = append(out, t)
		}
	}
	sortTransfers(out)
	return out
}

// newest first
func sortTransfers(ts []domain.WalletTransfer) {
	sort.Slice(ts, func(i, j int) bool {
		if !ts[i].TransferDate.Equal(ts[j].TransferDate) {
			return ts[i].TransferDate.After(ts[j].TransferDate)
		}
		return ts[i].ID.String() < ts[j].ID.String()
	})
}
