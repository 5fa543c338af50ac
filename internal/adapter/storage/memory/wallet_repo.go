package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	store *Store
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(store *Store) *WalletRepo {
	return &WalletRepo{store: store}
}

func (r *WalletRepo) Create(_ context.Context, tx pgx.Tx, w *domain.Wallet) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, exists := st.wallets[w.ID]; exists {
		return fmt.Errorf("insert wallet: duplicate id %s", w.ID)
	}
	st.wallets[w.ID] = *w
	return nil
}

func (r *WalletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	var out *domain.Wallet
	r.store.read(func(st *state) {
		if w, ok := st.wallets[id]; ok {
			out = &w
		}
	})
	return out, nil
}

func (r *WalletRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	st, err := r.store.working(tx)
	if err != nil {
		return nil, err
	}
	w, ok := st.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *WalletRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Wallet, error) {
	var out []domain.Wallet
	r.store.read(func(st *state) {
		for _, w := range st.wallets {
			if w.OwnerID == ownerID {
				out = append(out, w)
			}
		}
	})
	sortWallets(out)
	return out, nil
}

func (r *WalletRepo) ListByMember(_ context.Context, userID uuid.UUID) ([]domain.MemberWallet, error) {
	var out []domain.MemberWallet
	r.store.read(func(st *state) {
		for _, m := range st.members {
			if m.UserID != userID {
				continue
			}
			if w, ok := st.wallets[m.WalletID]; ok {
				out = append(out, domain.MemberWallet{Wallet: w, Role: m.Role})
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return walletLess(out[i].Wallet, out[j].Wallet) })
	return out, nil
}

func (r *WalletRepo) ExistsByOwnerAndName(_ context.Context, tx pgx.Tx, ownerID uuid.UUID, name string) (bool, error) {
	st, err := r.store.working(tx)
	if err != nil {
		return false, err
	}
	for _, w := range st.wallets {
		if w.OwnerID == ownerID && strings.EqualFold(strings.TrimSpace(w.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *WalletRepo) Update(_ context.Context, tx pgx.Tx, w *domain.Wallet) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.wallets[w.ID]; !ok {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	st.wallets[w.ID] = *w
	return nil
}

func (r *WalletRepo) ClearDefault(_ context.Context, tx pgx.Tx, ownerID uuid.UUID, exceptID uuid.UUID) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	for id, w := range st.wallets {
		if w.OwnerID == ownerID && id != exceptID && w.IsDefault {
			w.IsDefault = false
			st.wallets[id] = w
		}
	}
	return nil
}

func (r *WalletRepo) Delete(_ context.Context, tx pgx.Tx, id uuid.UUID) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.wallets[id]; !ok {
		return fmt.Errorf("wallet not found: %s", id)
	}
	delete(st.wallets, id)
	return nil
}

func walletLess(a, b domain.Wallet) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

func sortWallets(ws []domain.Wallet) {
	sort.Slice(ws, func(i, j int) bool { return walletLess(ws[i], ws[j]) })
}
