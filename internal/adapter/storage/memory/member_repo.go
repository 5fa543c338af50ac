package memory

import (
	"context"
	"fmt"
	"sort"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MemberRepo implements ports.MemberRepository.
type MemberRepo struct {
	store *Store
}

// NewMemberRepo creates a new MemberRepo.
func NewMemberRepo(store *Store) *MemberRepo {
	return &MemberRepo{store: store}
}

// Create adds a membership row; a user may appear once per wallet.
func (r *MemberRepo) Create(_ context.Context, tx pgx.Tx, m *domain.WalletMember) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	for _, existing := range st.members {
		if existing.WalletID == m.WalletID && existing.UserID == m.UserID {
			return fmt.Errorf("insert member: user %s already on wallet %s", m.UserID, m.WalletID)
		}
		if m.Role == domain.RoleOwner && existing.WalletID == m.WalletID && existing.Role == domain.RoleOwner {
			return fmt.Errorf("insert member: wallet %s already has an owner", m.WalletID)
		}
	}
	st.members[m.ID] = *m
	return nil
}

func (r *MemberRepo) ListByWallet(_ context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.WalletMember, error) {
	var out []domain.WalletMember
	collect := func(st *state) {
		for _, m := range st.members {
			if m.WalletID == walletID {
				out = append(out, m)
			}
		}
	}
	if tx == nil {
		r.store.read(collect)
	} else {
		st, err := r.store.working(tx)
		if err != nil {
			return nil, err
		}
		collect(st)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *MemberRepo) GetRole(_ context.Context, walletID, userID uuid.UUID) (domain.MemberRole, error) {
	var role domain.MemberRole
	r.store.read(func(st *state) {
		for _, m := range st.members {
			if m.WalletID == walletID && m.UserID == userID {
				role = m.Role
				return
			}
		}
	})
	return role, nil
}

func (r *MemberRepo) CountByWallet(_ context.Context, walletID uuid.UUID) (int, error) {
	n := 0
	r.store.read(func(st *state) {
		for _, m := range st.members {
			if m.WalletID == walletID {
				n++
			}
		}
	})
	return n, nil
}

func (r *MemberRepo) DeleteByWallet(_ context.Context, tx pgx.Tx, walletID uuid.UUID) (int64, error) {
	st, err := r.store.working(tx)
	if err != nil {
		return 0, err
	}
	var n int64
	for id, m := range st.members {
		if m.WalletID == walletID {
			delete(st.members, id)
			n++
		}
	}
	return n, nil
}
