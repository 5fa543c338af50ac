package memory

import (
	"context"
	"sort"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MergeHistoryRepo implements ports.MergeHistoryRepository.
type MergeHistoryRepo struct {
	store *Store
}

// NewMergeHistoryRepo creates a new MergeHistoryRepo.
func NewMergeHistoryRepo(store *Store) *MergeHistoryRepo {
	return &MergeHistoryRepo{store: store}
}

func (r *MergeHistoryRepo) Create(_ context.Context, tx pgx.Tx, h *domain.WalletMergeHistory) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	st.merges[h.ID] = *h
	return nil
}

func (r *MergeHistoryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.WalletMergeHistory, error) {
	var out []domain.WalletMergeHistory
	r.store.read(func(st *state) {
		for _, h := range st.merges {
			if h.UserID == userID {
				out = append(out, h)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].MergedAt.After(out[j].MergedAt) })
	return out, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	store *Store
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

// Create appends outside any transaction; audit rows are not rolled back.
func (r *AuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.store.auditMu.Lock()
	defer r.store.auditMu.Unlock()
	r.store.audits = append(r.store.audits, *log)
	return nil
}

// List returns audit entries in insertion order.
func (r *AuditRepo) List() []domain.AuditLog {
	r.store.auditMu.Lock()
	defer r.store.auditMu.Unlock()
	return append([]domain.AuditLog(nil), r.store.audits...)
}
