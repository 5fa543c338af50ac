package memory

import (
	"context"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct {
	store *Store
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(store *Store) *IdempotencyRepo {
	return &IdempotencyRepo{store: store}
}

func (r *IdempotencyRepo) Create(_ context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	st, err := r.store.working(tx)
	if err != nil {
		return err
	}
	if _, ok := st.idempotency[log.Key]; ok {
		return domain.ErrIdempotencyKeyExists
	}
	l := *log
	l.ResponseJSON = append([]byte(nil), log.ResponseJSON...)
	st.idempotency[log.Key] = l
	return nil
}

func (r *IdempotencyRepo) Get(_ context.Context, key string) (*domain.IdempotencyLog, error) {
	var out *domain.IdempotencyLog
	r.store.read(func(st *state) {
		if l, ok := st.idempotency[key]; ok {
			out = &l
		}
	})
	return out, nil
}
