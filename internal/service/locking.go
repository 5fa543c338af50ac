package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes that mean another transaction holds or fought for our rows.
const (
	pgLockNotAvailable     = "55P03"
	pgDeadlockDetected     = "40P01"
	pgSerializationFailure = "40001"
)

// lockWallets takes FOR UPDATE locks on ids in ascending byte order, whatever
// role each wallet plays in the operation, so two operations over the same
// pair always queue in the same order. Duplicates are locked once.
func lockWallets(ctx context.Context, repo ports.WalletRepository, tx pgx.Tx, ids ...uuid.UUID) (map[uuid.UUID]*domain.Wallet, error) {
	ordered := append([]uuid.UUID(nil), ids...)
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i][:], ordered[j][:]) < 0
	})

	locked := make(map[uuid.UUID]*domain.Wallet, len(ordered))
	for _, id := range ordered {
		if _, ok := locked[id]; ok {
			continue
		}
		w, err := repo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return nil, dbError("lock wallet", err)
		}
		if w == nil {
			return nil, apperror.ErrNotFound("Wallet")
		}
		locked[id] = w
	}
	return locked, nil
}

// dbError maps a storage error to an AppError. Lock waits that time out,
// deadlocks and serialization failures become the retryable contention error.
func dbError(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	wrapped := fmt.Errorf("%s: %w", op, err)
	if isContention(err) {
		return apperror.ErrLockTimeout(wrapped)
	}
	return apperror.InternalError(wrapped)
}

func isContention(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgDeadlockDetected, pgSerializationFailure:
			return true
		}
	}
	return false
}
