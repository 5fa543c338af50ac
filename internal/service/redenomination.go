package service

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// history re-expresses a wallet's transactions and transfers in another
// currency. Current amounts are always recomputed from the captured original
// with one direct conversion, never from the previous current amount.
type history struct {
	fx           ports.ExchangeService
	txRepo       ports.TransactionRepository
	transferRepo ports.TransferRepository
}

// redenominate converts w's balance and history from w.Currency to `to`.
// The caller locks w beforehand and persists it afterwards.
func (h *history) redenominate(ctx context.Context, tx pgx.Tx, w *domain.Wallet, to string, now time.Time) error {
	from := w.Currency
	if from == to {
		return nil
	}

	balance, err := h.fx.Convert(ctx, w.Balance, from, to)
	if err != nil {
		return err
	}

	txns, err := h.txRepo.ListByWalletForUpdate(ctx, tx, w.ID)
	if err != nil {
		return dbError("list transactions", err)
	}
	for i := range txns {
		if err := h.convertTransaction(ctx, &txns[i], to); err != nil {
			return err
		}
		if err := h.txRepo.Update(ctx, tx, &txns[i]); err != nil {
			return dbError("update transaction", err)
		}
	}

	transfers, err := h.transferRepo.ListByWalletForUpdate(ctx, tx, w.ID)
	if err != nil {
		return dbError("list transfers", err)
	}
	for i := range transfers {
		if err := h.convertTransfer(ctx, &transfers[i], w.ID, from, to, now); err != nil {
			return err
		}
		if err := h.transferRepo.Update(ctx, tx, &transfers[i]); err != nil {
			return dbError("update transfer", err)
		}
	}

	w.Balance = balance
	w.Currency = to
	w.UpdatedAt = now
	return nil
}

// moveTransactions re-points every transaction of source to target in
// currency `to`, stamping mergedAt. It returns how many rows moved.
func (h *history) moveTransactions(ctx context.Context, tx pgx.Tx, sourceID, targetID uuid.UUID, to string, mergedAt time.Time) (int, error) {
	txns, err := h.txRepo.ListByWalletForUpdate(ctx, tx, sourceID)
	if err != nil {
		return 0, dbError("list source transactions", err)
	}
	for i := range txns {
		t := &txns[i]
		if err := h.convertTransaction(ctx, t, to); err != nil {
			return 0, err
		}
		t.WalletID = targetID
		stamp := mergedAt
		t.MergedAt = &stamp
		if err := h.txRepo.Update(ctx, tx, t); err != nil {
			return 0, dbError("move transaction", err)
		}
	}
	return len(txns), nil
}

// moveTransfers re-points every transfer touching source to target. Balance
// snapshots on the source side are re-expressed from `from` to `to`. Transfers
// that would end up target-to-target are deleted.
func (h *history) moveTransfers(ctx context.Context, tx pgx.Tx, sourceID, targetID uuid.UUID, from, to string, now time.Time) (moved, dropped int, err error) {
	transfers, err := h.transferRepo.ListByWalletForUpdate(ctx, tx, sourceID)
	if err != nil {
		return 0, 0, dbError("list source transfers", err)
	}
	for i := range transfers {
		t := &transfers[i]
		if err := h.convertTransfer(ctx, t, sourceID, from, to, now); err != nil {
			return 0, 0, err
		}
		if t.FromWalletID == sourceID {
			t.FromWalletID = targetID
		}
		if t.ToWalletID == sourceID {
			t.ToWalletID = targetID
		}
		if t.FromWalletID == t.ToWalletID {
			if err := h.transferRepo.Delete(ctx, tx, t.ID); err != nil {
				return 0, 0, dbError("delete internal transfer", err)
			}
			dropped++
			continue
		}
		if err := h.transferRepo.Update(ctx, tx, t); err != nil {
			return 0, 0, dbError("move transfer", err)
		}
		moved++
	}
	return moved, dropped, nil
}

// convertTransaction applies the original-preserving rule. A row already in
// `to` that was never converted is left alone.
func (h *history) convertTransaction(ctx context.Context, t *domain.Transaction, to string) error {
	if t.Currency == to && t.OriginalCurrency == nil {
		return nil
	}
	t.CaptureOriginal()
	rate, err := h.fx.Rate(ctx, *t.OriginalCurrency, to)
	if err != nil {
		return err
	}
	t.Amount = money.Apply(*t.OriginalAmount, rate)
	t.Currency = to
	t.ExchangeRate = &rate
	return nil
}

// convertTransfer re-expresses walletID's side of t. On the debited side the
// transfer amount follows the original-preserving rule and the From balances
// are converted; on the credited side only the To balances change.
func (h *history) convertTransfer(ctx context.Context, t *domain.WalletTransfer, walletID uuid.UUID, from, to string, now time.Time) error {
	if from == to {
		return nil
	}
	rate, err := h.fx.Rate(ctx, from, to)
	if err != nil {
		return err
	}

	if t.FromWalletID == walletID {
		t.CaptureOriginal()
		origRate, err := h.fx.Rate(ctx, *t.OriginalCurrency, to)
		if err != nil {
			return err
		}
		t.Amount = money.Apply(*t.OriginalAmount, origRate)
		t.Currency = to
		t.ExchangeRate = &origRate
		t.FromBalanceBefore = money.Apply(t.FromBalanceBefore, rate)
		t.FromBalanceAfter = money.Apply(t.FromBalanceAfter, rate)
	}
	if t.ToWalletID == walletID {
		t.ToBalanceBefore = money.Apply(t.ToBalanceBefore, rate)
		t.ToBalanceAfter = money.Apply(t.ToBalanceAfter, rate)
	}
	t.UpdatedAt = now
	return nil
}
