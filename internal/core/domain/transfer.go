package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus is the lifecycle state of a wallet transfer.
type TransferStatus string

const (
	TransferStatusCompleted TransferStatus = "COMPLETED"
	TransferStatusPending   TransferStatus = "PENDING"
	TransferStatusCancelled TransferStatus = "CANCELLED"
)

// WalletTransfer records one movement of value between two wallets.
// Amount and Currency describe the debited side; the credited value is
// ToBalanceAfter - ToBalanceBefore.
type WalletTransfer struct {
	ID                uuid.UUID        `json:"id"`
	FromWalletID      uuid.UUID        `json:"from_wallet_id"`
	ToWalletID        uuid.UUID        `json:"to_wallet_id"`
	Amount            decimal.Decimal  `json:"amount"`
	Currency          string           `json:"currency"`
	OriginalAmount    *decimal.Decimal `json:"original_amount,omitempty"`
	OriginalCurrency  *string          `json:"original_currency,omitempty"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate,omitempty"`
	InitiatorID       uuid.UUID        `json:"initiator_id"`
	Note              *string          `json:"note,omitempty"`
	Status            TransferStatus   `json:"status"`
	FromBalanceBefore decimal.Decimal  `json:"from_balance_before"`
	FromBalanceAfter  decimal.Decimal  `json:"from_balance_after"`
	ToBalanceBefore   decimal.Decimal  `json:"to_balance_before"`
	ToBalanceAfter    decimal.Decimal  `json:"to_balance_after"`
	TransferDate      time.Time        `json:"transfer_date"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Credited returns the value that reached the destination wallet.
func (t *WalletTransfer) Credited() decimal.Decimal {
	return t.ToBalanceAfter.Sub(t.ToBalanceBefore)
}

// CaptureOriginal records the current amount as the original value if none is set.
func (t *WalletTransfer) CaptureOriginal() {
	if t.OriginalAmount != nil && t.OriginalCurrency != nil {
		return
	}
	amount := t.Amount
	currency := t.Currency
	t.OriginalAmount = &amount
	t.OriginalCurrency = &currency
}

// TransferDirection describes a transfer relative to one wallet.
type TransferDirection string

const (
	DirectionIncoming TransferDirection = "INCOMING"
	DirectionOutgoing TransferDirection = "OUTGOING"
	DirectionInternal TransferDirection = "INTERNAL"
)

// DirectionFor classifies the transfer from walletID's point of view.
func (t *WalletTransfer) DirectionFor(walletID uuid.UUID) TransferDirection {
	switch {
	case t.FromWalletID == walletID && t.ToWalletID == walletID:
		return DirectionInternal
	case t.ToWalletID == walletID:
		return DirectionIncoming
	default:
		return DirectionOutgoing
	}
}
