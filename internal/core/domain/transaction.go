package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a categorized transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction is a categorized income or expense recorded against one wallet.
// OriginalAmount and OriginalCurrency are captured the first time the row is
// re-denominated and are never overwritten afterwards.
type Transaction struct {
	ID               uuid.UUID        `json:"id"`
	WalletID         uuid.UUID        `json:"wallet_id"`
	UserID           uuid.UUID        `json:"user_id"`
	Type             TransactionType  `json:"type"`
	Amount           decimal.Decimal  `json:"amount"`
	Currency         string           `json:"currency"`
	OriginalAmount   *decimal.Decimal `json:"original_amount,omitempty"`
	OriginalCurrency *string          `json:"original_currency,omitempty"`
	ExchangeRate     *decimal.Decimal `json:"exchange_rate,omitempty"`
	Note             *string          `json:"note,omitempty"`
	TransactionDate  time.Time        `json:"transaction_date"`
	MergedAt         *time.Time       `json:"merged_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// CaptureOriginal records the current amount as the original value if none is set.
func (t *Transaction) CaptureOriginal() {
	if t.OriginalAmount != nil && t.OriginalCurrency != nil {
		return
	}
	amount := t.Amount
	currency := t.Currency
	t.OriginalAmount = &amount
	t.OriginalCurrency = &currency
}
