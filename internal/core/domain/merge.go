package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletMergeHistory is the immutable audit row written once per merge.
// Source and target fields hold pre-merge values in each wallet's own
// currency; TargetBalanceAfter is in FinalCurrency.
type WalletMergeHistory struct {
	ID                     uuid.UUID       `json:"id"`
	UserID                 uuid.UUID       `json:"user_id"`
	SourceWalletID         uuid.UUID       `json:"source_wallet_id"`
	SourceWalletName       string          `json:"source_wallet_name"`
	SourceCurrency         string          `json:"source_currency"`
	SourceBalance          decimal.Decimal `json:"source_balance"`
	SourceTransactionCount int             `json:"source_transaction_count"`
	TargetWalletID         uuid.UUID       `json:"target_wallet_id"`
	TargetWalletName       string          `json:"target_wallet_name"`
	TargetCurrency         string          `json:"target_currency"`
	TargetBalanceBefore    decimal.Decimal `json:"target_balance_before"`
	TargetBalanceAfter     decimal.Decimal `json:"target_balance_after"`
	FinalCurrency          string          `json:"final_currency"`
	TargetTransactionCount int             `json:"target_transaction_count"`
	MergedAt               time.Time       `json:"merged_at"`
	DurationMs             int64           `json:"duration_ms"`
}
