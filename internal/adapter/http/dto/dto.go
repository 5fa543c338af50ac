package dto

import (
	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Name           string            `json:"name" binding:"required,min=1,max=100"`
	Currency       string            `json:"currency" binding:"required,currency"`
	InitialBalance decimal.Decimal   `json:"initial_balance"`
	IsDefault      bool              `json:"is_default"`
	Kind           domain.WalletKind `json:"kind" binding:"omitempty,oneof=PERSONAL GROUP"`
	Description    *string           `json:"description,omitempty" binding:"omitempty,max=500"`
}

// ChangeCurrencyRequest is the request body for re-denominating a wallet.
type ChangeCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

// TransferRequest is the request body for moving value between wallets.
// Currency optionally names the currency Amount is expressed in.
type TransferRequest struct {
	FromWalletID string          `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string          `json:"to_wallet_id" binding:"required,uuid"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency,omitempty" binding:"omitempty,currency"`
	Note         *string         `json:"note,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransferRequest is the request body for editing a transfer note.
type UpdateTransferRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// MergeRequest is the request body for merge preview and execution.
// An empty TargetCurrency keeps the target wallet's currency.
type MergeRequest struct {
	SourceWalletID    string `json:"source_wallet_id" binding:"required,uuid"`
	TargetWalletID    string `json:"target_wallet_id" binding:"required,uuid"`
	TargetCurrency    string `json:"target_currency,omitempty" binding:"omitempty,currency"`
	MakeTargetDefault *bool  `json:"make_target_default,omitempty"`
}

// ExchangeRateQuery is the query string of GET /exchange-rates.
type ExchangeRateQuery struct {
	From   string `form:"from" binding:"required,currency"`
	To     string `form:"to" binding:"required,currency"`
	Amount string `form:"amount" binding:"omitempty,numeric"`
}

// ExchangeRateResponse is the response body for a rate query.
type ExchangeRateResponse struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	Rate      decimal.Decimal  `json:"rate"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Converted *decimal.Decimal `json:"converted,omitempty"`
}

// CurrenciesResponse lists the supported currency codes.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}
