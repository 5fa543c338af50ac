package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// TokenValidator validates bearer tokens issued by the identity service.
type TokenValidator interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// ExchangeService converts amounts between currencies.
type ExchangeService interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	Supported(ctx context.Context, code string) (bool, error)
	Currencies(ctx context.Context) ([]string, error)
}

// WalletService manages wallets and their currency.
type WalletService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*domain.Wallet, error)
	GetWallet(ctx context.Context, userID, walletID uuid.UUID) (*WalletDetail, error)
	ListWallets(ctx context.Context, userID uuid.UUID) ([]domain.MemberWallet, error)
	SetDefaultWallet(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error)
	ChangeCurrency(ctx context.Context, userID, walletID uuid.UUID, currency string) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, userID, walletID uuid.UUID) (*DeleteWalletResult, error)
}

// CreateWalletRequest holds validated input for wallet creation.
type CreateWalletRequest struct {
	OwnerID        uuid.UUID
	Name           string
	Currency       string
	InitialBalance decimal.Decimal
	IsDefault      bool
	Kind           domain.WalletKind
	Description    *string
}

// WalletDetail is a wallet loaded together with its members.
type WalletDetail struct {
	Wallet           domain.Wallet         `json:"wallet"`
	Role             domain.MemberRole     `json:"role"`
	Members          []domain.WalletMember `json:"members"`
	TransactionCount int                   `json:"transaction_count"`
}

// DeleteWalletResult summarises a deleted wallet.
type DeleteWalletResult struct {
	WalletID       uuid.UUID       `json:"wallet_id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	Currency       string          `json:"currency"`
	MembersRemoved int64           `json:"members_removed"`
}

// TransferService moves value between wallets.
type TransferService interface {
	TransferMoney(ctx context.Context, req TransferRequest) (*TransferResult, error)
	DeleteTransfer(ctx context.Context, userID, transferID uuid.UUID) error
	UpdateTransferNote(ctx context.Context, userID, transferID uuid.UUID, note string) (*domain.WalletTransfer, error)
	ListTransfers(ctx context.Context, userID uuid.UUID) ([]domain.WalletTransfer, error)
	WalletTransfers(ctx context.Context, userID, walletID uuid.UUID) ([]TransferHistoryEntry, error)
}

// TransferRequest holds validated input for a transfer.
// Amount is in the source wallet's currency unless Currency is set.
type TransferRequest struct {
	InitiatorID    uuid.UUID
	FromWalletID   uuid.UUID
	ToWalletID     uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Note           *string
	IdempotencyKey string
}

// TransferSide is one wallet's view of a transfer.
type TransferSide struct {
	WalletID      uuid.UUID       `json:"wallet_id"`
	WalletName    string          `json:"wallet_name"`
	Currency      string          `json:"currency"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	MemberCount   int             `json:"member_count"`
	IsShared      bool            `json:"is_shared"`
}

// TransferResult is returned by TransferMoney.
type TransferResult struct {
	Transfer domain.WalletTransfer `json:"transfer"`
	From     TransferSide          `json:"from"`
	To       TransferSide          `json:"to"`
	Credited decimal.Decimal       `json:"credited"`
}

// TransferHistoryEntry is a transfer seen from one wallet.
type TransferHistoryEntry struct {
	domain.WalletTransfer
	Direction domain.TransferDirection `json:"direction"`
}

// MergeService consolidates wallets.
type MergeService interface {
	MergeCandidates(ctx context.Context, userID, sourceWalletID uuid.UUID) ([]MergeCandidate, error)
	PreviewMerge(ctx context.Context, req MergeRequest) (*MergePreview, error)
	MergeWallets(ctx context.Context, req MergeRequest) (*MergeResult, error)
	MergeHistory(ctx context.Context, userID uuid.UUID) ([]domain.WalletMergeHistory, error)
}

// MergeRequest holds validated input for preview and merge.
type MergeRequest struct {
	UserID         uuid.UUID
	SourceWalletID uuid.UUID
	TargetWalletID uuid.UUID
	TargetCurrency string
	// MakeTargetDefault sets the target's default flag explicitly. Nil makes
	// the target default only when the source was.
	MakeTargetDefault *bool
}

// MergeCandidate is a wallet the source may be merged into.
type MergeCandidate struct {
	WalletID         uuid.UUID       `json:"wallet_id"`
	Name             string          `json:"name"`
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	IsDefault        bool            `json:"is_default"`
	TransactionCount int             `json:"transaction_count"`
	CanMerge         bool            `json:"can_merge"`
	Reason           string          `json:"reason,omitempty"`
}

// MergeWalletSummary describes one side of a merge preview.
type MergeWalletSummary struct {
	WalletID         uuid.UUID       `json:"wallet_id"`
	Name             string          `json:"name"`
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
	IsDefault        bool            `json:"is_default"`
}

// MergePreview is the projected outcome of a merge.
type MergePreview struct {
	Source                MergeWalletSummary `json:"source"`
	Target                MergeWalletSummary `json:"target"`
	TargetCurrency        string             `json:"target_currency"`
	ConvertedSource       decimal.Decimal    `json:"converted_source_balance"`
	ConvertedTarget       decimal.Decimal    `json:"converted_target_balance"`
	FinalBalance          decimal.Decimal    `json:"final_balance"`
	TotalTransactionCount int                `json:"total_transaction_count"`
	WillTransferDefault   bool               `json:"will_transfer_default"`
	Warnings              []string           `json:"warnings"`
}

// MergeResult is returned by MergeWallets.
type MergeResult struct {
	TargetWalletID         uuid.UUID       `json:"target_wallet_id"`
	TargetWalletName       string          `json:"target_wallet_name"`
	FinalBalance           decimal.Decimal `json:"final_balance"`
	FinalCurrency          string          `json:"final_currency"`
	MergedTransactionCount int             `json:"merged_transaction_count"`
	TotalTransactionCount  int             `json:"total_transaction_count"`
	SourceWalletName       string          `json:"source_wallet_name"`
	WasDefaultTransferred  bool            `json:"was_default_transferred"`
	MergeHistoryID         uuid.UUID       `json:"merge_history_id"`
	MergedAt               time.Time       `json:"merged_at"`
}
