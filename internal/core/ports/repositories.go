package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside the caller's transaction; the
// ...ForUpdate variants take an exclusive row lock.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Wallet, error)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]domain.MemberWallet, error)
	ExistsByOwnerAndName(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, name string) (bool, error)
	Update(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	ClearDefault(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID, exceptID uuid.UUID) error
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// MemberRepository defines persistence operations for wallet membership.
type MemberRepository interface {
	Create(ctx context.Context, tx pgx.Tx, member *domain.WalletMember) error
	// ListByWallet reads committed rows when tx is nil.
	ListByWallet(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.WalletMember, error)
	// GetRole returns "" when the user is not a member.
	GetRole(ctx context.Context, walletID, userID uuid.UUID) (domain.MemberRole, error)
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error)
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (int64, error)
}

// TransactionRepository is the slice of the transaction store the ledger mutates.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	ListByWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.Transaction, error)
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error)
	Update(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
}

// TransferRepository defines persistence operations for wallet transfers.
type TransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.WalletTransfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransfer, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTransfer, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.WalletTransfer, error)
	ListByWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.WalletTransfer, error)
	ListByInitiator(ctx context.Context, userID uuid.UUID) ([]domain.WalletTransfer, error)
	Update(ctx context.Context, tx pgx.Tx, transfer *domain.WalletTransfer) error
	UpdateNote(ctx context.Context, id uuid.UUID, note *string) error
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// MergeHistoryRepository persists merge audit rows.
type MergeHistoryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, history *domain.WalletMergeHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WalletMergeHistory, error)
}

// IdempotencyRepository records transfer responses by idempotency key.
// Create returns domain.ErrIdempotencyKeyExists when the key is taken.
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RateSource supplies the exchange-rate table.
type RateSource interface {
	Name() string
	Rates(ctx context.Context) (*domain.RateTable, error)
}

// RateCache is a shared cache in front of a RateSource.
type RateCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context) (*domain.RateTable, error)
	Set(ctx context.Context, table *domain.RateTable, ttl time.Duration) error
}

// IdempotencyCache stores responses of already-processed requests.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimiter counts requests per key within a window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}
