package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletKind distinguishes personal wallets from shared group wallets.
type WalletKind string

const (
	WalletKindPersonal WalletKind = "PERSONAL"
	WalletKindGroup    WalletKind = "GROUP"
)

// Wallet holds a balance in exactly one currency.
// Balance is always expressed in Currency and never negative.
type Wallet struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Name        string          `json:"name"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
	IsDefault   bool            `json:"is_default"`
	Kind        WalletKind      `json:"kind"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CanDebit reports whether the wallet can pay amount without going negative.
func (w *Wallet) CanDebit(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// IsShared reports whether more than one member can see the wallet.
func IsShared(memberCount int) bool {
	return memberCount > 1
}

// MemberRole is a user's role on a wallet.
type MemberRole string

const (
	RoleOwner  MemberRole = "OWNER"
	RoleMember MemberRole = "MEMBER"
	RoleViewer MemberRole = "VIEW"
)

// WalletMember grants a user access to a wallet.
// Each wallet has exactly one OWNER and a user appears at most once per wallet.
type WalletMember struct {
	ID       uuid.UUID  `json:"id"`
	WalletID uuid.UUID  `json:"wallet_id"`
	UserID   uuid.UUID  `json:"user_id"`
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

// MemberWallet is a wallet as seen by one of its members.
type MemberWallet struct {
	Wallet
	Role MemberRole `json:"role"`
}
