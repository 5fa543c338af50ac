package service

import (
	"context"
	"io"
	"testing"
	"time"

	"wallet-ledger/internal/adapter/rates"
	"wallet-ledger/internal/adapter/storage/memory"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

// ledger wires the services over the in-memory store with a USD-based
// table quoting EUR at 0.9, JPY at 150 and GBP at 0.5.
type ledger struct {
	store       *memory.Store
	wallets     *memory.WalletRepo
	members     *memory.MemberRepo
	txns        *memory.TransactionRepo
	transfers   *memory.TransferRepo
	merges      *memory.MergeHistoryRepo
	idempotency *memory.IdempotencyRepo

	fx       *ExchangeServiceImpl
	wallet   *WalletServiceImpl
	transfer *TransferServiceImpl
	merge    *MergeServiceImpl
}

func newTestExchange(t *testing.T) *ExchangeServiceImpl {
	t.Helper()
	src, err := rates.NewStaticSource("USD", map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": dec("0.9"),
		"JPY": dec("150"),
		"GBP": dec("0.5"),
	})
	require.NoError(t, err)
	return NewExchangeService(src, nil, 0, newTestLogger())
}

func newLedger(t *testing.T) *ledger {
	t.Helper()
	store := memory.NewStore()
	l := &ledger{
		store:       store,
		wallets:     memory.NewWalletRepo(store),
		members:     memory.NewMemberRepo(store),
		txns:        memory.NewTransactionRepo(store),
		transfers:   memory.NewTransferRepo(store),
		merges:      memory.NewMergeHistoryRepo(store),
		idempotency: memory.NewIdempotencyRepo(store),
		fx:          newTestExchange(t),
	}
	log := newTestLogger()
	l.wallet = NewWalletService(l.wallets, l.members, l.txns, l.transfers, l.fx, store, log)
	l.transfer = NewTransferService(l.wallets, l.members, l.transfers, l.idempotency, l.fx, nil, time.Hour, store, log)
	l.merge = NewMergeService(l.wallets, l.members, l.txns, l.transfers, l.merges, l.fx, store, log)
	return l
}

func (l *ledger) createWallet(t *testing.T, owner uuid.UUID, name, currency, balance string, isDefault bool) *domain.Wallet {
	t.Helper()
	w, err := l.wallet.CreateWallet(context.Background(), ports.CreateWalletRequest{
		OwnerID:        owner,
		Name:           name,
		Currency:       currency,
		InitialBalance: dec(balance),
		IsDefault:      isDefault,
	})
	require.NoError(t, err)
	return w
}

func (l *ledger) addTransaction(t *testing.T, w *domain.Wallet, amount string) *domain.Transaction {
	t.Helper()
	ctx := context.Background()
	txn := &domain.Transaction{
		ID:              uuid.New(),
		WalletID:        w.ID,
		UserID:          w.OwnerID,
		Type:            domain.TransactionTypeExpense,
		Amount:          dec(amount),
		Currency:        w.Currency,
		TransactionDate: time.Now().UTC(),
		CreatedAt:       time.Now().UTC(),
	}
	tx, err := l.store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, l.txns.Create(ctx, tx, txn))
	require.NoError(t, tx.Commit(ctx))
	return txn
}

func (l *ledger) addMember(t *testing.T, walletID, userID uuid.UUID, role domain.MemberRole) {
	t.Helper()
	ctx := context.Background()
	tx, err := l.store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, l.members.Create(ctx, tx, &domain.WalletMember{
		ID: uuid.New(), WalletID: walletID, UserID: userID, Role: role, JoinedAt: time.Now().UTC(),
	}))
	require.NoError(t, tx.Commit(ctx))
}

func (l *ledger) reload(t *testing.T, id uuid.UUID) *domain.Wallet {
	t.Helper()
	w, err := l.wallets.GetByID(context.Background(), id)
	require.NoError(t, err)
	return w
}

// transactions reads a wallet's rows through a throwaway transaction.
func (l *ledger) transactions(t *testing.T, walletID uuid.UUID) []domain.Transaction {
	t.Helper()
	ctx := context.Background()
	tx, err := l.store.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx) //nolint:errcheck
	rows, err := l.txns.ListByWalletForUpdate(ctx, tx, walletID)
	require.NoError(t, err)
	return rows
}

func (l *ledger) send(t *testing.T, initiator uuid.UUID, from, to *domain.Wallet, amount string) *ports.TransferResult {
	t.Helper()
	res, err := l.transfer.TransferMoney(context.Background(), ports.TransferRequest{
		InitiatorID:  initiator,
		FromWalletID: from.ID,
		ToWalletID:   to.ID,
		Amount:       dec(amount),
	})
	require.NoError(t, err)
	return res
}
