package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(walletID uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:              uuid.New(),
		WalletID:        walletID,
		UserID:          uuid.New(),
		Type:            domain.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("12.5"),
		Currency:        "USD",
		TransactionDate: now,
		CreatedAt:       now,
	}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.WalletID, txn.UserID, txn.Type, txn.Amount, txn.Currency,
			txn.OriginalAmount, txn.OriginalCurrency, txn.ExchangeRate, txn.Note,
			txn.TransactionDate, txn.MergedAt, txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Create(context.Background(), tx, txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWalletForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	plain := newTestTransaction(walletID)
	converted := newTestTransaction(walletID)
	origAmount := decimal.RequireFromString("10")
	origCurrency := "EUR"
	rate := decimal.RequireFromString("1.25")
	converted.OriginalAmount = &origAmount
	converted.OriginalCurrency = &origCurrency
	converted.ExchangeRate = &rate

	cols := []string{"id", "wallet_id", "user_id", "type", "amount", "currency", "original_amount",
		"original_currency", "exchange_rate", "note", "transaction_date", "merged_at", "created_at"}
	rows := pgxmock.NewRows(cols)
	for _, r := range []*domain.Transaction{plain, converted} {
		rows.AddRow(r.ID, r.WalletID, r.UserID, r.Type, r.Amount, r.Currency, r.OriginalAmount,
			r.OriginalCurrency, r.ExchangeRate, r.Note, r.TransactionDate, r.MergedAt, r.CreatedAt)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE wallet_id .+ FOR UPDATE").
		WithArgs(walletID).
		WillReturnRows(rows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.ListByWalletForUpdate(context.Background(), tx, walletID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Nil(t, result[0].OriginalAmount)
	require.NotNil(t, result[1].OriginalAmount)
	assert.True(t, origAmount.Equal(*result[1].OriginalAmount))
	assert.Equal(t, "EUR", *result[1].OriginalCurrency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())
	merged := time.Now().UTC()
	txn.MergedAt = &merged
	txn.CaptureOriginal()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET").
		WithArgs(txn.WalletID, txn.Amount, txn.Currency, txn.OriginalAmount, txn.OriginalCurrency,
			txn.ExchangeRate, txn.MergedAt, txn.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Update(context.Background(), tx, txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CountByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountByWallet(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
