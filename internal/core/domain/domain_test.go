package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWallet_CanDebit(t *testing.T) {
	w := &Wallet{Balance: dec("100.00")}

	assert.True(t, w.CanDebit(dec("100")))
	assert.True(t, w.CanDebit(dec("40")))
	assert.False(t, w.CanDebit(dec("100.00000001")))
}

func TestIsShared(t *testing.T) {
	assert.False(t, IsShared(1))
	assert.True(t, IsShared(2))
}

func TestTransaction_CaptureOriginal_OnlyOnce(t *testing.T) {
	txn := &Transaction{Amount: dec("60"), Currency: "USD"}

	txn.CaptureOriginal()
	require.NotNil(t, txn.OriginalAmount)
	assert.Equal(t, "USD", *txn.OriginalCurrency)

	txn.Amount = dec("54")
	txn.Currency = "EUR"
	txn.CaptureOriginal()

	assert.True(t, txn.OriginalAmount.Equal(dec("60")))
	assert.Equal(t, "USD", *txn.OriginalCurrency)
}

func TestWalletTransfer_Credited(t *testing.T) {
	tr := &WalletTransfer{ToBalanceBefore: dec("0"), ToBalanceAfter: dec("36.00")}
	assert.True(t, tr.Credited().Equal(dec("36")))
}

func TestWalletTransfer_CaptureOriginal(t *testing.T) {
	tr := &WalletTransfer{Amount: dec("40"), Currency: "USD"}
	tr.CaptureOriginal()
	tr.Amount = dec("1")
	tr.CaptureOriginal()

	assert.True(t, tr.OriginalAmount.Equal(dec("40")))
}

func TestWalletTransfer_DirectionFor(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	tr := &WalletTransfer{FromWalletID: a, ToWalletID: b}

	assert.Equal(t, DirectionOutgoing, tr.DirectionFor(a))
	assert.Equal(t, DirectionIncoming, tr.DirectionFor(b))

	self := &WalletTransfer{FromWalletID: a, ToWalletID: a}
	assert.Equal(t, DirectionInternal, self.DirectionFor(a))
}

func TestRateTable_Lookup(t *testing.T) {
	table := &RateTable{Base: "USD", Rates: map[string]decimal.Decimal{
		"USD": dec("1"),
		"EUR": dec("0.9"),
		"BAD": dec("0"),
	}}

	q, ok := table.Lookup("EUR")
	assert.True(t, ok)
	assert.True(t, q.Equal(dec("0.9")))

	_, ok = table.Lookup("BAD")
	assert.False(t, ok)
	_, ok = table.Lookup("JPY")
	assert.False(t, ok)

	var nilTable *RateTable
	_, ok = nilTable.Lookup("USD")
	assert.False(t, ok)

	assert.Equal(t, []string{"BAD", "EUR", "USD"}, table.Codes())
}
