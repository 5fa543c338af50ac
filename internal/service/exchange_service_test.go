package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExchangeService_Rate(t *testing.T) {
	fx := newTestExchange(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"same currency", "EUR", "EUR", "1"},
		{"lower case same currency", "usd", "USD", "1"},
		{"base to quote", "USD", "EUR", "0.9"},
		{"quote to base", "EUR", "USD", "1.11111111"},
		{"cross via base", "EUR", "JPY", "166.66666667"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := fx.Rate(ctx, tt.from, tt.to)
			require.NoError(t, err)
			assertDecimal(t, tt.want, rate)
		})
	}
}

func TestExchangeService_Unsupported(t *testing.T) {
	fx := newTestExchange(t)
	ctx := context.Background()

	_, err := fx.Rate(ctx, "USD", "CHF")
	assertAppError(t, err, "CUR_001")
	_, err = fx.Rate(ctx, "XX", "USD")
	assertAppError(t, err, "CUR_001")
	_, err = fx.Convert(ctx, dec("1"), "ABC", "USD")
	assertAppError(t, err, "CUR_001")

	ok, err := fx.Supported(ctx, "chf")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = fx.Supported(ctx, "eur")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExchangeService_ConvertRoundsOnce(t *testing.T) {
	fx := newTestExchange(t)
	ctx := context.Background()

	got, err := fx.Convert(ctx, dec("40"), "USD", "EUR")
	require.NoError(t, err)
	assertDecimal(t, "36", got)

	got, err = fx.Convert(ctx, dec("10"), "EUR", "USD")
	require.NoError(t, err)
	assertDecimal(t, "11.1111111", got)

	got, err = fx.Convert(ctx, dec("1.123456789"), "USD", "USD")
	require.NoError(t, err)
	assertDecimal(t, "1.12345679", got)
}

func TestExchangeService_Currencies(t *testing.T) {
	codes, err := newTestExchange(t).Currencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "GBP", "JPY", "USD"}, codes)
}

func testTable() *domain.RateTable {
	return &domain.RateTable{
		Base:   "USD",
		Rates:  map[string]decimal.Decimal{"USD": decimal.NewFromInt(1), "EUR": dec("0.9")},
		Source: "test",
	}
}

func TestExchangeService_CacheHitSkipsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	fx := NewExchangeService(source, cache, time.Minute, newTestLogger())

	cache.EXPECT().Get(gomock.Any()).Return(testTable(), nil)

	rate, err := fx.Rate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assertDecimal(t, "0.9", rate)
}

func TestExchangeService_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	fx := NewExchangeService(source, cache, time.Minute, newTestLogger())

	table := testTable()
	cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	source.EXPECT().Rates(gomock.Any()).Return(table, nil)
	cache.EXPECT().Set(gomock.Any(), table, time.Minute).Return(nil)

	_, err := fx.Rate(context.Background(), "EUR", "USD")
	require.NoError(t, err)
}

func TestExchangeService_CacheErrorsAreBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRateSource(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	fx := NewExchangeService(source, cache, time.Minute, newTestLogger())

	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
	source.EXPECT().Rates(gomock.Any()).Return(testTable(), nil)
	source.EXPECT().Name().Return("test").AnyTimes()
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := fx.Convert(context.Background(), dec("10"), "USD", "EUR")
	require.NoError(t, err)
	assertDecimal(t, "9", got)
}

func TestExchangeService_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRateSource(ctrl)
	fx := NewExchangeService(source, nil, 0, newTestLogger())

	source.EXPECT().Rates(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := fx.Rate(context.Background(), "USD", "EUR")
	assertAppError(t, err, "SYS_003")

	// same-currency pairs never touch the source
	rate, err := fx.Rate(context.Background(), "USD", "USD")
	require.NoError(t, err)
	assertDecimal(t, "1", rate)
}
