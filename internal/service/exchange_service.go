package service

import (
	"context"
	"errors"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/money"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ExchangeServiceImpl implements ports.ExchangeService over a RateSource,
// optionally fronted by a shared RateCache.
type ExchangeServiceImpl struct {
	source ports.RateSource
	cache  ports.RateCache
	ttl    time.Duration
	log    zerolog.Logger
}

// NewExchangeService creates a new ExchangeServiceImpl. cache may be nil.
func NewExchangeService(source ports.RateSource, cache ports.RateCache, ttl time.Duration, log zerolog.Logger) *ExchangeServiceImpl {
	return &ExchangeServiceImpl{source: source, cache: cache, ttl: ttl, log: log}
}

// Rate returns units of `to` per one unit of `from`, computed as a single
// quotient of the two base quotes.
func (s *ExchangeServiceImpl) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = money.NormalizeCurrency(from), money.NormalizeCurrency(to)
	if !money.ValidCurrencyCode(from) {
		return decimal.Zero, apperror.ErrUnsupportedCurrency(from)
	}
	if !money.ValidCurrencyCode(to) {
		return decimal.Zero, apperror.ErrUnsupportedCurrency(to)
	}
	if from == to {
		return money.One, nil
	}

	table, err := s.table(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	qFrom, ok := table.Lookup(from)
	if !ok {
		return decimal.Zero, apperror.ErrUnsupportedCurrency(from)
	}
	qTo, ok := table.Lookup(to)
	if !ok {
		return decimal.Zero, apperror.ErrUnsupportedCurrency(to)
	}
	return money.Quotient(qTo, qFrom), nil
}

// Convert multiplies amount by Rate(from, to) and rounds once.
func (s *ExchangeServiceImpl) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rate, err := s.Rate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return money.Apply(amount, rate), nil
}

// Supported reports whether code is quoted by the rate table.
func (s *ExchangeServiceImpl) Supported(ctx context.Context, code string) (bool, error) {
	code = money.NormalizeCurrency(code)
	if !money.ValidCurrencyCode(code) {
		return false, nil
	}
	table, err := s.table(ctx)
	if err != nil {
		return false, err
	}
	_, ok := table.Lookup(code)
	return ok, nil
}

// Currencies lists every quoted currency code.
func (s *ExchangeServiceImpl) Currencies(ctx context.Context) ([]string, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}
	return table.Codes(), nil
}

// requireCurrency returns CUR_001 unless code is quoted.
func requireCurrency(ctx context.Context, fx ports.ExchangeService, code string) error {
	ok, err := fx.Supported(ctx, code)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrUnsupportedCurrency(code)
	}
	return nil
}

func (s *ExchangeServiceImpl) table(ctx context.Context) (*domain.RateTable, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("rate cache read failed, falling through to source")
		}
		if cached != nil {
			return cached, nil
		}
	}

	table, err := s.source.Rates(ctx)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.ErrRateSourceUnavailable(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, table, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("source", s.source.Name()).Msg("failed to cache rate table")
		}
	}
	return table, nil
}
