package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/pkg/money"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// ErrUpstreamThrottled is returned when the quote endpoint answers 429.
var ErrUpstreamThrottled = errors.New("rate endpoint throttled the request")

// LiveConfig configures a LiveSource.
type LiveConfig struct {
	URL               string
	Base              string
	Timeout           time.Duration
	RequestsPerSecond float64
	CacheTTL          time.Duration
}

// LiveSource fetches `{"base": "...", "rates": {"EUR": 0.9, ...}}` from an
// HTTP endpoint. Outbound calls are throttled and the last good table is
// reused for CacheTTL. When a refresh fails a stale table is served if one
// exists.
type LiveSource struct {
	cfg        LiveConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger

	mu      sync.Mutex
	cached  *domain.RateTable
	expires time.Time
	now     func() time.Time
}

type liveResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewLiveSource creates a LiveSource.
func NewLiveSource(cfg LiveConfig, log zerolog.Logger) *LiveSource {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &LiveSource{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		log:        log,
		now:        time.Now,
	}
}

func (s *LiveSource) Name() string { return "live" }

// Rates returns the cached table or fetches a fresh one.
func (s *LiveSource) Rates(ctx context.Context) (*domain.RateTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Before(s.expires) {
		return copyTable(s.cached), nil
	}

	table, err := s.fetch(ctx)
	if err != nil {
		if s.cached != nil {
			s.log.Warn().Err(err).Time("fetched_at", s.cached.FetchedAt).Msg("rate refresh failed, serving stale table")
			return copyTable(s.cached), nil
		}
		return nil, err
	}

	s.cached = table
	s.expires = s.now().Add(s.cfg.CacheTTL)
	s.log.Debug().Str("base", table.Base).Int("currencies", len(table.Rates)).Msg("rate table refreshed")
	return copyTable(table), nil
}

func (s *LiveSource) fetch(ctx context.Context) (*domain.RateTable, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrUpstreamThrottled
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var payload liveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	base := money.NormalizeCurrency(payload.Base)
	if base == "" {
		base = money.NormalizeCurrency(s.cfg.Base)
	}
	if !money.ValidCurrencyCode(base) {
		return nil, fmt.Errorf("response has invalid base %q", payload.Base)
	}

	table := &domain.RateTable{
		Base:      base,
		Rates:     make(map[string]decimal.Decimal, len(payload.Rates)+1),
		Source:    s.Name(),
		FetchedAt: s.now().UTC(),
	}
	for code, q := range payload.Rates {
		code = money.NormalizeCurrency(code)
		if !money.ValidCurrencyCode(code) || !q.IsPositive() {
			continue
		}
		table.Rates[code] = q
	}
	table.Rates[base] = money.One
	return table, nil
}
