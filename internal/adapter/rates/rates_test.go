package rates

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_QuotesBaseAtOne(t *testing.T) {
	src, err := NewStaticSource("usd", map[string]decimal.Decimal{
		"eur": decimal.RequireFromString("0.9"),
	})
	require.NoError(t, err)

	table, err := src.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.True(t, table.Rates["USD"].Equal(decimal.NewFromInt(1)))
	assert.True(t, table.Rates["EUR"].Equal(decimal.RequireFromString("0.9")))

	// callers cannot mutate the source
	table.Rates["EUR"] = decimal.NewFromInt(5)
	again, _ := src.Rates(context.Background())
	assert.True(t, again.Rates["EUR"].Equal(decimal.RequireFromString("0.9")))
}

func TestStaticSource_RejectsBadInput(t *testing.T) {
	_, err := NewStaticSource("US", nil)
	assert.Error(t, err)

	_, err = NewStaticSource("USD", map[string]decimal.Decimal{"EUR": decimal.Zero})
	assert.Error(t, err)

	_, err = NewStaticSource("USD", map[string]decimal.Decimal{"EURO": decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func newLive(t *testing.T, h http.HandlerFunc, ttl time.Duration) (*LiveSource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewLiveSource(LiveConfig{URL: srv.URL, Base: "USD", Timeout: time.Second, CacheTTL: ttl}, zerolog.New(io.Discard)), srv
}

func TestLiveSource_FetchAndCache(t *testing.T) {
	var calls atomic.Int32
	src, _ := newLive(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9,"jpy":"150.5","BAD":-1}}`))
	}, time.Minute)

	table, err := src.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "live", table.Source)
	assert.True(t, table.Rates["EUR"].Equal(decimal.RequireFromString("0.9")))
	assert.True(t, table.Rates["JPY"].Equal(decimal.RequireFromString("150.5")))
	assert.True(t, table.Rates["USD"].Equal(decimal.NewFromInt(1)))
	_, hasBad := table.Rates["BAD"]
	assert.False(t, hasBad)

	_, err = src.Rates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "second call should be served from cache")
}

func TestLiveSource_ServesStaleOnFailure(t *testing.T) {
	var fail atomic.Bool
	src, _ := newLive(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9}}`))
	}, time.Minute)

	now := time.Now()
	src.now = func() time.Time { return now }
	_, err := src.Rates(context.Background())
	require.NoError(t, err)

	fail.Store(true)
	now = now.Add(2 * time.Minute)
	table, err := src.Rates(context.Background())
	require.NoError(t, err)
	assert.True(t, table.Rates["EUR"].Equal(decimal.RequireFromString("0.9")))
}

func TestLiveSource_Errors(t *testing.T) {
	t.Run("throttled", func(t *testing.T) {
		src, _ := newLive(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}, time.Minute)
		_, err := src.Rates(context.Background())
		assert.ErrorIs(t, err, ErrUpstreamThrottled)
	})

	t.Run("bad status", func(t *testing.T) {
		src, _ := newLive(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}, time.Minute)
		_, err := src.Rates(context.Background())
		assert.Error(t, err)
	})

	t.Run("bad body", func(t *testing.T) {
		src, _ := newLive(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}, time.Minute)
		_, err := src.Rates(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		src, _ := newLive(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
		}, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Rates(ctx)
		assert.Error(t, err)
	})
}
