package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepo_CreateAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock)
	log := &domain.IdempotencyLog{
		Key:          "transfer:u1:retry-1",
		TransferID:   uuid.New(),
		ResponseJSON: []byte(`{"transfer":{}}`),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO idempotency_logs").
		WithArgs(log.Key, log.TransferID, log.ResponseJSON, log.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM idempotency_logs WHERE key").
		WithArgs(log.Key).
		WillReturnRows(pgxmock.NewRows([]string{"key", "transfer_id", "response_json", "created_at"}).
			AddRow(log.Key, log.TransferID, log.ResponseJSON, log.CreatedAt))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, log))

	got, err := repo.Get(context.Background(), log.Key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, log.TransferID, got.TransferID)
	assert.JSONEq(t, string(log.ResponseJSON), string(got.ResponseJSON))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_DuplicateKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO idempotency_logs").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectExec("INSERT INTO idempotency_logs").
		WillReturnError(errors.New("connection reset"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	log := &domain.IdempotencyLog{Key: "k", TransferID: uuid.New(), ResponseJSON: []byte(`{}`), CreatedAt: time.Now()}
	err = repo.Create(context.Background(), tx, log)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyExists)

	err = repo.Create(context.Background(), tx, log)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrIdempotencyKeyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_GetMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM idempotency_logs").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := NewIdempotencyRepo(mock).Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
