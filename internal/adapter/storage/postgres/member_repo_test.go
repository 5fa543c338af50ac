package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepo_ListByWallet_UsesPoolWithoutTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMemberRepo(mock)
	walletID := uuid.New()
	joined := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM wallet_members WHERE wallet_id").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "wallet_id", "user_id", "role", "joined_at"}).
			AddRow(uuid.New(), walletID, uuid.New(), domain.RoleOwner, joined).
			AddRow(uuid.New(), walletID, uuid.New(), domain.RoleMember, joined))

	members, err := repo.ListByWallet(context.Background(), nil, walletID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, domain.RoleOwner, members[0].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_GetRole_NotMember(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMemberRepo(mock)
	walletID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT role FROM wallet_members").
		WithArgs(walletID, userID).
		WillReturnRows(pgxmock.NewRows([]string{"role"}))

	role, err := repo.GetRole(context.Background(), walletID, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.MemberRole(""), role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_CreateAndDeleteByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMemberRepo(mock)
	m := &domain.WalletMember{
		ID: uuid.New(), WalletID: uuid.New(), UserID: uuid.New(),
		Role: domain.RoleMember, JoinedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_members").
		WithArgs(m.ID, m.WalletID, m.UserID, m.Role, m.JoinedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM wallet_members").
		WithArgs(m.WalletID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, m))
	n, err := repo.DeleteByWallet(context.Background(), tx, m.WalletID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_CountByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMemberRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountByWallet(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
