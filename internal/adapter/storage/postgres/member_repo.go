package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MemberRepo implements ports.MemberRepository.
type MemberRepo struct {
	pool Pool
}

// NewMemberRepo creates a new MemberRepo.
func NewMemberRepo(pool Pool) *MemberRepo {
	return &MemberRepo{pool: pool}
}

// Create inserts a membership row. The (wallet_id, user_id) and single-owner
// unique indexes reject duplicates.
func (r *MemberRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.WalletMember) error {
	query := `INSERT INTO wallet_members (id, wallet_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, m.ID, m.WalletID, m.UserID, m.Role, m.JoinedAt)
	if err != nil {
		return fmt.Errorf("insert wallet member: %w", err)
	}
	return nil
}

func (r *MemberRepo) ListByWallet(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) ([]domain.WalletMember, error) {
	query := `SELECT id, wallet_id, user_id, role, joined_at FROM wallet_members
		WHERE wallet_id = $1 ORDER BY joined_at, id`

	rows, err := on(r.pool, tx).Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list wallet members: %w", err)
	}
	defer rows.Close()

	var members []domain.WalletMember
	for rows.Next() {
		m := domain.WalletMember{}
		if err := rows.Scan(&m.ID, &m.WalletID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan wallet member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet member rows: %w", err)
	}
	return members, nil
}

func (r *MemberRepo) GetRole(ctx context.Context, walletID, userID uuid.UUID) (domain.MemberRole, error) {
	query := `SELECT role FROM wallet_members WHERE wallet_id = $1 AND user_id = $2`

	var role domain.MemberRole
	err := r.pool.QueryRow(ctx, query, walletID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get member role: %w", err)
	}
	return role, nil
}

func (r *MemberRepo) CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_members WHERE wallet_id = $1`, walletID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count wallet members: %w", err)
	}
	return n, nil
}

func (r *MemberRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM wallet_members WHERE wallet_id = $1`, walletID)
	if err != nil {
		return 0, fmt.Errorf("delete wallet members: %w", err)
	}
	return tag.RowsAffected(), nil
}
