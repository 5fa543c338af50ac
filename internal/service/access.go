package service

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// access evaluates wallet membership. Any role grants access; only OWNER
// may run structural operations.
type access struct {
	members ports.MemberRepository
}

func (a access) role(ctx context.Context, walletID, userID uuid.UUID) (domain.MemberRole, error) {
	role, err := a.members.GetRole(ctx, walletID, userID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get member role: %w", err))
	}
	return role, nil
}

func (a access) requireAccess(ctx context.Context, walletID, userID uuid.UUID) (domain.MemberRole, error) {
	role, err := a.role(ctx, walletID, userID)
	if err != nil {
		return "", err
	}
	if role == "" {
		return "", apperror.ErrAccessDenied()
	}
	return role, nil
}

func (a access) requireOwner(ctx context.Context, walletID, userID uuid.UUID) error {
	role, err := a.role(ctx, walletID, userID)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner {
		return apperror.ErrAccessDenied()
	}
	return nil
}
