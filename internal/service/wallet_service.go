package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	memberRepo ports.MemberRepository
	txRepo     ports.TransactionRepository
	fx         ports.ExchangeService
	transactor ports.DBTransactor
	access     access
	history    *history
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	memberRepo ports.MemberRepository,
	txRepo ports.TransactionRepository,
	transferRepo ports.TransferRepository,
	fx ports.ExchangeService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		memberRepo: memberRepo,
		txRepo:     txRepo,
		fx:         fx,
		transactor: transactor,
		access:     access{members: memberRepo},
		history:    &history{fx: fx, txRepo: txRepo, transferRepo: transferRepo},
		log:        log,
	}
}

// CreateWallet creates a wallet and its OWNER membership in one transaction.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("wallet name is required")
	}
	if req.InitialBalance.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}
	currency := money.NormalizeCurrency(req.Currency)
	if err := requireCurrency(ctx, s.fx, currency); err != nil {
		return nil, err
	}
	kind := req.Kind
	if kind == "" {
		kind = domain.WalletKindPersonal
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	exists, err := s.walletRepo.ExistsByOwnerAndName(ctx, dbTx, req.OwnerID, name)
	if err != nil {
		return nil, dbError("check wallet name", err)
	}
	if exists {
		return nil, apperror.ErrDuplicateWalletName()
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Name:        name,
		Currency:    currency,
		Balance:     money.Round(req.InitialBalance),
		IsDefault:   req.IsDefault,
		Kind:        kind,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if wallet.IsDefault {
		if err := s.walletRepo.ClearDefault(ctx, dbTx, req.OwnerID, wallet.ID); err != nil {
			return nil, dbError("clear default", err)
		}
	}
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, dbError("create wallet", err)
	}
	owner := &domain.WalletMember{
		ID:       uuid.New(),
		WalletID: wallet.ID,
		UserID:   req.OwnerID,
		Role:     domain.RoleOwner,
		JoinedAt: now,
	}
	if err := s.memberRepo.Create(ctx, dbTx, owner); err != nil {
		return nil, dbError("create owner membership", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, dbError("commit", err)
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("owner_id", wallet.OwnerID.String()).
		Str("currency", wallet.Currency).
		Msg("wallet created")

	return wallet, nil
}

// GetWallet returns a wallet with its members for any member of it.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID, walletID uuid.UUID) (*ports.WalletDetail, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	role, err := s.access.requireAccess(ctx, walletID, userID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByWallet(ctx, nil, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list members: %w", err))
	}
	count, err := s.txRepo.CountByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count transactions: %w", err))
	}

	return &ports.WalletDetail{
		Wallet:           *wallet,
		Role:             role,
		Members:          members,
		TransactionCount: count,
	}, nil
}

// ListWallets returns every wallet the user is a member of.
func (s *WalletServiceImpl) ListWallets(ctx context.Context, userID uuid.UUID) ([]domain.MemberWallet, error) {
	wallets, err := s.walletRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// SetDefaultWallet makes walletID the owner's only default wallet.
func (s *WalletServiceImpl) SetDefaultWallet(ctx context.Context, userID, walletID uuid.UUID) (*domain.Wallet, error) {
	if err := s.access.requireOwner(ctx, walletID, userID); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := lockWallets(ctx, s.walletRepo, dbTx, walletID)
	if err != nil {
		return nil, err
	}
	wallet := locked[walletID]
	if wallet.IsDefault {
		return wallet, nil
	}

	if err := s.walletRepo.ClearDefault(ctx, dbTx, wallet.OwnerID, wallet.ID); err != nil {
		return nil, dbError("clear default", err)
	}
	wallet.IsDefault = true
	wallet.UpdatedAt = time.Now().UTC()
	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, dbError("update wallet", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, dbError("commit", err)
	}

	s.log.Info().Str("wallet_id", wallet.ID.String()).Msg("default wallet set")
	return wallet, nil
}

// ChangeCurrency re-denominates the wallet, its transactions and its
// transfers into currency under the wallet lock.
func (s *WalletServiceImpl) ChangeCurrency(ctx context.Context, userID, walletID uuid.UUID, currency string) (*domain.Wallet, error) {
	currency = money.NormalizeCurrency(currency)
	if err := requireCurrency(ctx, s.fx, currency); err != nil {
		return nil, err
	}
	if err := s.access.requireOwner(ctx, walletID, userID); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := lockWallets(ctx, s.walletRepo, dbTx, walletID)
	if err != nil {
		return nil, err
	}
	wallet := locked[walletID]
	if wallet.Currency == currency {
		return wallet, nil
	}

	from := wallet.Currency
	if err := s.history.redenominate(ctx, dbTx, wallet, currency, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, dbError("update wallet", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, dbError("commit", err)
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("from", from).
		Str("to", currency).
		Str("balance", wallet.Balance.String()).
		Msg("wallet currency changed")

	return wallet, nil
}

// DeleteWallet removes a wallet with no history. Default wallets cannot be deleted.
func (s *WalletServiceImpl) DeleteWallet(ctx context.Context, userID, walletID uuid.UUID) (*ports.DeleteWalletResult, error) {
	if err := s.access.requireOwner(ctx, walletID, userID); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := lockWallets(ctx, s.walletRepo, dbTx, walletID)
	if err != nil {
		return nil, err
	}
	wallet := locked[walletID]
	if wallet.IsDefault {
		return nil, apperror.ErrCannotDeleteDefaultWallet()
	}

	txns, err := s.txRepo.ListByWalletForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, dbError("list transactions", err)
	}
	transfers, err := s.history.transferRepo.ListByWalletForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, dbError("list transfers", err)
	}
	if len(txns) > 0 || len(transfers) > 0 {
		return nil, apperror.ErrWalletHasTransactions()
	}

	removed, err := s.memberRepo.DeleteByWallet(ctx, dbTx, walletID)
	if err != nil {
		return nil, dbError("delete members", err)
	}
	if err := s.walletRepo.Delete(ctx, dbTx, walletID); err != nil {
		return nil, dbError("delete wallet", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, dbError("commit", err)
	}

	s.log.Info().
		Str("wallet_id", walletID.String()).
		Int64("members_removed", removed).
		Msg("wallet deleted")

	return &ports.DeleteWalletResult{
		WalletID:       wallet.ID,
		Name:           wallet.Name,
		Balance:        wallet.Balance,
		Currency:       wallet.Currency,
		MembersRemoved: removed,
	}, nil
}
