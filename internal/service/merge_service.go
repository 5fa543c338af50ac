package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// MergeServiceImpl implements ports.MergeService.
type MergeServiceImpl struct {
	walletRepo  ports.WalletRepository
	memberRepo  ports.MemberRepository
	txRepo      ports.TransactionRepository
	historyRepo ports.MergeHistoryRepository
	fx          ports.ExchangeService
	transactor  ports.DBTransactor
	access      access
	history     *history
	log         zerolog.Logger
}

// NewMergeService creates a new MergeServiceImpl.
func NewMergeService(
	walletRepo ports.WalletRepository,
	memberRepo ports.MemberRepository,
	txRepo ports.TransactionRepository,
	transferRepo ports.TransferRepository,
	historyRepo ports.MergeHistoryRepository,
	fx ports.ExchangeService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *MergeServiceImpl {
	return &MergeServiceImpl{
		walletRepo:  walletRepo,
		memberRepo:  memberRepo,
		txRepo:      txRepo,
		historyRepo: historyRepo,
		fx:          fx,
		transactor:  transactor,
		access:      access{members: memberRepo},
		history:     &history{fx: fx, txRepo: txRepo, transferRepo: transferRepo},
		log:         log,
	}
}

// MergeCandidates lists the other wallets the user belongs to and whether
// the source can be merged into each.
func (s *MergeServiceImpl) MergeCandidates(ctx context.Context, userID, sourceWalletID uuid.UUID) ([]ports.MergeCandidate, error) {
	if err := s.access.requireOwner(ctx, sourceWalletID, userID); err != nil {
		return nil, err
	}
	wallets, err := s.walletRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}

	candidates := make([]ports.MergeCandidate, 0, len(wallets))
	for _, w := range wallets {
		if w.ID == sourceWalletID {
			continue
		}
		count, err := s.txRepo.CountByWallet(ctx, w.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("count transactions: %w", err))
		}
		c := ports.MergeCandidate{
			WalletID:         w.ID,
			Name:             w.Name,
			Currency:         w.Currency,
			Balance:          w.Balance,
			IsDefault:        w.IsDefault,
			TransactionCount: count,
			CanMerge:         w.Role == domain.RoleOwner,
		}
		if !c.CanMerge {
			c.Reason = "only the wallet owner can merge into it"
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// MergeHistory returns the merges the user performed, newest first.
func (s *MergeServiceImpl) MergeHistory(ctx context.Context, userID uuid.UUID) ([]domain.WalletMergeHistory, error) {
	history, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list merge history: %w", err))
	}
	if history == nil {
		history = []domain.WalletMergeHistory{}
	}
	return history, nil
}

// PreviewMerge projects the merge without mutating anything.
func (s *MergeServiceImpl) PreviewMerge(ctx context.Context, req ports.MergeRequest) (*ports.MergePreview, error) {
	source, target, currency, err := s.checkRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	convertedSource, err := s.fx.Convert(ctx, source.Balance, source.Currency, currency)
	if err != nil {
		return nil, err
	}
	convertedTarget, err := s.fx.Convert(ctx, target.Balance, target.Currency, currency)
	if err != nil {
		return nil, err
	}
	sourceCount, err := s.txRepo.CountByWallet(ctx, source.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count transactions: %w", err))
	}
	targetCount, err := s.txRepo.CountByWallet(ctx, target.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count transactions: %w", err))
	}

	preview := &ports.MergePreview{
		Source:                summarise(source, sourceCount),
		Target:                summarise(target, targetCount),
		TargetCurrency:        currency,
		ConvertedSource:       convertedSource,
		ConvertedTarget:       convertedTarget,
		FinalBalance:          convertedSource.Add(convertedTarget),
		TotalTransactionCount: sourceCount + targetCount,
		WillTransferDefault:   source.IsDefault,
		Warnings:              []string{},
	}
	if source.Currency != currency || target.Currency != currency {
		preview.Warnings = append(preview.Warnings, fmt.Sprintf("balances will be converted to %s", currency))
	}
	if source.IsDefault {
		preview.Warnings = append(preview.Warnings, fmt.Sprintf("default wallet flag will move to %q", target.Name))
	}
	return preview, nil
}

// MergeWallets folds the source wallet into the target in one transaction:
// balances, transactions, transfers and members move to the target, the
// source is deleted and a merge history row is written.
func (s *MergeServiceImpl) MergeWallets(ctx context.Context, req ports.MergeRequest) (*ports.MergeResult, error) {
	started := time.Now()
	if _, _, _, err := s.checkRequest(ctx, req); err != nil {
		return nil, err
	}
	currency := money.NormalizeCurrency(req.TargetCurrency)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := lockWallets(ctx, s.walletRepo, dbTx, req.SourceWalletID, req.TargetWalletID)
	if err != nil {
		return nil, err
	}
	source, target := locked[req.SourceWalletID], locked[req.TargetWalletID]
	if currency == "" {
		currency = target.Currency
	}

	sourceTxns, err := s.txRepo.ListByWalletForUpdate(ctx, dbTx, source.ID)
	if err != nil {
		return nil, dbError("count source transactions", err)
	}
	targetTxns, err := s.txRepo.ListByWalletForUpdate(ctx, dbTx, target.ID)
	if err != nil {
		return nil, dbError("count target transactions", err)
	}
	snapshot := domain.WalletMergeHistory{
		ID:                     uuid.New(),
		UserID:                 req.UserID,
		SourceWalletID:         source.ID,
		SourceWalletName:       source.Name,
		SourceCurrency:         source.Currency,
		SourceBalance:          source.Balance,
		SourceTransactionCount: len(sourceTxns),
		TargetWalletID:         target.ID,
		TargetWalletName:       target.Name,
		TargetCurrency:         target.Currency,
		TargetBalanceBefore:    target.Balance,
		TargetTransactionCount: len(targetTxns),
	}

	now := time.Now().UTC()

	convertedSource, err := s.fx.Convert(ctx, source.Balance, source.Currency, currency)
	if err != nil {
		return nil, err
	}
	if err := s.history.redenominate(ctx, dbTx, target, currency, now); err != nil {
		return nil, err
	}
	target.Balance = target.Balance.Add(convertedSource)
	target.UpdatedAt = now

	wasTargetDefault := target.IsDefault
	makeDefault := source.IsDefault
	if req.MakeTargetDefault != nil {
		makeDefault = *req.MakeTargetDefault
	}
	if makeDefault {
		if err := s.walletRepo.ClearDefault(ctx, dbTx, target.OwnerID, target.ID); err != nil {
			return nil, dbError("clear default", err)
		}
	}
	target.IsDefault = makeDefault
	defaultMoved := source.IsDefault && makeDefault && !wasTargetDefault
	if err := s.walletRepo.Update(ctx, dbTx, target); err != nil {
		return nil, dbError("update target", err)
	}

	moved, err := s.history.moveTransactions(ctx, dbTx, source.ID, target.ID, currency, now)
	if err != nil {
		return nil, err
	}

	if err := s.moveMembers(ctx, dbTx, source.ID, target.ID, now); err != nil {
		return nil, err
	}

	movedTransfers, droppedTransfers, err := s.history.moveTransfers(ctx, dbTx, source.ID, target.ID, source.Currency, currency, now)
	if err != nil {
		return nil, err
	}

	if err := s.walletRepo.Delete(ctx, dbTx, source.ID); err != nil {
		return nil, dbError("delete source", err)
	}

	snapshot.TargetBalanceAfter = target.Balance
	snapshot.FinalCurrency = currency
	snapshot.MergedAt = now
	snapshot.DurationMs = time.Since(started).Milliseconds()
	if err := s.historyRepo.Create(ctx, dbTx, &snapshot); err != nil {
		return nil, dbError("write merge history", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, dbError("commit", err)
	}

	s.log.Info().
		Str("source_wallet_id", source.ID.String()).
		Str("target_wallet_id", target.ID.String()).
		Str("final_balance", target.Balance.String()).
		Str("currency", currency).
		Int("transactions_moved", moved).
		Int("transfers_moved", movedTransfers).
		Int("transfers_dropped", droppedTransfers).
		Int64("duration_ms", snapshot.DurationMs).
		Msg("wallets merged")

	return &ports.MergeResult{
		TargetWalletID:         target.ID,
		TargetWalletName:       target.Name,
		FinalBalance:           target.Balance,
		FinalCurrency:          currency,
		MergedTransactionCount: moved,
		TotalTransactionCount:  len(targetTxns) + moved,
		SourceWalletName:       source.Name,
		WasDefaultTransferred:  defaultMoved,
		MergeHistoryID:         snapshot.ID,
		MergedAt:               now,
	}, nil
}

// moveMembers adds source members missing from the target as MEMBER, then
// drops the source membership rows.
func (s *MergeServiceImpl) moveMembers(ctx context.Context, tx pgx.Tx, sourceID, targetID uuid.UUID, now time.Time) error {
	sourceMembers, err := s.memberRepo.ListByWallet(ctx, tx, sourceID)
	if err != nil {
		return dbError("list source members", err)
	}
	targetMembers, err := s.memberRepo.ListByWallet(ctx, tx, targetID)
	if err != nil {
		return dbError("list target members", err)
	}
	present := make(map[uuid.UUID]struct{}, len(targetMembers))
	for _, m := range targetMembers {
		present[m.UserID] = struct{}{}
	}
	for _, m := range sourceMembers {
		if _, ok := present[m.UserID]; ok {
			continue
		}
		member := &domain.WalletMember{
			ID:       uuid.New(),
			WalletID: targetID,
			UserID:   m.UserID,
			Role:     domain.RoleMember,
			JoinedAt: now,
		}
		if err := s.memberRepo.Create(ctx, tx, member); err != nil {
			return dbError("add target member", err)
		}
		present[m.UserID] = struct{}{}
	}
	if _, err := s.memberRepo.DeleteByWallet(ctx, tx, sourceID); err != nil {
		return dbError("remove source members", err)
	}
	return nil
}

// checkRequest runs every check that needs no lock: distinct wallets, a
// supported currency and ownership of both sides.
func (s *MergeServiceImpl) checkRequest(ctx context.Context, req ports.MergeRequest) (source, target *domain.Wallet, currency string, err error) {
	if req.SourceWalletID == req.TargetWalletID {
		return nil, nil, "", apperror.ErrSameWallet()
	}
	currency = money.NormalizeCurrency(req.TargetCurrency)
	if currency != "" {
		if err := requireCurrency(ctx, s.fx, currency); err != nil {
			return nil, nil, "", err
		}
	}
	if err := s.access.requireOwner(ctx, req.SourceWalletID, req.UserID); err != nil {
		return nil, nil, "", err
	}
	if err := s.access.requireOwner(ctx, req.TargetWalletID, req.UserID); err != nil {
		return nil, nil, "", err
	}

	source, err = s.walletRepo.GetByID(ctx, req.SourceWalletID)
	if err != nil {
		return nil, nil, "", apperror.InternalError(fmt.Errorf("get source wallet: %w", err))
	}
	target, err = s.walletRepo.GetByID(ctx, req.TargetWalletID)
	if err != nil {
		return nil, nil, "", apperror.InternalError(fmt.Errorf("get target wallet: %w", err))
	}
	if source == nil || target == nil {
		return nil, nil, "", apperror.ErrNotFound("Wallet")
	}
	if currency == "" {
		currency = target.Currency
	}
	return source, target, currency, nil
}

func summarise(w *domain.Wallet, count int) ports.MergeWalletSummary {
	return ports.MergeWalletSummary{
		WalletID:         w.ID,
		Name:             w.Name,
		Currency:         w.Currency,
		Balance:          w.Balance,
		TransactionCount: count,
		IsDefault:        w.IsDefault,
	}
}
