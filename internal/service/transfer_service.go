package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// errTransferMoved reports a transfer re-pointed by a merge between the
// unlocked read and the row lock.
var errTransferMoved = errors.New("transfer moved to another wallet")

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	walletRepo   ports.WalletRepository
	memberRepo   ports.MemberRepository
	transferRepo ports.TransferRepository
	idempRepo    ports.IdempotencyRepository
	fx           ports.ExchangeService
	idempCache   ports.IdempotencyCache
	idempTTL     time.Duration
	transactor   ports.DBTransactor
	access       access
	log          zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl. idempCache may be nil.
func NewTransferService(
	walletRepo ports.WalletRepository,
	memberRepo ports.MemberRepository,
	transferRepo ports.TransferRepository,
	idempRepo ports.IdempotencyRepository,
	fx ports.ExchangeService,
	idempCache ports.IdempotencyCache,
	idempTTL time.Duration,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		walletRepo:   walletRepo,
		memberRepo:   memberRepo,
		transferRepo: transferRepo,
		idempRepo:    idempRepo,
		fx:           fx,
		idempCache:   idempCache,
		idempTTL:     idempTTL,
		transactor:   transactor,
		access:       access{members: memberRepo},
		log:          log,
	}
}

// TransferMoney debits the source and credits the destination atomically.
// Both wallets are locked in canonical order before either balance is read.
func (s *TransferServiceImpl) TransferMoney(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	amount := money.Round(req.Amount)
	if !money.Positive(amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.FromWalletID == req.ToWalletID {
		return nil, apperror.ErrSameWallet()
	}
	override := money.NormalizeCurrency(req.Currency)
	if override != "" {
		if err := requireCurrency(ctx, s.fx, override); err != nil {
			return nil, err
		}
	}

	idempKey := transferIdempotencyKey(req.InitiatorID, req.IdempotencyKey)
	if cached := s.cachedResult(ctx, idempKey); cached != nil {
		return cached, nil
	}
	if stored, err := s.storedResult(ctx, idempKey); err != nil || stored != nil {
		return stored, err
	}

	if _, err := s.access.requireAccess(ctx, req.FromWalletID, req.InitiatorID); err != nil {
		return nil, err
	}
	if _, err := s.access.requireAccess(ctx, req.ToWalletID, req.InitiatorID); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := lockWallets(ctx, s.walletRepo, dbTx, req.FromWalletID, req.ToWalletID)
	if err != nil {
		return nil, err
	}
	from, to := locked[req.FromWalletID], locked[req.ToWalletID]

	// A retry that waited on these locks sees the committed log here.
	if stored, err := s.storedResult(ctx, idempKey); err != nil || stored != nil {
		return stored, err
	}

	inputCurrency := from.Currency
	if override != "" {
		inputCurrency = override
	}
	debit, err := s.fx.Convert(ctx, amount, inputCurrency, from.Currency)
	if err != nil {
		return nil, err
	}
	credit, err := s.fx.Convert(ctx, amount, inputCurrency, to.Currency)
	if err != nil {
		return nil, err
	}
	if !money.Positive(debit) || !money.Positive(credit) {
		return nil, apperror.ErrInvalidAmount()
	}
	if !from.CanDebit(debit) {
		return nil, apperror.ErrInsufficientBalance()
	}

	now := time.Now().UTC()
	transfer := &domain.WalletTransfer{
		ID:                uuid.New(),
		FromWalletID:      from.ID,
		ToWalletID:        to.ID,
		Amount:            debit,
		Currency:          from.Currency,
		InitiatorID:       req.InitiatorID,
		Note:              cleanNote(req.Note),
		Status:            domain.TransferStatusCompleted,
		FromBalanceBefore: from.Balance,
		FromBalanceAfter:  from.Balance.Sub(debit),
		ToBalanceBefore:   to.Balance,
		ToBalanceAfter:    to.Balance.Add(credit),
		TransferDate:      now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if inputCurrency != from.Currency {
		rate, err := s.fx.Rate(ctx, inputCurrency, from.Currency)
		if err != nil {
			return nil, err
		}
		original, originalCurrency := amount, inputCurrency
		transfer.OriginalAmount = &original
		transfer.OriginalCurrency = &originalCurrency
		transfer.ExchangeRate = &rate
	}

	from.Balance = transfer.FromBalanceAfter
	from.UpdatedAt = now
	to.Balance = transfer.ToBalanceAfter
	to.UpdatedAt = now

	if err := s.walletRepo.Update(ctx, dbTx, from); err != nil {
		return nil, dbError("debit source", err)
	}
	if err := s.walletRepo.Update(ctx, dbTx, to); err != nil {
		return nil, dbError("credit destination", err)
	}
	if err := s.transferRepo.Create(ctx, dbTx, transfer); err != nil {
		return nil, dbError("create transfer", err)
	}

	result := &ports.TransferResult{
		Transfer: *transfer,
		From:     s.side(ctx, from, transfer.FromBalanceBefore),
		To:       s.side(ctx, to, transfer.ToBalanceBefore),
		Credited: credit,
	}

	var data []byte
	if idempKey != "" {
		data, err = json.Marshal(result)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal transfer result: %w", err))
		}
		err = s.idempRepo.Create(ctx, dbTx, &domain.IdempotencyLog{
			Key:          idempKey,
			TransferID:   transfer.ID,
			ResponseJSON: data,
			CreatedAt:    now,
		})
		if errors.Is(err, domain.ErrIdempotencyKeyExists) {
			// Another request with this key committed first; ours rolls back.
			_ = dbTx.Rollback(ctx)
			return s.storedResult(ctx, idempKey)
		}
		if err != nil {
			return nil, dbError("record idempotency key", err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, dbError("commit", err)
	}

	if data != nil && s.idempCache != nil {
		if err := s.idempCache.Set(ctx, idempKey, data, s.idempTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache transfer result in redis")
		}
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("from_wallet_id", from.ID.String()).
		Str("to_wallet_id", to.ID.String()).
		Str("amount", debit.String()).
		Str("currency", from.Currency).
		Str("credited", credit.String()).
		Msg("transfer completed")

	return result, nil
}

// DeleteTransfer reverses a transfer using the value actually credited, then
// removes it. The destination must still hold that value.
func (s *TransferServiceImpl) DeleteTransfer(ctx context.Context, userID, transferID uuid.UUID) error {
	existing, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get transfer: %w", err))
	}
	if existing == nil {
		return apperror.ErrNotFound("Transfer")
	}
	if existing.InitiatorID != userID {
		return apperror.ErrAccessDenied()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return dbError("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Wallets before the transfer row, the same order merges and
	// redenominations use.
	locked, err := lockWallets(ctx, s.walletRepo, dbTx, existing.FromWalletID, existing.ToWalletID)
	if err != nil {
		return err
	}
	transfer, err := s.transferRepo.GetByIDForUpdate(ctx, dbTx, transferID)
	if err != nil {
		return dbError("lock transfer", err)
	}
	if transfer == nil {
		return apperror.ErrNotFound("Transfer")
	}
	from, to := locked[transfer.FromWalletID], locked[transfer.ToWalletID]
	if from == nil || to == nil {
		return apperror.ErrLockTimeout(errTransferMoved)
	}

	credited := transfer.Credited()
	if to.Balance.LessThan(credited) {
		return apperror.ErrNegativeBalance()
	}

	now := time.Now().UTC()
	from.Balance = from.Balance.Add(transfer.Amount)
	from.UpdatedAt = now
	to.Balance = to.Balance.Sub(credited)
	to.UpdatedAt = now

	if err := s.walletRepo.Update(ctx, dbTx, from); err != nil {
		return dbError("refund source", err)
	}
	if err := s.walletRepo.Update(ctx, dbTx, to); err != nil {
		return dbError("reverse destination", err)
	}
	if err := s.transferRepo.Delete(ctx, dbTx, transfer.ID); err != nil {
		return dbError("delete transfer", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return dbError("commit", err)
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("refunded", transfer.Amount.String()).
		Str("reversed", credited.String()).
		Msg("transfer deleted")

	return nil
}

// UpdateTransferNote replaces the note. A blank note clears it.
func (s *TransferServiceImpl) UpdateTransferNote(ctx context.Context, userID, transferID uuid.UUID, note string) (*domain.WalletTransfer, error) {
	transfer, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transfer: %w", err))
	}
	if transfer == nil {
		return nil, apperror.ErrNotFound("Transfer")
	}
	if transfer.InitiatorID != userID {
		return nil, apperror.ErrAccessDenied()
	}

	cleaned := cleanNote(&note)
	if err := s.transferRepo.UpdateNote(ctx, transferID, cleaned); err != nil {
		return nil, dbError("update note", err)
	}
	transfer.Note = cleaned
	transfer.UpdatedAt = time.Now().UTC()
	return transfer, nil
}

// ListTransfers returns transfers the user initiated, newest first.
func (s *TransferServiceImpl) ListTransfers(ctx context.Context, userID uuid.UUID) ([]domain.WalletTransfer, error) {
	transfers, err := s.transferRepo.ListByInitiator(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transfers: %w", err))
	}
	return transfers, nil
}

// WalletTransfers returns a wallet's transfer history tagged with direction.
func (s *TransferServiceImpl) WalletTransfers(ctx context.Context, userID, walletID uuid.UUID) ([]ports.TransferHistoryEntry, error) {
	if _, err := s.access.requireAccess(ctx, walletID, userID); err != nil {
		return nil, err
	}
	transfers, err := s.transferRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallet transfers: %w", err))
	}
	entries := make([]ports.TransferHistoryEntry, 0, len(transfers))
	for i := range transfers {
		entries = append(entries, ports.TransferHistoryEntry{
			WalletTransfer: transfers[i],
			Direction:      transfers[i].DirectionFor(walletID),
		})
	}
	return entries, nil
}

func (s *TransferServiceImpl) side(ctx context.Context, w *domain.Wallet, before decimal.Decimal) ports.TransferSide {
	members, err := s.memberRepo.CountByWallet(ctx, w.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet_id", w.ID.String()).Msg("count members failed")
	}
	return ports.TransferSide{
		WalletID:      w.ID,
		WalletName:    w.Name,
		Currency:      w.Currency,
		BalanceBefore: before,
		BalanceAfter:  w.Balance,
		MemberCount:   members,
		IsShared:      domain.IsShared(members),
	}
}

func (s *TransferServiceImpl) cachedResult(ctx context.Context, key string) *ports.TransferResult {
	if key == "" || s.idempCache == nil {
		return nil
	}
	data, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		return nil
	}
	if data == nil {
		return nil
	}
	var result ports.TransferResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached transfer")
		return nil
	}
	return &result
}

// storedResult replays a response recorded in the idempotency log.
func (s *TransferServiceImpl) storedResult(ctx context.Context, key string) (*ports.TransferResult, error) {
	if key == "" {
		return nil, nil
	}
	entry, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get idempotency log: %w", err))
	}
	if entry == nil {
		return nil, nil
	}
	var result ports.TransferResult
	if err := json.Unmarshal(entry.ResponseJSON, &result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal idempotency log: %w", err))
	}
	s.log.Info().Str("key", key).Str("transfer_id", entry.TransferID.String()).Msg("replaying idempotent transfer")
	return &result, nil
}

func transferIdempotencyKey(initiator uuid.UUID, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return "transfer:" + initiator.String() + ":" + key
}

func cleanNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
