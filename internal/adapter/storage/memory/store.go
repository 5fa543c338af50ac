// Package memory is a transactional in-process store implementing the ledger
// repositories. Writers are serialised: Begin blocks until the previous
// transaction commits or rolls back, or ctx is done. Reads outside a
// transaction see the last committed state.
package memory

import (
	"context"
	"errors"
	"sync"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errForeignTx = errors.New("memory: transaction does not belong to this store")

type state struct {
	wallets   map[uuid.UUID]domain.Wallet
	members   map[uuid.UUID]domain.WalletMember
	txns      map[uuid.UUID]domain.Transaction
	transfers map[uuid.UUID]domain.WalletTransfer
	merges    map[uuid.UUID]domain.WalletMergeHistory

	idempotency map[string]domain.IdempotencyLog
}

func newState() *state {
	return &state{
		wallets:   make(map[uuid.UUID]domain.Wallet),
		members:   make(map[uuid.UUID]domain.WalletMember),
		txns:      make(map[uuid.UUID]domain.Transaction),
		transfers: make(map[uuid.UUID]domain.WalletTransfer),
		merges:    make(map[uuid.UUID]domain.WalletMergeHistory),

		idempotency: make(map[string]domain.IdempotencyLog),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	for k, v := range s.txns {
		c.txns[k] = v
	}
	for k, v := range s.transfers {
		c.transfers[k] = v
	}
	for k, v := range s.merges {
		c.merges[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	return c
}

// Store holds committed state and hands out write transactions.
// It implements ports.DBTransactor and ports.HealthChecker.
type Store struct {
	writer    chan struct{}
	mu        sync.RWMutex
	committed *state

	auditMu sync.Mutex
	audits  []domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer:    make(chan struct{}, 1),
		committed: newState(),
	}
}

// Begin starts a write transaction working on a private copy of the state.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	work := s.committed.clone()
	s.mu.RUnlock()

	return &Tx{store: s, work: work}, nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(_ context.Context) error { return nil }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.committed)
}

// Tx is a store transaction. Only Commit and Rollback are meaningful;
// repositories reach the working state through it.
type Tx struct {
	pgx.Tx
	store *Store
	work  *state
	done  bool
}

// Commit publishes the working state.
func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.store.mu.Lock()
	t.store.committed = t.work
	t.store.mu.Unlock()
	t.finish()
	return nil
}

// Rollback discards the working state.
func (t *Tx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.done = true
	t.work = nil
	<-t.store.writer
}

func (s *Store) working(tx pgx.Tx) (*state, error) {
	t, ok := tx.(*Tx)
	if !ok || t.store != s || t.done {
		return nil, errForeignTx
	}
	return t.work, nil
}
