// Package memory is a process-local storage backend implementing the
// repository ports. Transactions are serialized: Begin waits until no other
// transaction is running, writes are staged on the transaction and become
// visible to other readers only on Commit.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errUnsupported = errors.New("memory store: raw SQL is not supported")

type guaranteeKey struct {
	accountID         uuid.UUID
	loanApplicationID string
}

type entryRow struct {
	seq   int64
	entry domain.Entry
}

// Store holds committed state.
type Store struct {
	mu     sync.RWMutex
	writer chan struct{}
	seq    int64

	accounts   map[uuid.UUID]domain.Account
	entries    map[uuid.UUID]entryRow
	guarantees map[guaranteeKey]domain.Guarantee
	terms      map[uuid.UUID]domain.TermDeposit
	sessions   map[uuid.UUID]domain.CashSession
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer:     make(chan struct{}, 1),
		accounts:   make(map[uuid.UUID]domain.Account),
		entries:    make(map[uuid.UUID]entryRow),
		guarantees: make(map[guaranteeKey]domain.Guarantee),
		terms:      make(map[uuid.UUID]domain.TermDeposit),
		sessions:   make(map[uuid.UUID]domain.CashSession),
	}
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	return s.begin(ctx)
}

func (s *Store) begin(ctx context.Context) (*memTx, error) {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &memTx{
		store:      s,
		accounts:   make(map[uuid.UUID]*domain.Account),
		entries:    make(map[uuid.UUID]*entryRow),
		guarantees: make(map[guaranteeKey]*domain.Guarantee),
		terms:      make(map[uuid.UUID]*domain.TermDeposit),
		sessions:   make(map[uuid.UUID]*domain.CashSession),
	}, nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Name returns the dependency name.
func (s *Store) Name() string { return "memory" }

// tx resolves a pgx.Tx handed to a repository. A nil tx yields nil.
func (s *Store) tx(tx pgx.Tx) (*memTx, error) {
	if tx == nil {
		return nil, nil
	}
	mt, ok := tx.(*memTx)
	if !ok || mt.store != s {
		return nil, fmt.Errorf("memory store: foreign transaction %T", tx)
	}
	if mt.done {
		return nil, pgx.ErrTxClosed
	}
	return mt, nil
}

// read runs fn against committed state plus the writes staged on tx.
func (s *Store) read(tx pgx.Tx, fn func(mt *memTx) error) error {
	mt, err := s.tx(tx)
	if err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(mt)
}

// write stages fn on tx, or runs it in its own transaction when tx is nil.
func (s *Store) write(ctx context.Context, tx pgx.Tx, fn func(mt *memTx) error) error {
	mt, err := s.tx(tx)
	if err != nil {
		return err
	}
	if mt != nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return fn(mt)
	}

	mt, err = s.begin(ctx)
	if err != nil {
		return err
	}
	defer mt.Rollback(ctx) //nolint:errcheck
	s.mu.RLock()
	err = fn(mt)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return mt.Commit(ctx)
}

// memTx is a pgx.Tx whose writes are staged until Commit. A nil map value
// marks a deleted row.
type memTx struct {
	store *Store
	done  bool

	accounts   map[uuid.UUID]*domain.Account
	entries    map[uuid.UUID]*entryRow
	guarantees map[guaranteeKey]*domain.Guarantee
	terms      map[uuid.UUID]*domain.TermDeposit
	sessions   map[uuid.UUID]*domain.CashSession
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	s := t.store
	s.mu.Lock()
	apply(s.accounts, t.accounts)
	for k, v := range t.entries {
		s.entries[k] = *v
	}
	apply(s.guarantees, t.guarantees)
	apply(s.terms, t.terms)
	apply(s.sessions, t.sessions)
	s.mu.Unlock()
	t.finish()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *memTx) finish() {
	t.done = true
	<-t.store.writer
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("memory store: nested transactions are not supported")
}

func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errUnsupported
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errUnsupported
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), errUnsupported
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errUnsupported
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{}
}
func (t *memTx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...any) error { return errUnsupported }

func apply[K comparable, V any](dst map[K]V, staged map[K]*V) {
	for k, v := range staged {
		if v == nil {
			delete(dst, k)
			continue
		}
		dst[k] = *v
	}
}

// lookup returns the row visible to mt.
func lookup[K comparable, V any](committed map[K]V, staged map[K]*V, k K) (V, bool) {
	if v, ok := staged[k]; ok {
		if v == nil {
			var zero V
			return zero, false
		}
		return *v, true
	}
	v, ok := committed[k]
	return v, ok
}

// visible returns every row visible to mt that satisfies keep.
func visible[K comparable, V any](committed map[K]V, staged map[K]*V, keep func(V) bool) []V {
	var out []V
	for k, v := range committed {
		if _, ok := staged[k]; ok {
			continue
		}
		if keep(v) {
			out = append(out, v)
		}
	}
	for _, v := range staged {
		if v != nil && keep(*v) {
			out = append(out, *v)
		}
	}
	return out
}

// The staged* accessors return nil for a nil transaction, which reads as empty.
func (t *memTx) stagedAccounts() map[uuid.UUID]*domain.Account {
	if t == nil {
		return nil
	}
	return t.accounts
}

func (t *memTx) stagedEntries() map[uuid.UUID]*entryRow {
	if t == nil {
		return nil
	}
	return t.entries
}

func (t *memTx) stagedGuarantees() map[guaranteeKey]*domain.Guarantee {
	if t == nil {
		return nil
	}
	return t.guarantees
}

func (t *memTx) stagedTerms() map[uuid.UUID]*domain.TermDeposit {
	if t == nil {
		return nil
	}
	return t.terms
}

func (t *memTx) stagedSessions() map[uuid.UUID]*domain.CashSession {
	if t == nil {
		return nil
	}
	return t.sessions
}

func sortEntries(rows []entryRow) []domain.Entry {
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]domain.Entry, len(rows))
	for i, r := range rows {
		out[i] = r.entry
	}
	return out
}

func cloneSession(s domain.CashSession) *domain.CashSession {
	s.OpeningBalances = maps.Clone(s.OpeningBalances)
	s.ClosingBalances = maps.Clone(s.ClosingBalances)
	return &s
}

// nextSeq orders entries by creation. Only the running writer calls it.
func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}
