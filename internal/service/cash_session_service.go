package service

import (
	"context"
	"fmt"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// CashSessionServiceImpl implements ports.CashSessionService.
type CashSessionServiceImpl struct {
	uow      *UnitOfWork
	sessions ports.CashSessionRepository
	entries  ports.EntryRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewCashSessionService creates a new CashSessionServiceImpl.
func NewCashSessionService(uow *UnitOfWork, sessions ports.CashSessionRepository, entries ports.EntryRepository, log zerolog.Logger) *CashSessionServiceImpl {
	return &CashSessionServiceImpl{
		uow:      uow,
		sessions: sessions,
		entries:  entries,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Open starts a session for the cashier. A cashier holds at most one
// session that is not closed.
func (s *CashSessionServiceImpl) Open(ctx context.Context, cashierID string, opening domain.Balances) (*domain.CashSession, error) {
	session, err := domain.NewCashSession(cashierID, opening, s.now())
	if err != nil {
		return nil, err
	}

	err = s.uow.Run(ctx, "open cash session", func(tx pgx.Tx) error {
		if err := s.sessions.LockCashier(ctx, tx, cashierID); err != nil {
			return fmt.Errorf("lock cashier: %w", err)
		}
		active, err := s.sessions.GetActiveByCashier(ctx, tx, cashierID)
		if err != nil {
			return fmt.Errorf("find active session: %w", err)
		}
		if active != nil {
			return apperror.ErrSessionAlreadyOpen(cashierID).WithDetail("session_id", active.ID.String())
		}
		return s.sessions.Create(ctx, tx, session)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("cashier_id", cashierID).
		Msg("cash session opened")

	return session, nil
}

// Get returns a session by id.
func (s *CashSessionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.CashSession, error) {
	session, err := s.sessions.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get cash session: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrNotFound("cash session", id.String())
	}
	return session, nil
}

func (s *CashSessionServiceImpl) lock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error) {
	session, err := s.sessions.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("lock cash session: %w", err)
	}
	if session == nil {
		return nil, apperror.ErrNotFound("cash session", id.String())
	}
	return session, nil
}

// Pause stops attributing the cashier's entries to the session.
func (s *CashSessionServiceImpl) Pause(ctx context.Context, id uuid.UUID) (*domain.CashSession, error) {
	return s.transition(ctx, id, "pause cash session", (*domain.CashSession).Pause)
}

// Resume reopens a paused session.
func (s *CashSessionServiceImpl) Resume(ctx context.Context, id uuid.UUID) (*domain.CashSession, error) {
	return s.transition(ctx, id, "resume cash session", (*domain.CashSession).Resume)
}

func (s *CashSessionServiceImpl) transition(ctx context.Context, id uuid.UUID, op string, fn func(*domain.CashSession, time.Time) error) (*domain.CashSession, error) {
	var session *domain.CashSession
	err := s.uow.Run(ctx, op, func(tx pgx.Tx) error {
		var err error
		session, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(session, s.now()); err != nil {
			return err
		}
		return s.sessions.Update(ctx, tx, session)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("session_id", id.String()).Str("status", string(session.Status)).Msg("cash session updated")
	return session, nil
}

// Close records the declared float and reconciles it against the entries
// attributed to the session. An unbalanced session is still closed.
func (s *CashSessionServiceImpl) Close(ctx context.Context, id uuid.UUID, declared domain.Balances) (*domain.Reconciliation, error) {
	for c := range declared {
		if !c.Valid() {
			return nil, apperror.Validation("unsupported currency " + string(c))
		}
	}

	var rec domain.Reconciliation
	var cashier string
	err := s.uow.Run(ctx, "close cash session", func(tx pgx.Tx) error {
		session, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := session.Close(declared, s.now()); err != nil {
			return err
		}
		entries, err := s.entries.ListBySession(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("list session entries: %w", err)
		}
		rec = domain.Reconcile(session, entries, declared)
		cashier = session.CashierID
		return s.sessions.Update(ctx, tx, session)
	})
	if err != nil {
		return nil, err
	}

	if !rec.Balanced {
		ev := s.log.Warn().Str("session_id", id.String()).Str("cashier_id", cashier)
		for _, l := range rec.Lines {
			if l.Discrepancy != 0 {
				ev = ev.Int64("discrepancy_"+string(l.Currency), l.Discrepancy)
			}
		}
		ev.Msg("cash session closed with discrepancy")
	} else {
		s.log.Info().Str("session_id", id.String()).Str("cashier_id", cashier).Msg("cash session closed")
	}

	return &rec, nil
}
