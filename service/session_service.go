package service

import (
	"context"
	"fmt"
	"log"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"tuition-negotiation/currency"
	"tuition-negotiation/domain"
	"tuition-negotiation/repository"
)

// SessionService runs every calculator action against a stored session:
// parse the typed amounts, validate, compute, and remember the outcome.
type SessionService struct {
	repo   repository.SessionRepository
	engine *DiscountEngine
	now    func() time.Time

	// serializes load-modify-save so concurrent requests on the same
	// session do not lose each other's updates
	mu sync.Mutex
}

// NewSessionService creates a new SessionService with the given repository.
func NewSessionService(repo repository.SessionRepository, engine *DiscountEngine) *SessionService {
	return &SessionService{repo: repo, engine: engine, now: time.Now}
}

// Mask formats keystrokes typed in an amount field.
func (s *SessionService) Mask(raw string) string {
	return currency.Mask(raw)
}

// Placeholders returns the example values shown in a fresh page.
func (s *SessionService) Placeholders() map[string]string {
	return maps.Clone(placeholders)
}

func (s *SessionService) CreateSession(ctx context.Context) (domain.Session, error) {
	session := domain.NewSession(s.now())
	if err := s.repo.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *SessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// CalculateNegotiation runs the single-installment negotiation. A failed
// calculation also clears the previous negotiation result.
func (s *SessionService) CalculateNegotiation(
	ctx context.Context,
	id uuid.UUID,
	form domain.NegotiationForm,
) (domain.NegotiationResult, error) {

	input := domain.NegotiationInput{
		CourseValue:        currency.Parse(form.CourseValue),
		CurrentInstallment: currency.Parse(form.CurrentInstallment),
		OverdueInstallment: currency.Parse(form.OverdueInstallment),
	}

	var result domain.NegotiationResult
	_, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Negotiation = nil

		var err error
		result, err = s.engine.Negotiate(input)
		if err != nil {
			return err
		}
		session.Negotiation = &result
		return nil
	})
	return result, err
}

func (s *SessionService) ClearNegotiation(ctx context.Context, id uuid.UUID) error {
	_, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Negotiation = nil
		return nil
	})
	return err
}

// AddInstallment parses raw and appends it to the overdue list.
func (s *SessionService) AddInstallment(
	ctx context.Context,
	id uuid.UUID,
	raw string,
) ([]domain.InstallmentView, error) {

	amount := currency.Parse(raw)

	session, err := s.update(ctx, id, func(session *domain.Session) error {
		return session.Installments.Add(amount)
	})
	if err != nil {
		return nil, err
	}
	return session.Installments.DisplayList(), nil
}

// RemoveInstallment deletes the entry at index. An index outside the list
// is ignored and reported through removed.
func (s *SessionService) RemoveInstallment(
	ctx context.Context,
	id uuid.UUID,
	index int,
) (views []domain.InstallmentView, removed bool, err error) {

	session, err := s.update(ctx, id, func(session *domain.Session) error {
		removed = session.Installments.RemoveAt(index)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return session.Installments.DisplayList(), removed, nil
}

func (s *SessionService) ListInstallments(ctx context.Context, id uuid.UUID) ([]domain.InstallmentView, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Installments.DisplayList(), nil
}

// CalculateMulti negotiates over the session's overdue list.
func (s *SessionService) CalculateMulti(
	ctx context.Context,
	id uuid.UUID,
	form domain.MultiNegotiationForm,
) (domain.MultiNegotiationResult, error) {

	courseValue := currency.Parse(form.CourseValue)
	currentInstallment := currency.Parse(form.CurrentInstallment)

	var result domain.MultiNegotiationResult
	_, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Multi = nil

		var err error
		result, err = s.engine.NegotiateMany(domain.MultiNegotiationInput{
			CourseValue:        courseValue,
			CurrentInstallment: currentInstallment,
			Installments:       session.Installments,
		})
		if err != nil {
			return err
		}
		session.Multi = &result
		return nil
	})
	return result, err
}

// ClearMulti empties the overdue list together with its result.
func (s *SessionService) ClearMulti(ctx context.Context, id uuid.UUID) error {
	_, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Installments.Clear()
		session.Multi = nil
		return nil
	})
	return err
}

func (s *SessionService) Simulate(
	ctx context.Context,
	id uuid.UUID,
	form domain.SimulationForm,
) (domain.SimulationResult, error) {

	input := domain.SimulationInput{
		FullInstallment:    currency.Parse(form.FullInstallment),
		CurrentInstallment: currency.Parse(form.CurrentInstallment),
	}

	var result domain.SimulationResult
	_, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Simulation = nil

		var err error
		result, err = s.engine.Simulate(input)
		if err != nil {
			return err
		}
		session.Simulation = &result
		return nil
	})
	return result, err
}

func (s *SessionService) ClearSimulation(ctx context.Context, id uuid.UUID) error {
	_, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Simulation = nil
		return nil
	})
	return err
}

// update loads the session, applies one action and saves it even when the
// action fails, since a failed calculation still clears its result. Callers
// parse their input before calling it so the lock only covers load, apply
// and save.
func (s *SessionService) update(
	ctx context.Context,
	id uuid.UUID,
	apply func(*domain.Session) error,
) (domain.Session, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	applyErr := apply(&session)
	session.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, session); err != nil {
		if applyErr != nil {
			// not critical: the validation failure is what the user needs to see
			log.Printf("Warning: failed to save session %s: %v", id, err)
			return session, applyErr
		}
		return domain.Session{}, fmt.Errorf("save session %s: %w", id, err)
	}
	return session, applyErr
}
