package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/oshokin/locator-seal/internal/domain/seal"
	"github.com/oshokin/locator-seal/internal/logger"
	repo "github.com/oshokin/locator-seal/internal/repository/state"
)

// service encapsulates the seal business logic and persistence orchestration.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// repo handles persistent storage of the seal record.
	repo repo.Repository
	// guard enforces that the base locator is assigned at most once.
	// The guard itself assumes a single thread of control; mu provides the
	// cross-goroutine exclusion around top-level invocations.
	guard *domain.Guard
	// record is the current in-memory seal state.
	record *domain.Record
	// mu protects concurrent access to the guard and the record.
	mu sync.RWMutex
}

// newService creates a service backed by the provided repository.
// A persisted sealed record restores the guard in its consumed state, so
// the fire-once guarantee survives process restarts.
func newService(ctx context.Context, repository repo.Repository) (*service, error) {
	s := &service{
		repo:   repository,
		guard:  domain.NewGuard(),
		record: new(domain.Record),
	}

	if repository == nil {
		return s, nil
	}

	record, err := repository.Load(ctx)
	switch {
	case err == nil:
		if record != nil {
			s.record = record
			if record.Sealed {
				s.guard = domain.NewFiredGuard()
			}
		}
	case errors.Is(err, repo.ErrNotFound):
		// Keep default state.
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}

	return s, nil
}

// SealBaseLocator runs the one-time locator assignment through the guard.
// The guard fires on entry, so a failed persist still consumes the single
// permitted attempt; a partially applied seal is never silently repeated.
func (s *service) SealBaseLocator(ctx context.Context, actor *domain.Actor, baseLocator string) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.guard.Invoke(func() error {
		record := &domain.Record{
			SealID:      uuid.NewString(),
			SealedAt:    time.Now(),
			SealedBy:    actor.Clone(),
			BaseLocator: baseLocator,
			Sealed:      true,
		}

		if s.repo != nil {
			if err := s.repo.Save(ctx, record); err != nil {
				logger.Errorf(ctx, "Failed to persist seal record: %v", err)

				return fmt.Errorf("persist state: %w", err)
			}
		}

		s.record = record

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySealed) {
			logger.WarnKV(ctx, "Rejected repeated seal attempt",
				"base_locator", baseLocator, "actor", actor)
		}

		return nil, err
	}

	logger.InfoKV(ctx, "Base locator sealed",
		"seal_id", s.record.SealID, "base_locator", s.record.BaseLocator, "actor", s.record.SealedBy)

	result := s.record.Clone()

	return result, nil
}

// GetSealState returns the current seal state.
func (s *service) GetSealState(ctx context.Context) *domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger.InfoKV(ctx, "Seal state requested", "is_sealed", s.record.Sealed)

	result := s.record.Clone()

	return result
}
