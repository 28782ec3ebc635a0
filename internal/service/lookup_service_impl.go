package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/repository"
)

// DefaultSearchDelay mirrors the round trip the UI was designed around.
const DefaultSearchDelay = time.Second

type lookupService struct {
	finder   repository.PropertyFinder
	delay    time.Duration
	observer UseCaseObserver
}

func NewLookupService(finder repository.PropertyFinder, delay time.Duration, observers ...UseCaseObserver) LookupService {
	if delay < 0 {
		delay = 0
	}
	return &lookupService{
		finder:   finder,
		delay:    delay,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *lookupService) Delay() time.Duration { return s.delay }

func (s *lookupService) Resolve(ctx context.Context, address string) (result *domain.LookupResult) {
	startedAt := time.Now().UTC()
	var err error
	defer func() {
		outcome := result.Outcome()
		if err != nil {
			outcome = domain.OutcomeError
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "lookup",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"address": address,
				"outcome": string(outcome),
			},
		})
	}()

	var p *domain.PropertyRecord
	p, err = s.finder.FindByAddress(ctx, address)
	switch {
	case err == nil:
		return domain.FoundResult(p)
	case errors.Is(err, repository.ErrNotFound):
		err = nil
		return domain.NotFoundResult()
	default:
		err = fmt.Errorf("finding property: %w", err)
		return domain.NotFoundResult()
	}
}

func (s *lookupService) Search(ctx context.Context, address string) (*domain.LookupResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return s.Resolve(ctx, address), nil
}

func (s *lookupService) List(ctx context.Context) ([]*domain.PropertyRecord, error) {
	list, err := s.finder.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	return list, nil
}
