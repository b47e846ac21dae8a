//go:generate go run go.uber.org/mock/mockgen -source=signups.go -destination=../mocks/mock_signups.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"raidwatch/domain"
	apperrors "raidwatch/errors"
)

// IEventFetcher abstracts the Raid-Helper API client.
type IEventFetcher interface {
	FetchEvent(ctx context.Context, eventID string) (domain.Event, error)
}

// ISignupService is the command-facing surface of the signup logic.
type ISignupService interface {
	ActiveSignups(ctx context.Context, eventArg string) (SignupsResult, error)
	Compare(ctx context.Context, firstArg, secondArg string) (CompareResult, error)
}

type SignupsResult struct {
	EventID string
	Grouped domain.GroupedRoster
}

type CompareResult struct {
	FirstID  string
	SecondID string
	Both     domain.GroupedRoster
	OnlyOne  domain.GroupedRoster
}

type SignupService struct {
	log     *slog.Logger
	fetcher IEventFetcher
}

func NewSignupService(log *slog.Logger, fetcher IEventFetcher) *SignupService {
	return &SignupService{log: log, fetcher: fetcher}
}

// ActiveSignups resolves the argument to an event id, fetches the event
// and returns its grouped roster. The returned result always carries the
// resolved event id so callers can name it in error messages.
func (s *SignupService) ActiveSignups(ctx context.Context, eventArg string) (SignupsResult, error) {
	eventID := domain.ExtractEventID(eventArg)
	result := SignupsResult{EventID: eventID}

	event, err := s.fetcher.FetchEvent(ctx, eventID)
	if err != nil {
		return result, err
	}

	roster := domain.ActiveSignups(event)
	if roster.Len() == 0 {
		return result, apperrors.ErrEmptyRoster
	}

	s.log.Debug("Classified roster", "event_id", eventID, "participants", roster.Len())
	result.Grouped = roster.Grouped()
	return result, nil
}

// Compare fetches both events sequentially and splits their rosters into
// the both / only-one groupings. The first fetch failure aborts the whole
// command; no partial result is returned.
func (s *SignupService) Compare(ctx context.Context, firstArg, secondArg string) (CompareResult, error) {
	result := CompareResult{
		FirstID:  domain.ExtractEventID(firstArg),
		SecondID: domain.ExtractEventID(secondArg),
	}

	first, err := s.fetcher.FetchEvent(ctx, result.FirstID)
	if err != nil {
		return result, fmt.Errorf("event %s: %w", result.FirstID, err)
	}
	second, err := s.fetcher.FetchEvent(ctx, result.SecondID)
	if err != nil {
		return result, fmt.Errorf("event %s: %w", result.SecondID, err)
	}

	result.Both, result.OnlyOne = domain.Compare(
		domain.ActiveSignups(first),
		domain.ActiveSignups(second),
	)
	return result, nil
}
