package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/discovery/internal/database/repository"
)

// Door request outcomes as stored in door_requests.outcome.
const (
	OutcomeOpened  = "opened"
	OutcomeRefused = "refused"
)

// DoorLog records pod bay door requests.
type DoorLog struct {
	Requests *repository.DoorRequestRepo
}

// Record stores one request and returns the stored row.
func (s *DoorLog) Record(ctx context.Context, requestedBy, outcome, message string, at time.Time) (repository.DoorRequest, error) {
	if s == nil || s.Requests == nil {
		return repository.DoorRequest{}, fmt.Errorf("door log: repository not configured")
	}
	req := repository.DoorRequest{
		ID:          uuid.NewString(),
		RequestedBy: strings.TrimSpace(requestedBy),
		Outcome:     outcome,
		Message:     message,
		RequestedAt: at.UTC().Truncate(time.Second),
	}
	if err := s.Requests.Insert(ctx, req); err != nil {
		return repository.DoorRequest{}, fmt.Errorf("record door request: %w", err)
	}
	return req, nil
}

// Recent returns the newest requests first.
func (s *DoorLog) Recent(ctx context.Context, limit int) ([]repository.DoorRequest, error) {
	if s == nil || s.Requests == nil {
		return nil, fmt.Errorf("door log: repository not configured")
	}
	return s.Requests.Recent(ctx, limit)
}

// Summary counts requests by outcome.
type Summary struct {
	Opened  int
	Refused int
}

func (s Summary) Total() int { return s.Opened + s.Refused }

func (s *DoorLog) Summary(ctx context.Context) (Summary, error) {
	if s == nil || s.Requests == nil {
		return Summary{}, fmt.Errorf("door log: repository not configured")
	}
	counts, err := s.Requests.CountByOutcome(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Opened: counts[OutcomeOpened], Refused: counts[OutcomeRefused]}, nil
}
