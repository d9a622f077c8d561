package service

import (
	"context"
	"fmt"

	"github.com/jask/discovery/internal/database/repository"
)

// Roster lists the crew.
type Roster struct {
	Crew *repository.CrewRepo
}

func (s *Roster) List(ctx context.Context) ([]repository.CrewMember, error) {
	if s == nil || s.Crew == nil {
		return nil, fmt.Errorf("roster: repository not configured")
	}
	return s.Crew.List(ctx)
}

// Awake returns the crew members not in hibernation.
func (s *Roster) Awake(ctx context.Context) ([]repository.CrewMember, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]repository.CrewMember, 0, len(all))
	for _, c := range all {
		if c.Status == "awake" {
			out = append(out, c)
		}
	}
	return out, nil
}
