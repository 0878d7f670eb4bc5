package overview

import (
	"context"

	"github.com/kategengler/api-v2/internal/http/api"
	"github.com/kategengler/api-v2/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OverviewProvider
type OverviewProvider interface {
	GetTeamOverview(ctx context.Context, teamID string) (*models.TeamOverview, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamChecker
type TeamChecker interface {
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
}

type OverviewService struct {
	overviewProvider OverviewProvider
	teamChecker      TeamChecker
}

func NewOverviewService(overviewProvider OverviewProvider, teamChecker TeamChecker) *OverviewService {
	return &OverviewService{
		overviewProvider: overviewProvider,
		teamChecker:      teamChecker,
	}
}

// Get returns the per-team resource counts.
func (s *OverviewService) Get(ctx context.Context, teamID string) (*api.OverviewSchema, error) {
	if _, err := s.teamChecker.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	overview, err := s.overviewProvider.GetTeamOverview(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &api.OverviewSchema{
		TeamID:      teamID,
		MemberCount: overview.MemberCount,
		CanvasCount: overview.CanvasCount,
		TokenCount:  overview.TokenCount,
	}, nil
}
