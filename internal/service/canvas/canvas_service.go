package canvas

import (
	"context"

	"github.com/kategengler/api-v2/internal/http/api"
	"github.com/kategengler/api-v2/internal/models"
	"github.com/kategengler/api-v2/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CanvasProvider
type CanvasProvider interface {
	Create(ctx context.Context, canvas *models.Canvas) (*models.Canvas, error)
	GetByID(ctx context.Context, canvasID string) (*models.Canvas, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.Canvas, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamChecker
type TeamChecker interface {
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
}

type CanvasService struct {
	canvasProvider CanvasProvider
	teamChecker    TeamChecker
	trm            service.TransactionManager
}

func NewCanvasService(
	trm service.TransactionManager,
	canvasProvider CanvasProvider,
	teamChecker TeamChecker,
) *CanvasService {
	return &CanvasService{
		canvasProvider: canvasProvider,
		teamChecker:    teamChecker,
		trm:            trm,
	}
}

// Create adds a canvas to an existing team. The owning team is re-read inside
// the transaction so a concurrently deleted team can not end up with an
// orphan canvas.
func (s *CanvasService) Create(ctx context.Context, teamID string, title string) (*api.CanvasSchema, error) {
	var created *models.Canvas

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teamChecker.GetByID(ctx, teamID); err != nil {
			return err
		}

		var err error
		created, err = s.canvasProvider.Create(ctx, &models.Canvas{
			ID:     uuid.NewString(),
			TeamID: teamID,
			Title:  title,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return toCanvasSchema(created), nil
}

func (s *CanvasService) Get(ctx context.Context, canvasID string) (*api.CanvasSchema, error) {
	canvas, err := s.canvasProvider.GetByID(ctx, canvasID)
	if err != nil {
		return nil, err
	}

	return toCanvasSchema(canvas), nil
}

func (s *CanvasService) ListForTeam(ctx context.Context, teamID string) ([]api.CanvasSchema, error) {
	canvases, err := s.canvasProvider.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	schemas := make([]api.CanvasSchema, 0, len(canvases))
	for _, c := range canvases {
		schemas = append(schemas, *toCanvasSchema(c))
	}

	return schemas, nil
}

func toCanvasSchema(canvas *models.Canvas) *api.CanvasSchema {
	return &api.CanvasSchema{
		CanvasID:  canvas.ID,
		TeamID:    canvas.TeamID,
		Title:     canvas.Title,
		CreatedAt: canvas.CreatedAt,
		UpdatedAt: canvas.UpdatedAt,
	}
}
