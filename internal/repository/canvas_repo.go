package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kategengler/api-v2/internal/lib"
	"github.com/kategengler/api-v2/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type CanvasRepository interface {
	Create(ctx context.Context, canvas *models.Canvas) (*models.Canvas, error)
	GetByID(ctx context.Context, canvasID string) (*models.Canvas, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.Canvas, error)
}

type CanvasRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewCanvasRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *CanvasRepo {
	return &CanvasRepo{
		db:     db,
		getter: c,
	}
}

func (r *CanvasRepo) Create(ctx context.Context, canvas *models.Canvas) (*models.Canvas, error) {
	const op = "canvas_repo.Create"

	query := `
		INSERT INTO canvases (id, team_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, team_id, title, created_at, updated_at;
	`

	var created models.Canvas
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &created, query, canvas.ID, canvas.TeamID, canvas.Title)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *CanvasRepo) GetByID(ctx context.Context, canvasID string) (*models.Canvas, error) {
	const op = "canvas_repo.GetByID"

	query := `
		SELECT id, team_id, title, created_at, updated_at
		FROM canvases
		WHERE id = $1;
	`

	var canvas models.Canvas
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &canvas, query, canvasID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &canvas, nil
}

func (r *CanvasRepo) ListByTeam(ctx context.Context, teamID string) ([]*models.Canvas, error) {
	const op = "canvas_repo.ListByTeam"

	query := `
		SELECT id, team_id, title, created_at, updated_at
		FROM canvases
		WHERE team_id = $1
		ORDER BY created_at DESC;
	`

	var canvases []*models.Canvas
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &canvases, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Canvas{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return canvases, nil
}
