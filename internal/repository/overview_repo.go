package repo

import (
	"context"

	"github.com/kategengler/api-v2/internal/lib"
	"github.com/kategengler/api-v2/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type OverviewRepository interface {
	GetTeamOverview(ctx context.Context, teamID string) (*models.TeamOverview, error)
}

type OverviewRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewOverviewRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *OverviewRepo {
	return &OverviewRepo{
		db:     db,
		getter: c,
	}
}

func (r *OverviewRepo) GetTeamOverview(ctx context.Context, teamID string) (*models.TeamOverview, error) {
	const op = "overview_repo.GetTeamOverview"

	query := `
		SELECT
			(SELECT COUNT(*) FROM team_accounts WHERE team_id = $1) AS member_count,
			(SELECT COUNT(*) FROM canvases WHERE team_id = $1)      AS canvas_count,
			(SELECT COUNT(*) FROM access_tokens WHERE team_id = $1) AS token_count;
	`

	var overview models.TeamOverview
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &overview, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &overview, nil
}
