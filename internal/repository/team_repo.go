package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kategengler/api-v2/internal/lib"
	"github.com/kategengler/api-v2/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) (*models.Team, error)
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	GetByDomain(ctx context.Context, domain string) (*models.Team, error)
	UpdateDomain(ctx context.Context, teamID string, domain string) (*models.Team, error)
}

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

// Create inserts the team. Domain uniqueness is enforced by the database
// constraint and surfaced as ErrDomainTaken.
func (r *TeamRepo) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (id, domain, name, slack_team_id, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, domain, name, slack_team_id, images, created_at, updated_at;
	`

	var created models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &created, query, team.ID, team.Domain, team.Name, team.SlackTeamID, team.Images)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return nil, ErrDomainTaken
			}
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := `
		SELECT id, domain, name, slack_team_id, images, created_at, updated_at
		FROM teams
		WHERE id = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetByDomain(ctx context.Context, domain string) (*models.Team, error) {
	const op = "team_repo.GetByDomain"

	query := `
		SELECT id, domain, name, slack_team_id, images, created_at, updated_at
		FROM teams
		WHERE domain = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, domain)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

// UpdateDomain stores an already-validated domain value. The unique index
// serializes concurrent writers; the loser gets ErrDomainTaken.
func (r *TeamRepo) UpdateDomain(ctx context.Context, teamID string, domain string) (*models.Team, error) {
	const op = "team_repo.UpdateDomain"

	query := `
		UPDATE teams
		SET domain = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, domain, name, slack_team_id, images, created_at, updated_at;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, domain, teamID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return nil, ErrDomainTaken
			}
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}
