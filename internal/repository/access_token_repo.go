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

type AccessTokenRepository interface {
	Save(ctx context.Context, token *models.AccessToken) (string, error)
	GetByTeamAndProvider(ctx context.Context, teamID string, provider string) (*models.AccessToken, error)
}

type AccessTokenRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAccessTokenRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AccessTokenRepo {
	return &AccessTokenRepo{
		db:     db,
		getter: c,
	}
}

func (r *AccessTokenRepo) Save(ctx context.Context, token *models.AccessToken) (string, error) {
	const op = "access_token_repo.Save"

	query := `
		INSERT INTO access_tokens (id, team_id, account_id, provider, token, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id;
	`

	var tokenID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, token.ID, token.TeamID, token.AccountID, token.Provider, token.Token).
		Scan(&tokenID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return tokenID, nil
}

// GetByTeamAndProvider returns the most recently issued token for the team
// and provider, id as the tie-break. A missing token is an expected outcome
// reported as ErrNotFound.
func (r *AccessTokenRepo) GetByTeamAndProvider(ctx context.Context, teamID string, provider string) (*models.AccessToken, error) {
	const op = "access_token_repo.GetByTeamAndProvider"

	query := `
		SELECT id, team_id, account_id, provider, token, created_at
		FROM access_tokens
		WHERE team_id = $1 AND provider = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1;
	`

	var token models.AccessToken
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &token, query, teamID, provider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &token, nil
}
