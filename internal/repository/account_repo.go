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

type AccountRepository interface {
	Save(ctx context.Context, account *models.Account) (string, error)
	GetByID(ctx context.Context, accountID string) (*models.Account, error)
	AddToTeam(ctx context.Context, teamID string, accountID string) error
	GetAccountsInTeam(ctx context.Context, teamID string) ([]*models.Account, error)
}

type AccountRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAccountRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AccountRepo {
	return &AccountRepo{
		db:     db,
		getter: c,
	}
}

// Save upserts the account record keyed by its provider-issued id.
func (r *AccountRepo) Save(ctx context.Context, account *models.Account) (string, error) {
	const op = "account_repo.Save"

	query := `
		INSERT INTO accounts (id, name, email, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email
		RETURNING id;
	`

	var accountID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, account.ID, account.Name, account.Email).Scan(&accountID)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return accountID, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, accountID string) (*models.Account, error) {
	const op = "account_repo.GetByID"

	query := `
		SELECT id, name, email, created_at
		FROM accounts
		WHERE id = $1;
	`

	var account models.Account
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &account, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &account, nil
}

// AddToTeam records membership in the team_accounts join table. Re-adding an
// existing member is a no-op.
func (r *AccountRepo) AddToTeam(ctx context.Context, teamID string, accountID string) error {
	const op = "account_repo.AddToTeam"

	query := `
		INSERT INTO team_accounts (team_id, account_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (team_id, account_id) DO NOTHING;
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID, accountID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *AccountRepo) GetAccountsInTeam(ctx context.Context, teamID string) ([]*models.Account, error) {
	const op = "account_repo.GetAccountsInTeam"

	query := `
		SELECT a.id, a.name, a.email, a.created_at
		FROM accounts a
		JOIN team_accounts ta ON ta.account_id = a.id
		WHERE ta.team_id = $1
		ORDER BY ta.created_at;
	`

	var accounts []*models.Account
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &accounts, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Account{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return accounts, nil
}
