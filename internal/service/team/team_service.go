package team

import (
	"context"
	"errors"

	"github.com/kategengler/api-v2/internal/changeset"
	"github.com/kategengler/api-v2/internal/http/api"
	"github.com/kategengler/api-v2/internal/imagemap"
	"github.com/kategengler/api-v2/internal/models"
	repo "github.com/kategengler/api-v2/internal/repository"
	"github.com/kategengler/api-v2/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	Create(ctx context.Context, team *models.Team) (*models.Team, error)
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	GetByDomain(ctx context.Context, domain string) (*models.Team, error)
	UpdateDomain(ctx context.Context, teamID string, domain string) (*models.Team, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountProvider
type AccountProvider interface {
	Save(ctx context.Context, account *models.Account) (string, error)
	AddToTeam(ctx context.Context, teamID string, accountID string) error
	GetAccountsInTeam(ctx context.Context, teamID string) ([]*models.Account, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenProvider
type TokenProvider interface {
	Save(ctx context.Context, token *models.AccessToken) (string, error)
	GetByTeamAndProvider(ctx context.Context, teamID string, provider string) (*models.AccessToken, error)
}

type TeamService struct {
	teamProvider    TeamProvider
	accountProvider AccountProvider
	tokenProvider   TokenProvider
	trm             service.TransactionManager
}

func NewTeamService(
	trm service.TransactionManager,
	teamProvider TeamProvider,
	accountProvider AccountProvider,
	tokenProvider TokenProvider,
) *TeamService {
	return &TeamService{
		teamProvider:    teamProvider,
		accountProvider: accountProvider,
		tokenProvider:   tokenProvider,
		trm:             trm,
	}
}

// CreateFromSlack validates and persists a team produced by the Slack OAuth
// flow. The team row, the creator's account, the membership and the OAuth
// token are committed in one transaction. On validation failure the returned
// error is a changeset.Errors listing every invalid field.
func (s *TeamService) CreateFromSlack(ctx context.Context, req api.CreateSlackTeamRequest) (*api.TeamSchema, error) {
	var errs changeset.Errors
	if req.Domain == "" {
		errs.AddBlank("domain")
	}
	if req.Name == "" {
		errs.AddBlank("name")
	}
	if req.SlackTeamID == "" {
		errs.AddBlank("slack_team_id")
	}
	forbidDomainChangeIfBound(&errs, nil, &req.SlackTeamID)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	team := &models.Team{
		ID:          uuid.NewString(),
		Domain:      &req.Domain,
		Name:        req.Name,
		SlackTeamID: &req.SlackTeamID,
		Images:      imagemap.Derive(req.Icon),
	}

	var created *models.Team
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.teamProvider.Create(ctx, team)
		if err != nil {
			return err
		}

		if _, err := s.accountProvider.Save(ctx, &models.Account{
			ID:    req.Creator.AccountID,
			Name:  req.Creator.Name,
			Email: req.Creator.Email,
		}); err != nil {
			return err
		}

		if err := s.accountProvider.AddToTeam(ctx, created.ID, req.Creator.AccountID); err != nil {
			return err
		}

		if req.AccessToken == "" {
			return nil
		}

		_, err = s.tokenProvider.Save(ctx, &models.AccessToken{
			ID:        uuid.NewString(),
			TeamID:    created.ID,
			AccountID: req.Creator.AccountID,
			Provider:  "slack",
			Token:     req.AccessToken,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, repo.ErrDomainTaken) {
			errs.Add("domain", changeset.MsgTaken)
			return nil, errs
		}
		return nil, err
	}

	schema := toTeamSchema(created)
	schema.Members = []api.TeamMember{{
		AccountID: req.Creator.AccountID,
		Name:      req.Creator.Name,
		Email:     req.Creator.Email,
	}}

	return schema, nil
}

// CreatePersonal creates a single-user space. All candidate fields are
// ignored: the name is fixed, no domain, no Slack binding.
func (s *TeamService) CreatePersonal(ctx context.Context) (*api.TeamSchema, error) {
	team := &models.Team{
		ID:     uuid.NewString(),
		Name:   PersonalTeamName,
		Images: models.ImageMap{},
	}

	created, err := s.teamProvider.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	return toTeamSchema(created), nil
}

// UpdateDomain applies the only permitted team mutation. Slack-bound teams
// keep their domain forever; for personal teams the value is lowercased,
// checked against the format rule and stored with the "~" prefix.
func (s *TeamService) UpdateDomain(ctx context.Context, teamID string, req api.UpdateDomainRequest) (*api.TeamSchema, error) {
	existing, err := s.teamProvider.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var errs changeset.Errors
	forbidDomainChangeIfBound(&errs, existing, nil)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	var domain string
	if req.Domain != nil {
		domain = *req.Domain
	}
	normalized := normalizeDomain(&errs, domain)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	updated, err := s.teamProvider.UpdateDomain(ctx, teamID, normalized)
	if err != nil {
		if errors.Is(err, repo.ErrDomainTaken) {
			errs.Add("domain", changeset.MsgTaken)
			return nil, errs
		}
		return nil, err
	}

	return toTeamSchema(updated), nil
}

// GetByDomain returns a team with its member accounts.
func (s *TeamService) GetByDomain(ctx context.Context, domain string) (*api.TeamSchema, error) {
	team, err := s.teamProvider.GetByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountProvider.GetAccountsInTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	schema := toTeamSchema(team)
	members := make([]api.TeamMember, 0, len(accounts))
	for _, a := range accounts {
		members = append(members, api.TeamMember{
			AccountID: a.ID,
			Name:      a.Name,
			Email:     a.Email,
		})
	}
	schema.Members = members

	return schema, nil
}

// GetAccessToken finds the team's token for the named provider. A missing
// token is an expected outcome and surfaces as repo.ErrNotFound, never as a
// system error.
func (s *TeamService) GetAccessToken(ctx context.Context, teamID string, provider string) (*api.AccessTokenSchema, error) {
	token, err := s.tokenProvider.GetByTeamAndProvider(ctx, teamID, provider)
	if err != nil {
		return nil, err
	}

	return &api.AccessTokenSchema{
		TeamID:    token.TeamID,
		Provider:  token.Provider,
		Token:     token.Token,
		CreatedAt: token.CreatedAt,
	}, nil
}

func toTeamSchema(team *models.Team) *api.TeamSchema {
	return &api.TeamSchema{
		TeamID:      team.ID,
		Domain:      team.Domain,
		Name:        team.Name,
		SlackTeamID: team.SlackTeamID,
		Images:      team.Images,
	}
}
