package team_test

import (
	"context"
	"testing"

	"github.com/kategengler/api-v2/internal/changeset"
	"github.com/kategengler/api-v2/internal/http/api"
	"github.com/kategengler/api-v2/internal/models"
	repo "github.com/kategengler/api-v2/internal/repository"
	"github.com/kategengler/api-v2/internal/service/mocks"
	"github.com/kategengler/api-v2/internal/service/team"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func slackRequest() api.CreateSlackTeamRequest {
	return api.CreateSlackTeamRequest{
		Domain:      "acme",
		Name:        "Acme",
		SlackTeamID: "T12345",
		Icon: map[string]string{
			"image_34":      "https://a.example.com/icon/34.png",
			"image_default": "true",
		},
		AccessToken: "xoxp-secret",
		Creator: api.AccountPayload{
			AccountID: "U100",
			Name:      "Kate",
			Email:     "kate@example.com",
		},
	}
}

func TestTeamService_CreateFromSlack_Success(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockAccountProvider := mocks.NewAccountProvider(t)
	mockTokenProvider := mocks.NewTokenProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	req := slackRequest()

	mockTeamProvider.On("Create", ctx, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.ID != "" &&
			tm.Domain != nil && *tm.Domain == "acme" &&
			tm.Name == "Acme" &&
			tm.SlackTeamID != nil && *tm.SlackTeamID == "T12345" &&
			len(tm.Images) == 1 && tm.Images["image_34"] == "https://a.example.com/icon/34.png"
	})).Return(func(_ context.Context, tm *models.Team) (*models.Team, error) {
		return tm, nil
	})

	mockAccountProvider.On("Save", ctx, mock.MatchedBy(func(a *models.Account) bool {
		return a.ID == "U100" && a.Name == "Kate" && a.Email == "kate@example.com"
	})).Return("U100", nil)

	mockAccountProvider.On("AddToTeam", ctx, mock.AnythingOfType("string"), "U100").Return(nil)

	mockTokenProvider.On("Save", ctx, mock.MatchedBy(func(tok *models.AccessToken) bool {
		return tok.Provider == "slack" && tok.Token == "xoxp-secret" && tok.AccountID == "U100"
	})).Return("tok-1", nil)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := team.NewTeamService(mockTRM, mockTeamProvider, mockAccountProvider, mockTokenProvider)

	resp, err := service.CreateFromSlack(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Equal(t, "acme", *resp.Domain)
	assert.Equal(t, "T12345", *resp.SlackTeamID)
	assert.Equal(t, map[string]string{"image_34": "https://a.example.com/icon/34.png"}, resp.Images)
	assert.Len(t, resp.Members, 1)
	assert.Equal(t, "U100", resp.Members[0].AccountID)
}

func TestTeamService_CreateFromSlack_MissingFields(t *testing.T) {
	ctx := context.Background()

	service := team.NewTeamService(nil, nil, nil, nil)

	req := slackRequest()
	req.Domain = ""
	req.SlackTeamID = ""

	resp, err := service.CreateFromSlack(ctx, req)

	assert.Nil(t, resp)
	errs, ok := changeset.As(err)
	assert.True(t, ok)
	assert.Len(t, errs, 2)
	assert.True(t, errs.Has("domain"))
	assert.True(t, errs.Has("slack_team_id"))
	assert.False(t, errs.Has("name"))
}

func TestTeamService_CreateFromSlack_AllFieldsMissing(t *testing.T) {
	ctx := context.Background()

	service := team.NewTeamService(nil, nil, nil, nil)

	resp, err := service.CreateFromSlack(ctx, api.CreateSlackTeamRequest{})

	assert.Nil(t, resp)
	errs, ok := changeset.As(err)
	assert.True(t, ok)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, changeset.FieldError{Field: "domain", Message: "can't be blank"})
	assert.Contains(t, errs, changeset.FieldError{Field: "name", Message: "can't be blank"})
	assert.Contains(t, errs, changeset.FieldError{Field: "slack_team_id", Message: "can't be blank"})
}

func TestTeamService_CreateFromSlack_DomainTaken(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	req := slackRequest()

	mockTeamProvider.On("Create", ctx, mock.Anything).Return(nil, repo.ErrDomainTaken)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrDomainTaken)
		}).
		Return(repo.ErrDomainTaken).Once()

	service := team.NewTeamService(mockTRM, mockTeamProvider, nil, nil)

	resp, err := service.CreateFromSlack(ctx, req)

	assert.Nil(t, resp)
	errs, ok := changeset.As(err)
	assert.True(t, ok)
	assert.Contains(t, errs, changeset.FieldError{Field: "domain", Message: "has already been taken"})
}

func TestTeamService_CreateFromSlack_NoToken(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockAccountProvider := mocks.NewAccountProvider(t)
	mockTokenProvider := mocks.NewTokenProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	req := slackRequest()
	req.AccessToken = ""

	mockTeamProvider.On("Create", ctx, mock.Anything).
		Return(func(_ context.Context, tm *models.Team) (*models.Team, error) { return tm, nil })
	mockAccountProvider.On("Save", ctx, mock.Anything).Return("U100", nil)
	mockAccountProvider.On("AddToTeam", ctx, mock.Anything, "U100").Return(nil)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := team.NewTeamService(mockTRM, mockTeamProvider, mockAccountProvider, mockTokenProvider)

	_, err := service.CreateFromSlack(ctx, req)

	assert.NoError(t, err)
	mockTokenProvider.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTeamService_CreatePersonal_ForcesNotesName(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	mockTeamProvider.On("Create", ctx, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.Name == "Notes" && tm.Domain == nil && tm.SlackTeamID == nil && len(tm.Images) == 0
	})).Return(func(_ context.Context, tm *models.Team) (*models.Team, error) {
		return tm, nil
	})

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.CreatePersonal(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Notes", resp.Name)
	assert.Nil(t, resp.Domain)
	assert.Nil(t, resp.SlackTeamID)
}

func TestTeamService_UpdateDomain_SlackBoundRejected(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	existing := &models.Team{
		ID:          "team-1",
		Domain:      strPtr("acme"),
		Name:        "Acme",
		SlackTeamID: strPtr("T12345"),
	}
	mockTeamProvider.On("GetByID", ctx, "team-1").Return(existing, nil)

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.UpdateDomain(ctx, "team-1", api.UpdateDomainRequest{Domain: strPtr("newdomain")})

	assert.Nil(t, resp)
	errs, ok := changeset.As(err)
	assert.True(t, ok)
	assert.Contains(t, errs, changeset.FieldError{
		Field:   "domain",
		Message: "can not be changed for Slack teams",
	})
	mockTeamProvider.AssertNotCalled(t, "UpdateDomain", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_UpdateDomain_Normalizes(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)

	existing := &models.Team{ID: "team-1", Name: "Notes"}
	mockTeamProvider.On("GetByID", ctx, "team-1").Return(existing, nil)
	mockTeamProvider.On("UpdateDomain", ctx, "team-1", "~myteam").
		Return(&models.Team{ID: "team-1", Name: "Notes", Domain: strPtr("~myteam")}, nil)

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.UpdateDomain(ctx, "team-1", api.UpdateDomainRequest{Domain: strPtr("MyTeam")})

	assert.NoError(t, err)
	assert.Equal(t, "~myteam", *resp.Domain)
}

func TestTeamService_UpdateDomain_FormatViolations(t *testing.T) {
	ctx := context.Background()

	for _, domain := range []string{"a", "-abc", "abc-", "has spaces", "under_score", "waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaytoolong"} {
		t.Run(domain, func(t *testing.T) {
			mockTeamProvider := mocks.NewTeamProvider(t)
			mockTeamProvider.On("GetByID", ctx, "team-1").Return(&models.Team{ID: "team-1"}, nil)

			service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

			resp, err := service.UpdateDomain(ctx, "team-1", api.UpdateDomainRequest{Domain: &domain})

			assert.Nil(t, resp)
			errs, ok := changeset.As(err)
			assert.True(t, ok)
			assert.Contains(t, errs, changeset.FieldError{
				Field:   "domain",
				Message: "must be between 2 and 36 characters, contain only letters, numbers, and dashes, and be bounded by a letter or number",
			})
		})
	}
}

func TestTeamService_UpdateDomain_AcceptsDashes(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockTeamProvider.On("GetByID", ctx, "team-1").Return(&models.Team{ID: "team-1"}, nil)
	mockTeamProvider.On("UpdateDomain", ctx, "team-1", "~abc-123").
		Return(&models.Team{ID: "team-1", Domain: strPtr("~abc-123")}, nil)

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.UpdateDomain(ctx, "team-1", api.UpdateDomainRequest{Domain: strPtr("abc-123")})

	assert.NoError(t, err)
	assert.Equal(t, "~abc-123", *resp.Domain)
}

func TestTeamService_UpdateDomain_MissingDomain(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockTeamProvider.On("GetByID", ctx, "team-1").Return(&models.Team{ID: "team-1"}, nil)

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.UpdateDomain(ctx, "team-1", api.UpdateDomainRequest{})

	assert.Nil(t, resp)
	errs, ok := changeset.As(err)
	assert.True(t, ok)
	assert.Contains(t, errs, changeset.FieldError{Field: "domain", Message: "can't be blank"})
}

func TestTeamService_UpdateDomain_Taken(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockTeamProvider.On("GetByID", ctx, "team-1").Return(&models.Team{ID: "team-1"}, nil)
	mockTeamProvider.On("UpdateDomain", ctx, "team-1", "~myteam").Return(nil, repo.ErrDomainTaken)

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.UpdateDomain(ctx, "team-1", api.UpdateDomainRequest{Domain: strPtr("myteam")})

	assert.Nil(t, resp)
	errs, ok := changeset.As(err)
	assert.True(t, ok)
	assert.Contains(t, errs, changeset.FieldError{Field: "domain", Message: "has already been taken"})
}

func TestTeamService_UpdateDomain_TeamNotFound(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockTeamProvider.On("GetByID", ctx, "ghost").Return(nil, repo.ErrNotFound)

	service := team.NewTeamService(nil, mockTeamProvider, nil, nil)

	resp, err := service.UpdateDomain(ctx, "ghost", api.UpdateDomainRequest{Domain: strPtr("myteam")})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTeamService_GetAccessToken_Found(t *testing.T) {
	ctx := context.Background()

	mockTokenProvider := mocks.NewTokenProvider(t)
	mockTokenProvider.On("GetByTeamAndProvider", ctx, "team-1", "slack").
		Return(&models.AccessToken{
			ID:       "tok-1",
			TeamID:   "team-1",
			Provider: "slack",
			Token:    "xoxp-secret",
		}, nil)

	service := team.NewTeamService(nil, nil, nil, mockTokenProvider)

	resp, err := service.GetAccessToken(ctx, "team-1", "slack")

	assert.NoError(t, err)
	assert.Equal(t, "slack", resp.Provider)
	assert.Equal(t, "xoxp-secret", resp.Token)
}

func TestTeamService_GetAccessToken_NotFound(t *testing.T) {
	ctx := context.Background()

	mockTokenProvider := mocks.NewTokenProvider(t)
	mockTokenProvider.On("GetByTeamAndProvider", ctx, "team-1", "github").
		Return(nil, repo.ErrNotFound)

	service := team.NewTeamService(nil, nil, nil, mockTokenProvider)

	resp, err := service.GetAccessToken(ctx, "team-1", "github")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTeamService_GetByDomain(t *testing.T) {
	ctx := context.Background()

	mockTeamProvider := mocks.NewTeamProvider(t)
	mockAccountProvider := mocks.NewAccountProvider(t)

	tm := &models.Team{ID: "team-1", Domain: strPtr("~myteam"), Name: "Notes"}
	mockTeamProvider.On("GetByDomain", ctx, "~myteam").Return(tm, nil)
	mockAccountProvider.On("GetAccountsInTeam", ctx, "team-1").Return([]*models.Account{
		{ID: "U100", Name: "Kate", Email: "kate@example.com"},
	}, nil)

	service := team.NewTeamService(nil, mockTeamProvider, mockAccountProvider, nil)

	resp, err := service.GetByDomain(ctx, "~myteam")

	assert.NoError(t, err)
	assert.Equal(t, "team-1", resp.TeamID)
	assert.Len(t, resp.Members, 1)
	assert.Equal(t, "Kate", resp.Members[0].Name)
}
