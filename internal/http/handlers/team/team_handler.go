package team

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kategengler/api-v2/internal/changeset"
	"github.com/kategengler/api-v2/internal/http/api"
	"github.com/kategengler/api-v2/internal/lib/sl"
	repo "github.com/kategengler/api-v2/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type teamService interface {
	CreateFromSlack(ctx context.Context, req api.CreateSlackTeamRequest) (*api.TeamSchema, error)
	CreatePersonal(ctx context.Context) (*api.TeamSchema, error)
	UpdateDomain(ctx context.Context, teamID string, req api.UpdateDomainRequest) (*api.TeamSchema, error)
	GetByDomain(ctx context.Context, domain string) (*api.TeamSchema, error)
	GetAccessToken(ctx context.Context, teamID string, provider string) (*api.AccessTokenSchema, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

// UpdateDomainRequest is the HTTP shape of a domain change: the target team
// and the single mutable field.
type UpdateDomainRequest struct {
	TeamID string  `json:"team_id" validate:"required"`
	Domain *string `json:"domain"`
}

func (h *TeamHandler) CreateFromSlack(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.CreateFromSlack"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input api.CreateSlackTeamRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.CreateFromSlack(ctx, input)
	if err != nil {
		if errs, ok := changeset.As(err); ok {
			log.Info("team rejected", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.ChangesetError(errs))
			return
		}
		log.Error("error while creating team", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("slack team created", slog.String("team_id", resp.TeamID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) CreatePersonal(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.CreatePersonal"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.CreatePersonal(r.Context())
	if err != nil {
		log.Error("error while creating personal team", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("personal team created", slog.String("team_id", resp.TeamID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.UpdateDomain"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input UpdateDomainRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.UpdateDomain(ctx, input.TeamID, api.UpdateDomainRequest{Domain: input.Domain})
	if err != nil {
		if errs, ok := changeset.As(err); ok {
			log.Info("domain change rejected", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.ChangesetError(errs))
			return
		}
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team not found", sl.Err(err))

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while updating domain", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("domain updated", slog.String("team_id", input.TeamID))
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	domain := r.URL.Query().Get("domain")
	if domain == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "domain is required"))
		return
	}

	resp, err := h.service.GetByDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving team", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}
	log.Info("team retrieved")
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) GetAccessToken(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.GetAccessToken"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	teamID := r.URL.Query().Get("team_id")
	provider := r.URL.Query().Get("provider")
	if teamID == "" || provider == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "team_id and provider are required"))
		return
	}

	resp, err := h.service.GetAccessToken(ctx, teamID, provider)
	if err != nil {
		// A missing token is an expected outcome, not a failure.
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("access token not found",
				slog.String("team_id", teamID),
				slog.String("provider", provider),
			)
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving access token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("access token retrieved", slog.String("provider", provider))
	render.JSON(w, r, api.AccessTokenResponse{AccessToken: *resp})
}
