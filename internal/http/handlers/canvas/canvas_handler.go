package canvas

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kategengler/api-v2/internal/http/api"
	"github.com/kategengler/api-v2/internal/lib/sl"
	repo "github.com/kategengler/api-v2/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type canvasService interface {
	Create(ctx context.Context, teamID string, title string) (*api.CanvasSchema, error)
	Get(ctx context.Context, canvasID string) (*api.CanvasSchema, error)
	ListForTeam(ctx context.Context, teamID string) ([]api.CanvasSchema, error)
}

type CanvasHandler struct {
	log     *slog.Logger
	service canvasService
}

func NewCanvasHandler(log *slog.Logger, s canvasService) *CanvasHandler {
	return &CanvasHandler{
		log:     log,
		service: s,
	}
}

type CreateCanvasRequest struct {
	TeamID string `json:"team_id" validate:"required"`
	Title  string `json:"title" validate:"required,max=120"`
}

func (h *CanvasHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.canvas.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateCanvasRequest

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

	resp, err := h.service.Create(ctx, input.TeamID, input.Title)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team not found", sl.Err(err))

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while creating canvas", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("canvas created", slog.String("canvas_id", resp.CanvasID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CanvasResponse{Canvas: *resp})
}

func (h *CanvasHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.canvas.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	canvasID := r.URL.Query().Get("canvas_id")
	if canvasID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "canvas_id is required"))
		return
	}

	resp, err := h.service.Get(ctx, canvasID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("canvas not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving canvas", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.CanvasResponse{Canvas: *resp})
}

func (h *CanvasHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.canvas.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "team_id is required"))
		return
	}

	resp, err := h.service.ListForTeam(ctx, teamID)
	if err != nil {
		log.Error("error while listing canvases", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.CanvasListResponse{Canvases: resp})
}
