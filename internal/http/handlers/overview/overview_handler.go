package overview

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
)

type overviewService interface {
	Get(ctx context.Context, teamID string) (*api.OverviewSchema, error)
}

type OverviewHandler struct {
	log     *slog.Logger
	service overviewService
}

func NewOverviewHandler(log *slog.Logger, s overviewService) *OverviewHandler {
	return &OverviewHandler{
		log:     log,
		service: s,
	}
}

func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.overview.Get"
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

	resp, err := h.service.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving overview", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.OverviewResponse{Overview: *resp})
}
