package user

import (
	"context"
	"log/slog"
	"net/http"

	"fitter/internal/http/api"
	"fitter/internal/http/handlers"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type userService interface {
	Create(ctx context.Context, in api.UserInput) (*api.UserSchema, error)
	Get(ctx context.Context, userID uuid.UUID) (*api.UserSchema, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	GetTeams(ctx context.Context, userID uuid.UUID) ([]api.TeamSchema, error)
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

func (h *UserHandler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Create")

	var input api.UserInput
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user created", slog.String("user_id", resp.ID.String()))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Get")

	userID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Delete")

	userID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user deleted", slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.GetTeams")

	userID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	teams, err := h.service.GetTeams(r.Context(), userID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.TeamsResponse{Teams: teams})
}
