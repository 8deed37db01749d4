package team

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

type teamService interface {
	Create(ctx context.Context, in api.TeamInput) (*api.TeamSchema, error)
	Get(ctx context.Context, teamID uuid.UUID) (*api.TeamDetail, error)
	Delete(ctx context.Context, teamID uuid.UUID) error
	Exists(ctx context.Context, teamName string) (bool, error)
	AddUser(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveUser(ctx context.Context, teamID, userID uuid.UUID) error
	GetMembers(ctx context.Context, teamID uuid.UUID) ([]api.UserSchema, error)
	GetPosts(ctx context.Context, teamID uuid.UUID) ([]api.PostShort, error)
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

func (h *TeamHandler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.Create")

	var input api.TeamInput
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team created successfully", slog.String("team_id", resp.ID.String()))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.Get")

	teamID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.Delete")

	teamID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), teamID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team deleted", slog.String("team_id", teamID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) Exists(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.Exists")

	teamName := r.URL.Query().Get("name")
	if teamName == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "name is required"))
		return
	}

	exists, err := h.service.Exists(r.Context(), teamName)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.ExistsResponse{Name: teamName, Exists: exists})
}

func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.AddMember")

	teamID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	var input api.MemberInput
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	if err := h.service.AddUser(r.Context(), teamID, input.UserID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user added to team",
		slog.String("team_id", teamID.String()),
		slog.String("user_id", input.UserID.String()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.RemoveMember")

	teamID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := handlers.URLParamID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.service.RemoveUser(r.Context(), teamID, userID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user removed from team",
		slog.String("team_id", teamID.String()),
		slog.String("user_id", userID.String()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.GetMembers")

	teamID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.service.GetMembers(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.UsersResponse{Users: members})
}

func (h *TeamHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.team.GetPosts")

	teamID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	posts, err := h.service.GetPosts(r.Context(), teamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.PostsResponse{Posts: posts})
}
