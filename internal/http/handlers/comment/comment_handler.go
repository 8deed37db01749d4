package comment

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

type commentService interface {
	Create(ctx context.Context, in api.CommentInput) (*api.CommentSchema, error)
	Delete(ctx context.Context, commentID uuid.UUID) error
	GetForPost(ctx context.Context, postID uuid.UUID) ([]api.CommentSchema, error)
	Search(ctx context.Context, postID uuid.UUID, substring string) ([]uuid.UUID, error)
}

type CommentHandler struct {
	log     *slog.Logger
	service commentService
}

func NewCommentHandler(log *slog.Logger, s commentService) *CommentHandler {
	return &CommentHandler{
		log:     log,
		service: s,
	}
}

func (h *CommentHandler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.comment.Create")

	var input api.CommentInput
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("comment created", slog.String("comment_id", resp.ID.String()))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CommentResponse{Comment: *resp})
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.comment.Delete")

	commentID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), commentID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("comment deleted", slog.String("comment_id", commentID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) GetForPost(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.comment.GetForPost")

	postID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetForPost(r.Context(), postID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.CommentsResponse{Comments: comments})
}

func (h *CommentHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.comment.Search")

	postID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "q is required"))
		return
	}

	ids, err := h.service.Search(r.Context(), postID, q)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.SearchResponse{PostID: postID, CommentIDs: ids})
}
