package post

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

type postService interface {
	Create(ctx context.Context, in api.PostInput) (*api.PostSchema, error)
	Get(ctx context.Context, postID uuid.UUID) (*api.PostSchema, error)
	Delete(ctx context.Context, postID uuid.UUID) error
	AddAttachment(ctx context.Context, postID uuid.UUID, in api.AttachmentInput) (*api.AttachmentSchema, error)
	GetAttachment(ctx context.Context, attachmentID uuid.UUID) (*api.AttachmentSchema, error)
	GetAttachments(ctx context.Context, postID uuid.UUID) ([]api.AttachmentSchema, error)
	DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error
}

type PostHandler struct {
	log     *slog.Logger
	service postService
}

func NewPostHandler(log *slog.Logger, s postService) *PostHandler {
	return &PostHandler{
		log:     log,
		service: s,
	}
}

func (h *PostHandler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.Create")

	var input api.PostInput
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("post created", slog.String("post_id", resp.ID.String()))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.PostResponse{Post: *resp})
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.Get")

	postID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), postID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.PostResponse{Post: *resp})
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.Delete")

	postID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), postID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("post deleted", slog.String("post_id", postID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.AddAttachment")

	postID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	var input api.AttachmentInput
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.AddAttachment(r.Context(), postID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("attachment added",
		slog.String("post_id", postID.String()),
		slog.String("attachment_id", resp.ID.String()),
		slog.Int("file_size", resp.FileSize),
	)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.AttachmentResponse{Attachment: *resp})
}

func (h *PostHandler) GetAttachments(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.GetAttachments")

	postID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	attachments, err := h.service.GetAttachments(r.Context(), postID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.AttachmentsResponse{Attachments: attachments})
}

func (h *PostHandler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.GetAttachment")

	attachmentID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetAttachment(r.Context(), attachmentID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.AttachmentResponse{Attachment: *resp})
}

func (h *PostHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.post.DeleteAttachment")

	attachmentID, ok := handlers.URLParamID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAttachment(r.Context(), attachmentID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("attachment deleted", slog.String("attachment_id", attachmentID.String()))
	w.WriteHeader(http.StatusNoContent)
}
