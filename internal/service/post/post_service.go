package post

import (
	"context"
	"errors"

	"fitter/internal/http/api"
	"fitter/internal/models"
	"fitter/internal/service"

	"github.com/google/uuid"
)

var ErrInvalidFileType = errors.New("unknown attachment file type")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PostStorage
type PostStorage interface {
	Create(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID uuid.UUID) error
	GetById(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	AddTag(ctx context.Context, postID, userID uuid.UUID) error
	GetTags(ctx context.Context, postID uuid.UUID) ([]*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AttachmentStorage
type AttachmentStorage interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	Delete(ctx context.Context, attachmentID uuid.UUID) error
	DeleteForPost(ctx context.Context, postID uuid.UUID) (int64, error)
	GetById(ctx context.Context, attachmentID uuid.UUID) (*models.Attachment, error)
	GetAttachmentsForPost(ctx context.Context, postID uuid.UUID) ([]*models.Attachment, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CommentRemover
type CommentRemover interface {
	DeleteForPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AuthorProvider
type AuthorProvider interface {
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type PostService struct {
	trm         service.TransactionManager
	posts       PostStorage
	attachments AttachmentStorage
	comments    CommentRemover
	authors     AuthorProvider
}

func NewPostService(
	trm service.TransactionManager,
	posts PostStorage,
	attachments AttachmentStorage,
	comments CommentRemover,
	authors AuthorProvider,
) *PostService {
	return &PostService{
		trm:         trm,
		posts:       posts,
		attachments: attachments,
		comments:    comments,
		authors:     authors,
	}
}

// Create stores the post together with its tags and attachments.
func (s *PostService) Create(ctx context.Context, in api.PostInput) (*api.PostSchema, error) {
	attachments := make([]*models.Attachment, 0, len(in.Attachments))
	for _, a := range in.Attachments {
		attachment, err := newAttachment(a)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	var resp *api.PostSchema

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		post := &models.Post{
			Title:    in.Title,
			Text:     in.Text,
			AuthorID: in.AuthorID,
			TeamID:   in.TeamID,
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return err
		}

		for _, userID := range service.UniqueIDs(in.Tags) {
			if err := s.posts.AddTag(ctx, post.ID, userID); err != nil {
				return err
			}
		}

		for _, a := range attachments {
			a.PostID = post.ID
			if err := s.attachments.Create(ctx, a); err != nil {
				return err
			}
		}

		var err error
		resp, err = s.assemble(ctx, post)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *PostService) Get(ctx context.Context, postID uuid.UUID) (*api.PostSchema, error) {
	post, err := s.posts.GetById(ctx, postID)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, post)
}

// Delete removes attachments and comments first, the schema restricts deleting a post that still has them.
func (s *PostService) Delete(ctx context.Context, postID uuid.UUID) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.attachments.DeleteForPost(ctx, postID); err != nil {
			return err
		}

		if _, err := s.comments.DeleteForPost(ctx, postID); err != nil {
			return err
		}

		return s.posts.Delete(ctx, postID)
	})
}

func (s *PostService) AddAttachment(ctx context.Context, postID uuid.UUID, in api.AttachmentInput) (*api.AttachmentSchema, error) {
	attachment, err := newAttachment(in)
	if err != nil {
		return nil, err
	}
	attachment.PostID = postID

	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, err
	}

	resp := service.AttachmentSchema(attachment, false)
	return &resp, nil
}

func (s *PostService) GetAttachment(ctx context.Context, attachmentID uuid.UUID) (*api.AttachmentSchema, error) {
	attachment, err := s.attachments.GetById(ctx, attachmentID)
	if err != nil {
		return nil, err
	}

	resp := service.AttachmentSchema(attachment, true)
	return &resp, nil
}

func (s *PostService) GetAttachments(ctx context.Context, postID uuid.UUID) ([]api.AttachmentSchema, error) {
	if _, err := s.posts.GetById(ctx, postID); err != nil {
		return nil, err
	}

	attachments, err := s.attachments.GetAttachmentsForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.AttachmentSchema, 0, len(attachments))
	for _, a := range attachments {
		resp = append(resp, service.AttachmentSchema(a, false))
	}

	return resp, nil
}

func (s *PostService) DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error {
	return s.attachments.Delete(ctx, attachmentID)
}

func (s *PostService) assemble(ctx context.Context, post *models.Post) (*api.PostSchema, error) {
	author, err := s.authors.GetById(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	tags, err := s.posts.GetTags(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	attachments, err := s.attachments.GetAttachmentsForPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	resp := &api.PostSchema{
		ID:          post.ID,
		Title:       post.Title,
		Text:        post.Text,
		TeamID:      post.TeamID,
		Author:      service.UserSchema(author),
		Tags:        service.UserSchemas(tags),
		Attachments: make([]api.AttachmentSchema, 0, len(attachments)),
		CreatedAt:   post.CreatedAt,
	}
	for _, a := range attachments {
		resp.Attachments = append(resp.Attachments, service.AttachmentSchema(a, false))
	}

	return resp, nil
}
