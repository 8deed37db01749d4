package comment

import (
	"context"

	"fitter/internal/http/api"
	"fitter/internal/models"
	"fitter/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CommentStorage
type CommentStorage interface {
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID uuid.UUID) error
	GetCommentsForPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error)
	SearchInComments(ctx context.Context, substring string, postID uuid.UUID) ([]uuid.UUID, error)
	AddTag(ctx context.Context, commentID, userID uuid.UUID) error
	GetTags(ctx context.Context, commentID uuid.UUID) ([]uuid.UUID, error)
}

type CommentService struct {
	trm      service.TransactionManager
	comments CommentStorage
}

func NewCommentService(trm service.TransactionManager, comments CommentStorage) *CommentService {
	return &CommentService{
		trm:      trm,
		comments: comments,
	}
}

func (s *CommentService) Create(ctx context.Context, in api.CommentInput) (*api.CommentSchema, error) {
	comment := &models.Comment{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		PostID:   in.PostID,
	}
	tags := service.UniqueIDs(in.Tags)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.comments.Create(ctx, comment); err != nil {
			return err
		}

		for _, userID := range tags {
			if err := s.comments.AddTag(ctx, comment.ID, userID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := service.CommentSchema(comment, tags)
	return &resp, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID uuid.UUID) error {
	return s.comments.Delete(ctx, commentID)
}

// GetForPost returns an empty list for a post that does not exist.
func (s *CommentService) GetForPost(ctx context.Context, postID uuid.UUID) ([]api.CommentSchema, error) {
	comments, err := s.comments.GetCommentsForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.CommentSchema, 0, len(comments))
	for _, c := range comments {
		tags, err := s.comments.GetTags(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		resp = append(resp, service.CommentSchema(c, tags))
	}

	return resp, nil
}

func (s *CommentService) Search(ctx context.Context, postID uuid.UUID, substring string) ([]uuid.UUID, error) {
	return s.comments.SearchInComments(ctx, substring, postID)
}
