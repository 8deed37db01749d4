package comment_test

import (
	"context"
	"errors"
	"testing"

	"fitter/internal/http/api"
	"fitter/internal/models"
	repo "fitter/internal/repository"
	"fitter/internal/service/comment"
	"fitter/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTRM(t *testing.T, ctx context.Context, returnErr error) *mocks.MockManager {
	mockTRM := mocks.NewMockManager(t)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			if returnErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, returnErr)
			}
		}).
		Return(returnErr).
		Once()

	return mockTRM
}

func TestCommentService_Create_WithTags(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)

	commentID := uuid.New()
	postID := uuid.New()
	authorID := uuid.New()
	taggedID := uuid.New()

	storage.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
		return c.Text == "Pekny obrazok" && c.PostID == postID && c.AuthorID == authorID
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Comment).ID = commentID
		}).
		Return(nil).
		Once()
	storage.On("AddTag", ctx, commentID, taggedID).Return(nil).Once()

	svc := comment.NewCommentService(newTRM(t, ctx, nil), storage)

	resp, err := svc.Create(ctx, api.CommentInput{
		Text:     "Pekny obrazok",
		AuthorID: authorID,
		PostID:   postID,
		Tags:     []uuid.UUID{taggedID, taggedID},
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, resp.ID)
	assert.Equal(t, []uuid.UUID{taggedID}, resp.Tags)
}

func TestCommentService_Create_UnknownPost(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)

	storage.On("Create", ctx, mock.Anything).Return(repo.ErrInvalidReference).Once()

	svc := comment.NewCommentService(newTRM(t, ctx, repo.ErrInvalidReference), storage)

	resp, err := svc.Create(ctx, api.CommentInput{Text: "x", AuthorID: uuid.New(), PostID: uuid.New()})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrInvalidReference)
	storage.AssertNotCalled(t, "AddTag", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentService_Create_NoTags(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)

	storage.On("Create", ctx, mock.Anything).Return(nil).Once()

	svc := comment.NewCommentService(newTRM(t, ctx, nil), storage)

	resp, err := svc.Create(ctx, api.CommentInput{Text: "x", AuthorID: uuid.New(), PostID: uuid.New()})

	require.NoError(t, err)
	assert.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
}

func TestCommentService_GetForPost(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)

	postID := uuid.New()
	first := &models.Comment{ID: uuid.New(), Text: "first", PostID: postID}
	second := &models.Comment{ID: uuid.New(), Text: "second", PostID: postID}
	taggedID := uuid.New()

	storage.On("GetCommentsForPost", ctx, postID).Return([]*models.Comment{first, second}, nil).Once()
	storage.On("GetTags", ctx, first.ID).Return([]uuid.UUID{taggedID}, nil).Once()
	storage.On("GetTags", ctx, second.ID).Return([]uuid.UUID{}, nil).Once()

	svc := comment.NewCommentService(mocks.NewMockManager(t), storage)

	resp, err := svc.GetForPost(ctx, postID)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Text)
	assert.Equal(t, []uuid.UUID{taggedID}, resp[0].Tags)
	assert.Empty(t, resp[1].Tags)
}

func TestCommentService_GetForPost_Empty(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)
	postID := uuid.New()

	storage.On("GetCommentsForPost", ctx, postID).Return([]*models.Comment{}, nil).Once()

	svc := comment.NewCommentService(mocks.NewMockManager(t), storage)

	resp, err := svc.GetForPost(ctx, postID)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestCommentService_GetForPost_TagsError(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)
	postID := uuid.New()
	c := &models.Comment{ID: uuid.New(), PostID: postID}
	dbErr := errors.New("connection reset")

	storage.On("GetCommentsForPost", ctx, postID).Return([]*models.Comment{c}, nil).Once()
	storage.On("GetTags", ctx, c.ID).Return(nil, dbErr).Once()

	svc := comment.NewCommentService(mocks.NewMockManager(t), storage)

	resp, err := svc.GetForPost(ctx, postID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, dbErr)
}

func TestCommentService_Search(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)
	postID := uuid.New()
	match := uuid.New()

	storage.On("SearchInComments", ctx, "brno", postID).Return([]uuid.UUID{match}, nil).Once()

	svc := comment.NewCommentService(mocks.NewMockManager(t), storage)

	ids, err := svc.Search(ctx, postID, "brno")

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{match}, ids)
}

func TestCommentService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewCommentStorage(t)
	commentID := uuid.New()

	storage.On("Delete", ctx, commentID).Return(repo.ErrNotFound).Once()

	svc := comment.NewCommentService(mocks.NewMockManager(t), storage)

	assert.ErrorIs(t, svc.Delete(ctx, commentID), repo.ErrNotFound)
}
