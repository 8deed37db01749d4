package post_test

import (
	"context"
	"errors"
	"testing"

	"fitter/internal/http/api"
	"fitter/internal/models"
	repo "fitter/internal/repository"
	"fitter/internal/service/mocks"
	"fitter/internal/service/post"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type deps struct {
	trm         *mocks.MockManager
	posts       *mocks.PostStorage
	attachments *mocks.AttachmentStorage
	comments    *mocks.CommentRemover
	authors     *mocks.AuthorProvider
}

func newDeps(t *testing.T) deps {
	trm := mocks.NewMockManager(t)

	return deps{
		trm:         trm,
		posts:       mocks.NewPostStorage(t),
		attachments: mocks.NewAttachmentStorage(t),
		comments:    mocks.NewCommentRemover(t),
		authors:     mocks.NewAuthorProvider(t),
	}
}

func (d deps) service() *post.PostService {
	return post.NewPostService(d.trm, d.posts, d.attachments, d.comments, d.authors)
}

func (d deps) runTx(t *testing.T, ctx context.Context, returnErr error) {
	d.trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
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
}

func TestPostService_Create_Success(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	postID := uuid.New()
	authorID := uuid.New()
	teamID := uuid.New()
	taggedID := uuid.New()

	in := api.PostInput{
		Title:    "Vysocina",
		Text:     "Pekna praca!",
		AuthorID: authorID,
		TeamID:   teamID,
		Tags:     []uuid.UUID{taggedID, taggedID},
		Attachments: []api.AttachmentInput{
			{Name: "Kuraptomuj", File: pngHeader},
		},
	}

	d.runTx(t, ctx, nil)
	d.posts.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool {
		return p.Title == "Vysocina" && p.AuthorID == authorID && p.TeamID == teamID
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Post).ID = postID
		}).
		Return(nil).
		Once()
	d.posts.On("AddTag", ctx, postID, taggedID).Return(nil).Once()

	var stored *models.Attachment
	d.attachments.On("Create", ctx, mock.AnythingOfType("*models.Attachment")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Attachment)
			stored.ID = uuid.New()
		}).
		Return(nil).
		Once()

	d.authors.On("GetById", ctx, authorID).Return(&models.User{ID: authorID, Name: "Albert"}, nil).Once()
	d.posts.On("GetTags", ctx, postID).Return([]*models.User{{ID: taggedID, Name: "Daniel"}}, nil).Once()
	d.attachments.On("GetAttachmentsForPost", ctx, postID).
		Return(func(context.Context, uuid.UUID) []*models.Attachment {
			return []*models.Attachment{stored}
		}, nil).
		Once()

	resp, err := d.service().Create(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, postID, resp.ID)
	assert.Equal(t, "Albert", resp.Author.Name)
	require.Len(t, resp.Tags, 1)
	assert.Equal(t, taggedID, resp.Tags[0].ID)
	require.Len(t, resp.Attachments, 1)
	assert.Equal(t, "picture", resp.Attachments[0].FileType)
	assert.Equal(t, len(pngHeader), resp.Attachments[0].FileSize)
	assert.Nil(t, resp.Attachments[0].File)

	require.NotNil(t, stored)
	assert.Equal(t, postID, stored.PostID)
	assert.Equal(t, models.FileTypePicture, stored.FileType)
}

func TestPostService_Create_UnknownTeam(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	d.runTx(t, ctx, repo.ErrInvalidReference)
	d.posts.On("Create", ctx, mock.Anything).Return(repo.ErrInvalidReference).Once()

	resp, err := d.service().Create(ctx, api.PostInput{Title: "t", AuthorID: uuid.New(), TeamID: uuid.New()})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrInvalidReference)
}

func TestPostService_Create_InvalidFileType(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	resp, err := d.service().Create(ctx, api.PostInput{
		Title:       "t",
		AuthorID:    uuid.New(),
		TeamID:      uuid.New(),
		Attachments: []api.AttachmentInput{{Name: "x", File: []byte("x"), FileType: "hologram"}},
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, post.ErrInvalidFileType)
}

func TestPostService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	postID := uuid.New()

	d.posts.On("GetById", ctx, postID).Return((*models.Post)(nil), repo.ErrNotFound).Once()

	resp, err := d.service().Get(ctx, postID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestPostService_Get_EmptyRelations(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	postID, authorID := uuid.New(), uuid.New()

	d.posts.On("GetById", ctx, postID).Return(&models.Post{ID: postID, AuthorID: authorID, Title: "PDF"}, nil).Once()
	d.authors.On("GetById", ctx, authorID).Return(&models.User{ID: authorID}, nil).Once()
	d.posts.On("GetTags", ctx, postID).Return([]*models.User{}, nil).Once()
	d.attachments.On("GetAttachmentsForPost", ctx, postID).Return([]*models.Attachment{}, nil).Once()

	resp, err := d.service().Get(ctx, postID)

	require.NoError(t, err)
	assert.NotNil(t, resp.Tags)
	assert.NotNil(t, resp.Attachments)
	assert.Empty(t, resp.Tags)
	assert.Empty(t, resp.Attachments)
}

func TestPostService_Delete_RemovesDependentsFirst(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	postID := uuid.New()

	var order []string

	d.runTx(t, ctx, nil)
	d.attachments.On("DeleteForPost", ctx, postID).
		Run(func(mock.Arguments) { order = append(order, "attachments") }).
		Return(int64(1), nil).
		Once()
	d.comments.On("DeleteForPost", ctx, postID).
		Run(func(mock.Arguments) { order = append(order, "comments") }).
		Return(int64(2), nil).
		Once()
	d.posts.On("Delete", ctx, postID).
		Run(func(mock.Arguments) { order = append(order, "post") }).
		Return(nil).
		Once()

	err := d.service().Delete(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, []string{"attachments", "comments", "post"}, order)
}

func TestPostService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	postID := uuid.New()

	d.runTx(t, ctx, repo.ErrNotFound)
	d.attachments.On("DeleteForPost", ctx, postID).Return(int64(0), nil).Once()
	d.comments.On("DeleteForPost", ctx, postID).Return(int64(0), nil).Once()
	d.posts.On("Delete", ctx, postID).Return(repo.ErrNotFound).Once()

	assert.ErrorIs(t, d.service().Delete(ctx, postID), repo.ErrNotFound)
}

func TestPostService_Delete_CommentsError(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	postID := uuid.New()
	dbErr := errors.New("deadlock detected")

	d.runTx(t, ctx, dbErr)
	d.attachments.On("DeleteForPost", ctx, postID).Return(int64(0), nil).Once()
	d.comments.On("DeleteForPost", ctx, postID).Return(int64(0), dbErr).Once()

	assert.ErrorIs(t, d.service().Delete(ctx, postID), dbErr)
	d.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostService_AddAttachment_ExplicitType(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	postID := uuid.New()

	d.attachments.On("Create", ctx, mock.MatchedBy(func(a *models.Attachment) bool {
		return a.PostID == postID && a.FileType == models.FileTypeDocument && a.FileSize == 3
	})).Return(nil).Once()

	resp, err := d.service().AddAttachment(ctx, postID, api.AttachmentInput{
		Name:     "notes",
		File:     []byte("abc"),
		FileType: "document",
	})

	require.NoError(t, err)
	assert.Equal(t, "document", resp.FileType)
	assert.Equal(t, postID, resp.PostID)
}

func TestPostService_GetAttachment_IncludesFile(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	attachmentID := uuid.New()

	d.attachments.On("GetById", ctx, attachmentID).Return(&models.Attachment{
		ID:       attachmentID,
		Name:     "Obrazok Brna",
		File:     pngHeader,
		FileSize: len(pngHeader),
		FileType: models.FileTypePicture,
	}, nil).Once()

	resp, err := d.service().GetAttachment(ctx, attachmentID)

	require.NoError(t, err)
	assert.Equal(t, pngHeader, resp.File)
	assert.Equal(t, "picture", resp.FileType)
}

func TestPostService_GetAttachments_UnknownPost(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	postID := uuid.New()

	d.posts.On("GetById", ctx, postID).Return((*models.Post)(nil), repo.ErrNotFound).Once()

	resp, err := d.service().GetAttachments(ctx, postID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
