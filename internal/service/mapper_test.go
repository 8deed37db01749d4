package service_test

import (
	"testing"

	"fitter/internal/models"
	"fitter/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUniqueIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, []uuid.UUID{a, b}, service.UniqueIDs([]uuid.UUID{a, b, a, b, a}))
	assert.Empty(t, service.UniqueIDs(nil))
}

func TestCommentSchema_NilTags(t *testing.T) {
	s := service.CommentSchema(&models.Comment{ID: uuid.New()}, nil)

	assert.NotNil(t, s.Tags)
	assert.Empty(t, s.Tags)
}

func TestAttachmentSchema_WithFile(t *testing.T) {
	a := &models.Attachment{
		ID:       uuid.New(),
		Name:     "report",
		File:     []byte("hello"),
		FileSize: 5,
		FileType: models.FileTypeDocument,
	}

	assert.Nil(t, service.AttachmentSchema(a, false).File)
	assert.Equal(t, []byte("hello"), service.AttachmentSchema(a, true).File)
	assert.Equal(t, "document", service.AttachmentSchema(a, true).FileType)
}
