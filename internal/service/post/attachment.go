package post

import (
	"strings"

	"fitter/internal/http/api"
	"fitter/internal/models"

	"github.com/gabriel-vasile/mimetype"
)

var documentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/rtf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.oasis.opendocument.text",
	"application/vnd.oasis.opendocument.spreadsheet",
	"application/vnd.ms-excel",
	"text/plain",
}

func newAttachment(in api.AttachmentInput) (*models.Attachment, error) {
	fileType := DetectFileType(in.File)
	if in.FileType != "" {
		t, ok := models.ParseFileType(in.FileType)
		if !ok {
			return nil, ErrInvalidFileType
		}
		fileType = t
	}

	return &models.Attachment{
		Name:     in.Name,
		File:     in.File,
		FileSize: len(in.File),
		FileType: fileType,
	}, nil
}

// DetectFileType sniffs the content, the file name is not consulted.
func DetectFileType(file []byte) models.FileType {
	mtype := mimetype.Detect(file)

	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		return models.FileTypePicture
	case strings.HasPrefix(mtype.String(), "video/"):
		return models.FileTypeVideo
	case strings.HasPrefix(mtype.String(), "audio/"):
		return models.FileTypeAudio
	}

	for m := mtype; m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), documentTypes...) {
			return models.FileTypeDocument
		}
	}

	return models.FileTypeOther
}
