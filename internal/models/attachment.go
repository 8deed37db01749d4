package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FileType int16

const (
	FileTypeOther FileType = iota
	FileTypePicture
	FileTypeVideo
	FileTypeAudio
	FileTypeDocument
)

var fileTypeNames = map[FileType]string{
	FileTypeOther:    "other",
	FileTypePicture:  "picture",
	FileTypeVideo:    "video",
	FileTypeAudio:    "audio",
	FileTypeDocument: "document",
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return fileTypeNames[FileTypeOther]
}

// ParseFileType returns false for names it does not know.
func ParseFileType(name string) (FileType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range fileTypeNames {
		if n == name {
			return t, true
		}
	}
	return FileTypeOther, false
}

type Attachment struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	File      []byte     `db:"file"`
	FileSize  int        `db:"file_size"`
	FileType  FileType   `db:"file_type"`
	PostID    uuid.UUID  `db:"post_id"`
	CreatedAt *time.Time `db:"created_at"`
}
