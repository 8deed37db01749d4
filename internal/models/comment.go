package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `db:"id"`
	Text      string     `db:"text"`
	AuthorID  uuid.UUID  `db:"author_id"`
	PostID    uuid.UUID  `db:"post_id"`
	CreatedAt *time.Time `db:"created_at"`
}
