package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID  `db:"id"`
	Title     string     `db:"title"`
	Text      string     `db:"text"`
	AuthorID  uuid.UUID  `db:"author_id"`
	TeamID    uuid.UUID  `db:"team_id"`
	CreatedAt *time.Time `db:"created_at"`
}
