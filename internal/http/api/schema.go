package api

import (
	"time"

	"github.com/google/uuid"
)

type UserSchema struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Nickname  string     `json:"nickname"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type TeamSchema struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AdminID     uuid.UUID  `json:"admin_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type TeamDetail struct {
	TeamSchema
	Members []UserSchema `json:"members"`
}

type PostSchema struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Text        string             `json:"text"`
	TeamID      uuid.UUID          `json:"team_id"`
	Author      UserSchema         `json:"author"`
	Tags        []UserSchema       `json:"tags"`
	Attachments []AttachmentSchema `json:"attachments"`
	CreatedAt   *time.Time         `json:"created_at,omitempty"`
}

// PostShort is a list item, it carries no tags or attachments.
type PostShort struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	AuthorID  uuid.UUID  `json:"author_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type CommentSchema struct {
	ID        uuid.UUID   `json:"id"`
	Text      string      `json:"text"`
	AuthorID  uuid.UUID   `json:"author_id"`
	PostID    uuid.UUID   `json:"post_id"`
	Tags      []uuid.UUID `json:"tags"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}

type AttachmentSchema struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	FileSize int       `json:"file_size"`
	FileType string    `json:"file_type"`
	PostID   uuid.UUID `json:"post_id"`
	// File is base64 in JSON and only set when a single attachment is fetched.
	File []byte `json:"file,omitempty"`
}

type AttachmentInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	File     []byte `json:"file" validate:"required,min=1"`
	FileType string `json:"file_type,omitempty" validate:"omitempty,oneof=other picture video audio document"`
}

type UserInput struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Nickname string `json:"nickname" validate:"max=64"`
}

type TeamInput struct {
	Name        string    `json:"name" validate:"required,max=64"`
	Description string    `json:"description" validate:"max=1024"`
	AdminID     uuid.UUID `json:"admin_id" validate:"required"`
}

type MemberInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type PostInput struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Text        string            `json:"text" validate:"max=10000"`
	AuthorID    uuid.UUID         `json:"author_id" validate:"required"`
	TeamID      uuid.UUID         `json:"team_id" validate:"required"`
	Tags        []uuid.UUID       `json:"tags"`
	Attachments []AttachmentInput `json:"attachments" validate:"dive"`
}

type CommentInput struct {
	Text     string      `json:"text" validate:"required,max=2000"`
	AuthorID uuid.UUID   `json:"author_id" validate:"required"`
	PostID   uuid.UUID   `json:"post_id" validate:"required"`
	Tags     []uuid.UUID `json:"tags"`
}
