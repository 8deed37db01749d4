package service

import (
	"fitter/internal/http/api"
	"fitter/internal/models"

	"github.com/google/uuid"
)

func UserSchema(u *models.User) api.UserSchema {
	return api.UserSchema{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Nickname:  u.Nickname,
		CreatedAt: u.CreatedAt,
	}
}

func UserSchemas(users []*models.User) []api.UserSchema {
	out := make([]api.UserSchema, 0, len(users))
	for _, u := range users {
		out = append(out, UserSchema(u))
	}
	return out
}

func TeamSchema(t *models.Team) api.TeamSchema {
	return api.TeamSchema{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		AdminID:     t.AdminID,
		CreatedAt:   t.CreatedAt,
	}
}

func TeamSchemas(teams []*models.Team) []api.TeamSchema {
	out := make([]api.TeamSchema, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamSchema(t))
	}
	return out
}

func PostShort(p *models.Post) api.PostShort {
	return api.PostShort{
		ID:        p.ID,
		Title:     p.Title,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
	}
}

func CommentSchema(c *models.Comment, tags []uuid.UUID) api.CommentSchema {
	if tags == nil {
		tags = []uuid.UUID{}
	}
	return api.CommentSchema{
		ID:        c.ID,
		Text:      c.Text,
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		Tags:      tags,
		CreatedAt: c.CreatedAt,
	}
}

// AttachmentSchema copies the file content only when withFile is set.
func AttachmentSchema(a *models.Attachment, withFile bool) api.AttachmentSchema {
	s := api.AttachmentSchema{
		ID:       a.ID,
		Name:     a.Name,
		FileSize: a.FileSize,
		FileType: a.FileType.String(),
		PostID:   a.PostID,
	}
	if withFile {
		s.File = a.File
	}
	return s
}

// UniqueIDs drops duplicates and keeps the first-seen order.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
