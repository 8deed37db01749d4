package repo

import (
	"context"
	"database/sql"
	"errors"

	"fitter/internal/lib"
	"fitter/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID uuid.UUID) error
	GetById(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	GetPostsForTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Post, error)

	AddTag(ctx context.Context, postID, userID uuid.UUID) error
	GetTags(ctx context.Context, postID uuid.UUID) ([]*models.User, error)
}

type PostRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPostRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PostRepo {
	return &PostRepo{
		db:     db,
		getter: c,
	}
}

func (r *PostRepo) Create(ctx context.Context, post *models.Post) error {
	const op = "post_repo.Create"

	query := `
		INSERT INTO posts (title, text, author_id, team_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, post.Title, post.Text, post.AuthorID, post.TeamID).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return lib.Err(op, err)
	}

	return nil
}

// Delete removes only the post row; comments and attachments restrict it.
func (r *PostRepo) Delete(ctx context.Context, postID uuid.UUID) error {
	const op = "post_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrHasDependents
		}
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostRepo) GetById(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	const op = "post_repo.GetById"

	query := `
		SELECT id, title, text, author_id, team_id, created_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &post, nil
}

func (r *PostRepo) GetPostsForTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Post, error) {
	const op = "post_repo.GetPostsForTeam"

	query := `
		SELECT id, title, text, author_id, team_id, created_at
		FROM posts
		WHERE team_id = $1
		ORDER BY seq ASC
	`

	posts := []*models.Post{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &posts, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return posts, nil
}

func (r *PostRepo) AddTag(ctx context.Context, postID, userID uuid.UUID) error {
	const op = "post_repo.AddTag"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		`INSERT INTO post_tags (post_id, user_id) VALUES ($1, $2)`,
		postID, userID,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrAlreadyTagged
		case isForeignKeyViolation(err):
			return ErrInvalidReference
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *PostRepo) GetTags(ctx context.Context, postID uuid.UUID) ([]*models.User, error) {
	const op = "post_repo.GetTags"

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.nickname, u.created_at
		FROM users u
		JOIN post_tags pt ON pt.user_id = u.id
		WHERE pt.post_id = $1
		ORDER BY pt.seq ASC
	`

	users := []*models.User{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, postID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}
