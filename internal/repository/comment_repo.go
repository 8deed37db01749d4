package repo

import (
	"context"

	"fitter/internal/lib"
	"fitter/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID uuid.UUID) error
	DeleteForPost(ctx context.Context, postID uuid.UUID) (int64, error)
	GetCommentsForPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error)
	SearchInComments(ctx context.Context, substring string, postID uuid.UUID) ([]uuid.UUID, error)

	AddTag(ctx context.Context, commentID, userID uuid.UUID) error
	GetTags(ctx context.Context, commentID uuid.UUID) ([]uuid.UUID, error)
}

type CommentRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewCommentRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *CommentRepo {
	return &CommentRepo{
		db:     db,
		getter: c,
	}
}

func (r *CommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	const op = "comment_repo.Create"

	query := `
		INSERT INTO comments (text, author_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, comment.Text, comment.AuthorID, comment.PostID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *CommentRepo) Delete(ctx context.Context, commentID uuid.UUID) error {
	const op = "comment_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
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

// DeleteForPost returns the number of removed comments.
func (r *CommentRepo) DeleteForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "comment_repo.DeleteForPost"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return rowsAffected, nil
}

func (r *CommentRepo) GetCommentsForPost(ctx context.Context, postID uuid.UUID) ([]*models.Comment, error) {
	const op = "comment_repo.GetCommentsForPost"

	query := `
		SELECT id, text, author_id, post_id, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY seq ASC
	`

	comments := []*models.Comment{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return comments, nil
}

// SearchInComments matches substring case-insensitively, LIKE wildcards in it are taken literally.
func (r *CommentRepo) SearchInComments(ctx context.Context, substring string, postID uuid.UUID) ([]uuid.UUID, error) {
	const op = "comment_repo.SearchInComments"

	query := `
		SELECT id
		FROM comments
		WHERE post_id = $1 AND strpos(lower(text), lower($2)) > 0
		ORDER BY seq ASC
	`

	ids := []uuid.UUID{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &ids, query, postID, substring)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return ids, nil
}

func (r *CommentRepo) AddTag(ctx context.Context, commentID, userID uuid.UUID) error {
	const op = "comment_repo.AddTag"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		`INSERT INTO comment_tags (comment_id, user_id) VALUES ($1, $2)`,
		commentID, userID,
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

func (r *CommentRepo) GetTags(ctx context.Context, commentID uuid.UUID) ([]uuid.UUID, error) {
	const op = "comment_repo.GetTags"

	ids := []uuid.UUID{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(
		ctx, &ids, `SELECT user_id FROM comment_tags WHERE comment_id = $1 ORDER BY seq ASC`, commentID,
	)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return ids, nil
}
