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

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	Delete(ctx context.Context, attachmentID uuid.UUID) error
	DeleteForPost(ctx context.Context, postID uuid.UUID) (int64, error)
	GetById(ctx context.Context, attachmentID uuid.UUID) (*models.Attachment, error)
	GetAttachmentsForPost(ctx context.Context, postID uuid.UUID) ([]*models.Attachment, error)
}

type AttachmentRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAttachmentRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AttachmentRepo {
	return &AttachmentRepo{
		db:     db,
		getter: c,
	}
}

func (r *AttachmentRepo) Create(ctx context.Context, attachment *models.Attachment) error {
	const op = "attachment_repo.Create"

	query := `
		INSERT INTO attachments (name, file, file_size, file_type, post_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(
			ctx,
			query,
			attachment.Name,
			attachment.File,
			attachment.FileSize,
			attachment.FileType,
			attachment.PostID,
		).
		Scan(&attachment.ID, &attachment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *AttachmentRepo) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	const op = "attachment_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM attachments WHERE id = $1`, attachmentID)
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

func (r *AttachmentRepo) DeleteForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "attachment_repo.DeleteForPost"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM attachments WHERE post_id = $1`, postID)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return rowsAffected, nil
}

func (r *AttachmentRepo) GetById(ctx context.Context, attachmentID uuid.UUID) (*models.Attachment, error) {
	const op = "attachment_repo.GetById"

	query := `
		SELECT id, name, file, file_size, file_type, post_id, created_at
		FROM attachments
		WHERE id = $1
	`

	var attachment models.Attachment
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &attachment, query, attachmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &attachment, nil
}

// GetAttachmentsForPost leaves File empty, use GetById for the content.
func (r *AttachmentRepo) GetAttachmentsForPost(ctx context.Context, postID uuid.UUID) ([]*models.Attachment, error) {
	const op = "attachment_repo.GetAttachmentsForPost"

	query := `
		SELECT id, name, file_size, file_type, post_id, created_at
		FROM attachments
		WHERE post_id = $1
		ORDER BY seq ASC
	`

	attachments := []*models.Attachment{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &attachments, query, postID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return attachments, nil
}
