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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	GetUsersInTeam(ctx context.Context, teamID uuid.UUID) ([]*models.User, error)
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

const userColumns = `id, name, email, password_hash, nickname, created_at`

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (name, email, password_hash, nickname)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.Nickname).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	const op = "user_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		// a cascaded post can still be pinned by comments or attachments
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

func (r *UserRepo) GetById(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "user_repo.GetByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	const op = "user_repo.List"

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, id ASC;`

	users := []*models.User{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) GetUsersInTeam(ctx context.Context, teamID uuid.UUID) ([]*models.User, error) {
	const op = "user_repo.GetUsersInTeam"

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.nickname, u.created_at
		FROM users u
		JOIN users_in_teams ut ON ut.user_id = u.id
		WHERE ut.team_id = $1
		ORDER BY ut.seq ASC;
	`

	users := []*models.User{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}
