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

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, teamID uuid.UUID) error
	GetById(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	Exists(ctx context.Context, teamName string) (bool, error)
	List(ctx context.Context) ([]*models.Team, error)
	AddUser(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveUser(ctx context.Context, teamID, userID uuid.UUID) error
	GetTeamsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Team, error)
}

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) error {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (name, description, admin_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, team.Name, team.Description, team.AdminID).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrTeamExists
		case isForeignKeyViolation(err):
			return ErrInvalidReference
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) Delete(ctx context.Context, teamID uuid.UUID) error {
	const op = "team_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
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

func (r *TeamRepo) GetById(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	const op = "team_repo.GetById"

	query := `
		SELECT id, name, description, admin_id, created_at
		FROM teams
		WHERE id = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) Exists(ctx context.Context, teamName string) (bool, error) {
	const op = "team_repo.Exists"

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM teams WHERE name = $1)`, teamName)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.List"

	query := `
		SELECT id, name, description, admin_id, created_at
		FROM teams
		ORDER BY created_at ASC, id ASC;
	`

	teams := []*models.Team{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

func (r *TeamRepo) AddUser(ctx context.Context, teamID, userID uuid.UUID) error {
	const op = "team_repo.AddUser"

	query := `
		INSERT INTO users_in_teams (user_id, team_id, joined_at)
		VALUES ($1, $2, now())
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, userID, teamID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrAlreadyMember
		case isForeignKeyViolation(err):
			return ErrInvalidReference
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) RemoveUser(ctx context.Context, teamID, userID uuid.UUID) error {
	const op = "team_repo.RemoveUser"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		`DELETE FROM users_in_teams WHERE team_id = $1 AND user_id = $2`,
		teamID, userID,
	)
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

func (r *TeamRepo) GetTeamsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Team, error) {
	const op = "team_repo.GetTeamsForUser"

	query := `
		SELECT t.id, t.name, t.description, t.admin_id, t.created_at
		FROM teams t
		JOIN users_in_teams ut ON ut.team_id = t.id
		WHERE ut.user_id = $1
		ORDER BY ut.seq ASC;
	`

	teams := []*models.Team{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query, userID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}
