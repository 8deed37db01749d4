package user

import (
	"context"
	"errors"

	"fitter/internal/http/api"
	"fitter/internal/lib"
	"fitter/internal/models"
	"fitter/internal/service"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserStorage
type UserStorage interface {
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserTeamsProvider
type UserTeamsProvider interface {
	GetTeamsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Team, error)
}

// ErrPasswordTooLong is returned for passwords longer than bcrypt accepts.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// maxPasswordBytes is bcrypt's input limit, counted in bytes rather than characters.
const maxPasswordBytes = 72

type UserService struct {
	users      UserStorage
	teams      UserTeamsProvider
	bcryptCost int
}

func NewUserService(users UserStorage, teams UserTeamsProvider, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &UserService{
		users:      users,
		teams:      teams,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Create(ctx context.Context, in api.UserInput) (*api.UserSchema, error) {
	const op = "service.user.Create"

	if len(in.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Nickname:     in.Nickname,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := service.UserSchema(user)
	return &resp, nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*api.UserSchema, error) {
	user, err := s.users.GetById(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := service.UserSchema(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.users.Delete(ctx, userID)
}

func (s *UserService) GetTeams(ctx context.Context, userID uuid.UUID) ([]api.TeamSchema, error) {
	if _, err := s.users.GetById(ctx, userID); err != nil {
		return nil, err
	}

	teams, err := s.teams.GetTeamsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return service.TeamSchemas(teams), nil
}
