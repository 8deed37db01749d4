package team

import (
	"context"

	"fitter/internal/http/api"
	"fitter/internal/models"
	"fitter/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamStorage
type TeamStorage interface {
	Create(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, teamID uuid.UUID) error
	GetById(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	Exists(ctx context.Context, teamName string) (bool, error)
	AddUser(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveUser(ctx context.Context, teamID, userID uuid.UUID) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberProvider
type MemberProvider interface {
	GetUsersInTeam(ctx context.Context, teamID uuid.UUID) ([]*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamPostsProvider
type TeamPostsProvider interface {
	GetPostsForTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Post, error)
}

type TeamService struct {
	trm     service.TransactionManager
	teams   TeamStorage
	members MemberProvider
	posts   TeamPostsProvider
}

func NewTeamService(
	trm service.TransactionManager,
	teams TeamStorage,
	members MemberProvider,
	posts TeamPostsProvider,
) *TeamService {
	return &TeamService{
		trm:     trm,
		teams:   teams,
		members: members,
		posts:   posts,
	}
}

// Create stores the team and makes its admin the first member.
func (s *TeamService) Create(ctx context.Context, in api.TeamInput) (*api.TeamSchema, error) {
	team := &models.Team{
		Name:        in.Name,
		Description: in.Description,
		AdminID:     in.AdminID,
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.teams.Create(ctx, team); err != nil {
			return err
		}

		return s.teams.AddUser(ctx, team.ID, team.AdminID)
	})
	if err != nil {
		return nil, err
	}

	resp := service.TeamSchema(team)
	return &resp, nil
}

func (s *TeamService) Get(ctx context.Context, teamID uuid.UUID) (*api.TeamDetail, error) {
	team, err := s.teams.GetById(ctx, teamID)
	if err != nil {
		return nil, err
	}

	users, err := s.members.GetUsersInTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &api.TeamDetail{
		TeamSchema: service.TeamSchema(team),
		Members:    service.UserSchemas(users),
	}, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID uuid.UUID) error {
	return s.teams.Delete(ctx, teamID)
}

func (s *TeamService) Exists(ctx context.Context, teamName string) (bool, error) {
	return s.teams.Exists(ctx, teamName)
}

func (s *TeamService) AddUser(ctx context.Context, teamID, userID uuid.UUID) error {
	return s.teams.AddUser(ctx, teamID, userID)
}

func (s *TeamService) RemoveUser(ctx context.Context, teamID, userID uuid.UUID) error {
	return s.teams.RemoveUser(ctx, teamID, userID)
}

func (s *TeamService) GetMembers(ctx context.Context, teamID uuid.UUID) ([]api.UserSchema, error) {
	if _, err := s.teams.GetById(ctx, teamID); err != nil {
		return nil, err
	}

	users, err := s.members.GetUsersInTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return service.UserSchemas(users), nil
}

func (s *TeamService) GetPosts(ctx context.Context, teamID uuid.UUID) ([]api.PostShort, error) {
	if _, err := s.teams.GetById(ctx, teamID); err != nil {
		return nil, err
	}

	posts, err := s.posts.GetPostsForTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.PostShort, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, service.PostShort(p))
	}

	return resp, nil
}
