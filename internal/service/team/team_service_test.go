package team_test

import (
	"context"
	"errors"
	"testing"

	"fitter/internal/http/api"
	"fitter/internal/models"
	repo "fitter/internal/repository"
	"fitter/internal/service/mocks"
	"fitter/internal/service/team"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTRM(t *testing.T, ctx context.Context, returnErr error) *mocks.MockManager {
	mockTRM := mocks.NewMockManager(t)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			if returnErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, returnErr)
			}
		}).
		Return(returnErr).
		Once()

	return mockTRM
}

func TestTeamService_Create_Success(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)

	adminID := uuid.New()
	teamID := uuid.New()
	in := api.TeamInput{Name: "Sicaci", Description: "first team", AdminID: adminID}

	mockTeams.On("Create", ctx, mock.MatchedBy(func(tm *models.Team) bool {
		return tm.Name == "Sicaci" && tm.Description == "first team" && tm.AdminID == adminID
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Team).ID = teamID
		}).
		Return(nil).
		Once()
	mockTeams.On("AddUser", ctx, teamID, adminID).Return(nil).Once()

	service := team.NewTeamService(newTRM(t, ctx, nil), mockTeams, nil, nil)
	resp, err := service.Create(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, teamID, resp.ID)
	assert.Equal(t, "Sicaci", resp.Name)
	assert.Equal(t, adminID, resp.AdminID)
}

func TestTeamService_Create_TeamExists(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)

	mockTeams.On("Create", ctx, mock.Anything).Return(repo.ErrTeamExists).Once()

	service := team.NewTeamService(newTRM(t, ctx, repo.ErrTeamExists), mockTeams, nil, nil)
	resp, err := service.Create(ctx, api.TeamInput{Name: "Sicaci", AdminID: uuid.New()})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrTeamExists)
	mockTeams.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_Create_UnknownAdmin(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)

	mockTeams.On("Create", ctx, mock.Anything).Return(repo.ErrInvalidReference).Once()

	service := team.NewTeamService(newTRM(t, ctx, repo.ErrInvalidReference), mockTeams, nil, nil)
	resp, err := service.Create(ctx, api.TeamInput{Name: "Ghosts", AdminID: uuid.New()})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrInvalidReference)
}

func TestTeamService_Get_Success(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	mockMembers := mocks.NewMemberProvider(t)

	teamID := uuid.New()
	adminID := uuid.New()
	tm := &models.Team{ID: teamID, Name: "x-men", AdminID: adminID}
	users := []*models.User{
		{ID: adminID, Name: "Logan"},
		{ID: uuid.New(), Name: "Ororo"},
	}

	mockTeams.On("GetById", ctx, teamID).Return(tm, nil).Once()
	mockMembers.On("GetUsersInTeam", ctx, teamID).Return(users, nil).Once()

	service := team.NewTeamService(nil, mockTeams, mockMembers, nil)
	resp, err := service.Get(ctx, teamID)

	require.NoError(t, err)
	assert.Equal(t, "x-men", resp.Name)
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "Logan", resp.Members[0].Name)
}

func TestTeamService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	teamID := uuid.New()

	mockTeams.On("GetById", ctx, teamID).Return((*models.Team)(nil), repo.ErrNotFound).Once()

	service := team.NewTeamService(nil, mockTeams, nil, nil)
	resp, err := service.Get(ctx, teamID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTeamService_Exists(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)

	mockTeams.On("Exists", ctx, "Ministri").Return(true, nil).Once()
	mockTeams.On("Exists", ctx, "Nobody").Return(false, nil).Once()

	service := team.NewTeamService(nil, mockTeams, nil, nil)

	exists, err := service.Exists(ctx, "Ministri")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.Exists(ctx, "Nobody")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestTeamService_AddUser_AlreadyMember(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	teamID, userID := uuid.New(), uuid.New()

	mockTeams.On("AddUser", ctx, teamID, userID).Return(repo.ErrAlreadyMember).Once()

	service := team.NewTeamService(nil, mockTeams, nil, nil)
	err := service.AddUser(ctx, teamID, userID)

	assert.ErrorIs(t, err, repo.ErrAlreadyMember)
}

func TestTeamService_RemoveUser(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	teamID, userID := uuid.New(), uuid.New()

	mockTeams.On("RemoveUser", ctx, teamID, userID).Return(nil).Once()

	service := team.NewTeamService(nil, mockTeams, nil, nil)
	assert.NoError(t, service.RemoveUser(ctx, teamID, userID))
}

func TestTeamService_Delete(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	teamID := uuid.New()

	mockTeams.On("Delete", ctx, teamID).Return(repo.ErrNotFound).Once()

	service := team.NewTeamService(nil, mockTeams, nil, nil)
	assert.ErrorIs(t, service.Delete(ctx, teamID), repo.ErrNotFound)
}

func TestTeamService_GetMembers_GetUsersError(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	mockMembers := mocks.NewMemberProvider(t)

	teamID := uuid.New()
	getErr := errors.New("users fetch failed")

	mockTeams.On("GetById", ctx, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	mockMembers.On("GetUsersInTeam", ctx, teamID).Return(([]*models.User)(nil), getErr).Once()

	service := team.NewTeamService(nil, mockTeams, mockMembers, nil)
	resp, err := service.GetMembers(ctx, teamID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, getErr)
}

func TestTeamService_GetPosts(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStorage(t)
	mockPosts := mocks.NewTeamPostsProvider(t)

	teamID := uuid.New()
	authorID := uuid.New()
	posts := []*models.Post{
		{ID: uuid.New(), Title: "Vysocina", AuthorID: authorID, TeamID: teamID},
	}

	mockTeams.On("GetById", ctx, teamID).Return(&models.Team{ID: teamID}, nil).Once()
	mockPosts.On("GetPostsForTeam", ctx, teamID).Return(posts, nil).Once()

	service := team.NewTeamService(nil, mockTeams, nil, mockPosts)
	resp, err := service.GetPosts(ctx, teamID)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Vysocina", resp[0].Title)
	assert.Equal(t, authorID, resp[0].AuthorID)
}
