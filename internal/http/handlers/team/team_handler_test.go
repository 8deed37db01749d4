package team_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitter/internal/http/api"
	"fitter/internal/http/handlers/handlerstest"
	"fitter/internal/http/handlers/mocks"
	"fitter/internal/http/handlers/team"
	repo "fitter/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Create

func TestTeamHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	input := api.TeamInput{Name: "Ostrava", Description: "north", AdminID: uuid.New()}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.TeamSchema{ID: uuid.New(), Name: "Ostrava", Description: "north", AdminID: input.AdminID}
	mockService.On("Create", mock.Anything, input).Return(expected, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.TeamResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, *expected, resp.Team)
}

func TestTeamHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	body, _ := json.Marshal(api.TeamInput{Description: "nameless", AdminID: uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestTeamHandler_Create_TeamExists(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	input := api.TeamInput{Name: "Ostrava", AdminID: uuid.New()}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, input).Return(nil, repo.ErrTeamExists)

	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeTeamExists, resp.Error.Code)
}

func TestTeamHandler_Create_UnknownAdmin(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	input := api.TeamInput{Name: "Ostrava", AdminID: uuid.New()}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, input).Return(nil, repo.ErrInvalidReference)

	h.Create(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInvalidRef, resp.Error.Code)
}

// Get

func TestTeamHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String(), nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	expected := &api.TeamDetail{
		TeamSchema: api.TeamSchema{ID: teamID, Name: "Brno"},
		Members:    []api.UserSchema{{ID: uuid.New(), Name: "Albert"}},
	}
	mockService.On("Get", mock.Anything, teamID).Return(expected, nil)

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.TeamDetail
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, *expected, resp)
}

func TestTeamHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String(), nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, teamID).Return(nil, repo.ErrNotFound)

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// Exists

func TestTeamHandler_Exists(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/teams/exists?name=Ostrava", nil)
	w := httptest.NewRecorder()

	mockService.On("Exists", mock.Anything, "Ostrava").Return(true, nil)

	h.Exists(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.ExistsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, api.ExistsResponse{Name: "Ostrava", Exists: true}, resp)
}

func TestTeamHandler_Exists_MissingName(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/teams/exists", nil)
	w := httptest.NewRecorder()

	h.Exists(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

// Members

func TestTeamHandler_AddMember_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID, userID := uuid.New(), uuid.New()
	body, _ := json.Marshal(api.MemberInput{UserID: userID})
	req := httptest.NewRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", bytes.NewReader(body))
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	mockService.On("AddUser", mock.Anything, teamID, userID).Return(nil)

	h.AddMember(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTeamHandler_AddMember_AlreadyMember(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID, userID := uuid.New(), uuid.New()
	body, _ := json.Marshal(api.MemberInput{UserID: userID})
	req := httptest.NewRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", bytes.NewReader(body))
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	mockService.On("AddUser", mock.Anything, teamID, userID).Return(repo.ErrAlreadyMember)

	h.AddMember(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeAlreadyMember, resp.Error.Code)
}

func TestTeamHandler_RemoveMember_InvalidUserID(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/teams/"+teamID.String()+"/members/nobody", nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String(), "userID": "nobody"})
	w := httptest.NewRecorder()

	h.RemoveMember(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestTeamHandler_RemoveMember_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID, userID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/teams/"+teamID.String()+"/members/"+userID.String(), nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String(), "userID": userID.String()})
	w := httptest.NewRecorder()

	mockService.On("RemoveUser", mock.Anything, teamID, userID).Return(nil)

	h.RemoveMember(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTeamHandler_GetMembers(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/members", nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	members := []api.UserSchema{{ID: uuid.New(), Name: "Albert"}, {ID: uuid.New(), Name: "Daniel"}}
	mockService.On("GetMembers", mock.Anything, teamID).Return(members, nil)

	h.GetMembers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UsersResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, members, resp.Users)
}

// Posts

func TestTeamHandler_GetPosts_InternalError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/teams/"+teamID.String()+"/posts", nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	mockService.On("GetPosts", mock.Anything, teamID).Return(nil, errors.New("db error"))

	h.GetPosts(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Delete

func TestTeamHandler_Delete_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlerstest.NewLogger(), mockService)

	teamID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/teams/"+teamID.String(), nil)
	req = handlerstest.WithURLParams(req, map[string]string{"id": teamID.String()})
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, teamID).Return(nil)

	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
