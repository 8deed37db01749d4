package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	ErrInternalErr         = "INTERNAL_ERROR"
	ErrValidationErr       = "VALIDATION_ERROR"
	ErrBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeTeamExists      = "TEAM_EXISTS"
	ErrCodeUserExists      = "USER_EXISTS"
	ErrCodeAlreadyMember   = "ALREADY_MEMBER"
	ErrCodeAlreadyTagged   = "ALREADY_TAGGED"
	ErrCodeInvalidRef      = "INVALID_REFERENCE"
	ErrCodeHasDependents   = "HAS_DEPENDENTS"
	ErrCodeInvalidFileType = "INVALID_FILE_TYPE"
)

type UserResponse struct {
	User UserSchema `json:"user"`
}

type UsersResponse struct {
	Users []UserSchema `json:"users"`
}

type TeamResponse struct {
	Team TeamSchema `json:"team"`
}

type TeamsResponse struct {
	Teams []TeamSchema `json:"teams"`
}

type ExistsResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

type PostResponse struct {
	Post PostSchema `json:"post"`
}

type PostsResponse struct {
	Posts []PostShort `json:"posts"`
}

type CommentResponse struct {
	Comment CommentSchema `json:"comment"`
}

type CommentsResponse struct {
	Comments []CommentSchema `json:"comments"`
}

type SearchResponse struct {
	PostID     uuid.UUID   `json:"post_id"`
	CommentIDs []uuid.UUID `json:"comment_ids"`
}

type AttachmentResponse struct {
	Attachment AttachmentSchema `json:"attachment"`
}

type AttachmentsResponse struct {
	Attachments []AttachmentSchema `json:"attachments"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		case "min":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be at least %s characters", err.Field(), err.Param()),
			)
		case "oneof":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be one of: %s", err.Field(), err.Param()),
			)
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
