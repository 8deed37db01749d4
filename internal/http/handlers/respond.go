package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fitter/internal/http/api"
	"fitter/internal/lib/sl"
	repo "fitter/internal/repository"
	"fitter/internal/service/post"
	"fitter/internal/service/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DecodeJSON reads and validates the request body into dst.
// On failure the error response is already written and false is returned.
func DecodeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return false
	}

	if err := validator.New().Struct(dst); err != nil {
		log.Error("invalid request", sl.Err(err))

		var validateError validator.ValidationErrors
		if !errors.As(err, &validateError) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return false
	}

	return true
}

// URLParamID parses the named chi URL parameter as a uuid.
func URLParamID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, name+" must be a valid uuid"))
		return uuid.Nil, false
	}

	return id, true
}

// RenderError maps storage and service errors to a status code and error body.
func RenderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		status int
		code   string
	)

	switch {
	case errors.Is(err, repo.ErrNotFound):
		status, code = http.StatusNotFound, api.ErrCodeNotFound
	case errors.Is(err, repo.ErrTeamExists):
		status, code = http.StatusConflict, api.ErrCodeTeamExists
	case errors.Is(err, repo.ErrUserExists):
		status, code = http.StatusConflict, api.ErrCodeUserExists
	case errors.Is(err, repo.ErrAlreadyMember):
		status, code = http.StatusConflict, api.ErrCodeAlreadyMember
	case errors.Is(err, repo.ErrAlreadyTagged):
		status, code = http.StatusConflict, api.ErrCodeAlreadyTagged
	case errors.Is(err, repo.ErrHasDependents):
		status, code = http.StatusConflict, api.ErrCodeHasDependents
	case errors.Is(err, repo.ErrInvalidReference):
		status, code = http.StatusUnprocessableEntity, api.ErrCodeInvalidRef
	case errors.Is(err, user.ErrPasswordTooLong):
		status, code = http.StatusBadRequest, api.ErrValidationErr
	case errors.Is(err, post.ErrInvalidFileType):
		status, code = http.StatusBadRequest, api.ErrCodeInvalidFileType
	default:
		log.Error("internal error", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("request failed", slog.String("code", code), sl.Err(err))

	render.Status(r, status)
	render.JSON(w, r, api.Error(code, err.Error()))
}
