package repo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrTeamExists       = errors.New("team with this name already exists")
	ErrUserExists       = errors.New("user with this email already exists")
	ErrAlreadyMember    = errors.New("user is already a member of the team")
	ErrAlreadyTagged    = errors.New("user is already tagged")
	ErrInvalidReference = errors.New("referenced resource does not exist")
	ErrHasDependents    = errors.New("resource still has dependent records")
)

func pgCode(err error) string {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == foreignKeyViolationCode
}
