package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	AdminID     uuid.UUID  `db:"admin_id"`
	CreatedAt   *time.Time `db:"created_at"`
}
