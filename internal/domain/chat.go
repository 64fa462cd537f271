package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatRecord is one question/answer exchange with the assistant. Records are
// append-only: nothing updates or deletes them once written. UserEmail is a
// plain string reference supplied by the caller, not a foreign key; the
// chat path never joins against the users table.
type ChatRecord struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserEmail string         `json:"userEmail" gorm:"index;not null"`
	Question  string         `json:"question" gorm:"type:text;not null"`
	Answer    string         `json:"answer" gorm:"type:text;not null"`
	Meta      datatypes.JSON `json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
}
