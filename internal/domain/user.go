package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCoach  Role = "coach"
	RolePlayer Role = "player"
	RoleParent Role = "parent"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCoach, RolePlayer, RoleParent, RoleAdmin:
		return true
	}
	return false
}

// User is the platform account as the notification engine sees it.
// EmailEnc holds the AES-GCM encrypted contact address; it is decrypted
// immediately before an email send and nowhere else.
type User struct {
	ID             uuid.UUID
	Name           string
	Role           Role
	EmailEnc       string
	TelegramChatID int64
	CreatedAt      time.Time
	LastActiveAt   time.Time
}
