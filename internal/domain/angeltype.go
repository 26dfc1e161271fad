package domain

import (
	"time"

	"github.com/google/uuid"
)

type AngelType struct {
	ID          int
	Name        string
	Description string
	Restricted  bool
}

// UserAngelType is the membership of a user in an angel type.
type UserAngelType struct {
	ID            int
	UserID        uuid.UUID
	AngelTypeID   int
	ConfirmUserID *uuid.UUID
	Supporter     bool
}

func (u UserAngelType) Confirmed() bool {
	return u.ConfirmUserID != nil
}

// Member is a UserAngelType joined with its user, used by the angel type page.
type Member struct {
	UserAngelType
	User User
}

// UnconfirmedCount is the number of unconfirmed members of an angel type.
type UnconfirmedCount struct {
	AngelType AngelType
	Count     int
}

type LogEntry struct {
	Level     string
	Message   string
	CreatedAt time.Time
}

type OAuthIdentity struct {
	Provider   string
	Identifier string
}
