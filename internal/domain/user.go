package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Roles        []string
	RegisteredAt time.Time

	PersonalData PersonalData
	Contact      Contact
	Settings     Settings
}

type PersonalData struct {
	Pronoun              string
	FirstName            string
	LastName             string
	ShirtSize            string
	PlannedArrivalDate   *time.Time
	PlannedDepartureDate *time.Time
}

type Contact struct {
	DECT   string
	Mobile string
}

type Settings struct {
	Language       string
	Theme          int
	EmailHuman     bool
	EmailShiftinfo bool
	EmailNews      bool
	EmailGoody     bool
	MobileShow     bool
}

// IsZero reports whether u is the anonymous user.
func (u User) IsZero() bool {
	return u.ID == uuid.Nil
}
