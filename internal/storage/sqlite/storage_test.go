package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/gen/table"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return New(l, db)
}

func insertUser(t *testing.T, s *Storage, name string, roles ...string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(model.Users{
		ID:        id.String(),
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: time.Now(),
	}).ExecContext(ctx, s.db)
	require.NoError(t, err)
	_, err = table.UserProfiles.INSERT(table.UserProfiles.UserID).VALUES(id.String()).ExecContext(ctx, s.db)
	require.NoError(t, err)
	for _, role := range roles {
		_, err = table.UserRoles.INSERT(table.UserRoles.AllColumns).
			MODEL(model.UserRoles{UserID: id.String(), Role: role}).ExecContext(ctx, s.db)
		require.NoError(t, err)
	}
	return id
}

func TestUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	id := insertUser(t, s, "alice", "angel", "admin")
	insertUser(t, s, "bob")

	u, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Name)
	require.ElementsMatch(t, []string{"angel", "admin"}, u.Roles)

	_, err = s.GetUser(ctx, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)

	list, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "bob", list[1].Name)
	require.Empty(t, list[1].Roles)

	arrival := time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC)
	u.Email = "alice@example.org"
	u.PersonalData.Pronoun = "she"
	u.PersonalData.PlannedArrivalDate = &arrival
	u.Contact.DECT = "1234"
	require.NoError(t, s.UpdateProfile(ctx, u))

	u, err = s.GetUser(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice@example.org", u.Email)
	require.Equal(t, "she", u.PersonalData.Pronoun)
	require.Equal(t, "1234", u.Contact.DECT)
	require.NotNil(t, u.PersonalData.PlannedArrivalDate)
	require.True(t, arrival.Equal(*u.PersonalData.PlannedArrivalDate))

	require.NoError(t, s.UpdateSettings(ctx, id, domain.Settings{Language: "de_DE", Theme: 1, EmailShiftinfo: true}))
	u, err = s.GetUser(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "de_DE", u.Settings.Language)
	require.Equal(t, 1, u.Settings.Theme)
	require.True(t, u.Settings.EmailShiftinfo)
	require.Equal(t, "she", u.PersonalData.Pronoun)

	require.ErrorIs(t, s.UpdateSettings(ctx, uuid.New(), domain.Settings{}), storage.ErrNotFound)

	identities, err := s.ListOAuth(ctx, id)
	require.NoError(t, err)
	require.Empty(t, identities)
}

func TestAngelTypes(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	seeded, err := s.ListAngelTypes(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 2)

	at, err := s.CreateAngelType(ctx, domain.AngelType{Name: "Bar", Restricted: true})
	require.NoError(t, err)
	require.NotZero(t, at.ID)

	got, err := s.GetAngelType(ctx, at.ID)
	require.NoError(t, err)
	require.Equal(t, at, got)

	_, err = s.CreateAngelType(ctx, domain.AngelType{Name: "Bar"})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = s.GetAngelType(ctx, 999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserAngelTypes(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	alice := insertUser(t, s, "alice")
	bob := insertUser(t, s, "bob")
	carol := insertUser(t, s, "carol")
	at, err := s.CreateAngelType(ctx, domain.AngelType{Name: "Bar", Restricted: true})
	require.NoError(t, err)

	supporter, err := s.CreateUserAngelType(ctx, alice, at.ID)
	require.NoError(t, err)
	require.False(t, supporter.Confirmed())
	require.NoError(t, s.ConfirmUserAngelType(ctx, supporter.ID, alice))
	require.NoError(t, s.SetSupporter(ctx, supporter.ID, true))

	_, err = s.CreateUserAngelType(ctx, alice, at.ID)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	bobUAT, err := s.CreateUserAngelType(ctx, bob, at.ID)
	require.NoError(t, err)
	_, err = s.CreateUserAngelType(ctx, carol, at.ID)
	require.NoError(t, err)

	found, err := s.FindUserAngelType(ctx, bob, at.ID)
	require.NoError(t, err)
	require.Equal(t, bobUAT, found)

	counts, err := s.CountUnconfirmedForSupporter(ctx, alice)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	require.Equal(t, 2, counts[0].Count)
	require.Equal(t, "Bar", counts[0].AngelType.Name)

	counts, err = s.CountUnconfirmedForSupporter(ctx, bob)
	require.NoError(t, err)
	require.Empty(t, counts)

	members, err := s.ListMembers(ctx, at.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	require.Equal(t, "alice", members[0].User.Name)
	require.True(t, members[0].Supporter)
	require.Equal(t, alice, *members[0].ConfirmUserID)

	require.NoError(t, s.ConfirmUserAngelType(ctx, bobUAT.ID, alice))
	require.NoError(t, s.DeleteUnconfirmedUserAngelTypes(ctx, at.ID))

	members, err = s.ListMembers(ctx, at.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	counts, err = s.CountUnconfirmedForSupporter(ctx, alice)
	require.NoError(t, err)
	require.Empty(t, counts)

	carolUAT, err := s.CreateUserAngelType(ctx, carol, at.ID)
	require.NoError(t, err)
	confirmed, err := s.ConfirmAllUserAngelTypes(ctx, at.ID, alice)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	require.Equal(t, carolUAT.ID, confirmed[0].ID)
	require.Equal(t, alice, *confirmed[0].ConfirmUserID)
	confirmed, err = s.ConfirmAllUserAngelTypes(ctx, at.ID, alice)
	require.NoError(t, err)
	require.Empty(t, confirmed)
	counts, err = s.CountUnconfirmedForSupporter(ctx, alice)
	require.NoError(t, err)
	require.Empty(t, counts)

	require.NoError(t, s.DeleteUserAngelType(ctx, bobUAT.ID))
	_, err = s.GetUserAngelType(ctx, bobUAT.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, s.DeleteUserAngelType(ctx, bobUAT.ID), storage.ErrNotFound)
}

func TestLogEntries(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AddLogEntry(ctx, domain.LogEntry{Level: "info", Message: "first"}))
	require.NoError(t, s.AddLogEntry(ctx, domain.LogEntry{Level: "info", Message: "second"}))

	var dest []model.LogEntries
	err := table.LogEntries.
		SELECT(table.LogEntries.AllColumns).
		FROM(table.LogEntries).
		ORDER_BY(table.LogEntries.ID.ASC()).
		QueryContext(ctx, s.db, &dest)
	require.NoError(t, err)
	require.Len(t, dest, 2)
	require.Equal(t, "first", dest[0].Message)
	require.Equal(t, "second", dest[1].Message)
	require.False(t, dest[1].CreatedAt.IsZero())
}
