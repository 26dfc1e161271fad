package membership

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/mail"
	"github.com/goserg/engelserver/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type memStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]domain.User
	angelTypes map[int]domain.AngelType
	rows       map[int]domain.UserAngelType
	nextID     int
}

var (
	_ storage.UserStorage          = (*memStore)(nil)
	_ storage.AngelTypeStorage     = (*memStore)(nil)
	_ storage.UserAngelTypeStorage = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[uuid.UUID]domain.User),
		angelTypes: make(map[int]domain.AngelType),
		rows:       make(map[int]domain.UserAngelType),
	}
}

func (m *memStore) addUser(name string, shiftinfo bool) domain.User {
	u := domain.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Settings: domain.Settings{Language: "en_US", EmailShiftinfo: shiftinfo},
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addAngelType(name string) domain.AngelType {
	m.nextID++
	at := domain.AngelType{ID: m.nextID, Name: name}
	m.angelTypes[at.ID] = at
	return at
}

func (m *memStore) addRow(user domain.User, at domain.AngelType, confirmedBy *uuid.UUID, supporter bool) domain.UserAngelType {
	m.nextID++
	uat := domain.UserAngelType{
		ID:            m.nextID,
		UserID:        user.ID,
		AngelTypeID:   at.ID,
		ConfirmUserID: confirmedBy,
		Supporter:     supporter,
	}
	m.rows[uat.ID] = uat
	return uat
}

func (m *memStore) rowsOf(angelTypeID int) []domain.UserAngelType {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []domain.UserAngelType
	for _, uat := range m.rows {
		if uat.AngelTypeID == angelTypeID {
			list = append(list, uat)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (m *memStore) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (m *memStore) ListUsers(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (m *memStore) UpdateProfile(context.Context, domain.User) error { return nil }

func (m *memStore) UpdateSettings(context.Context, uuid.UUID, domain.Settings) error { return nil }

func (m *memStore) ListOAuth(context.Context, uuid.UUID) ([]domain.OAuthIdentity, error) {
	return nil, nil
}

func (m *memStore) GetAngelType(_ context.Context, id int) (domain.AngelType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.angelTypes[id]
	if !ok {
		return domain.AngelType{}, storage.ErrNotFound
	}
	return at, nil
}

func (m *memStore) ListAngelTypes(context.Context) ([]domain.AngelType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]domain.AngelType, 0, len(m.angelTypes))
	for _, at := range m.angelTypes {
		list = append(list, at)
	}
	return list, nil
}

func (m *memStore) CreateAngelType(_ context.Context, at domain.AngelType) (domain.AngelType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	at.ID = m.nextID
	m.angelTypes[at.ID] = at
	return at, nil
}

func (m *memStore) GetUserAngelType(_ context.Context, id int) (domain.UserAngelType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uat, ok := m.rows[id]
	if !ok {
		return domain.UserAngelType{}, storage.ErrNotFound
	}
	return uat, nil
}

func (m *memStore) FindUserAngelType(_ context.Context, userID uuid.UUID, angelTypeID int) (domain.UserAngelType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, uat := range m.rows {
		if uat.UserID == userID && uat.AngelTypeID == angelTypeID {
			return uat, nil
		}
	}
	return domain.UserAngelType{}, storage.ErrNotFound
}

func (m *memStore) ListMembers(ctx context.Context, angelTypeID int) ([]domain.Member, error) {
	var members []domain.Member
	for _, uat := range m.rowsOf(angelTypeID) {
		u, _ := m.GetUser(ctx, uat.UserID)
		members = append(members, domain.Member{UserAngelType: uat, User: u})
	}
	return members, nil
}

func (m *memStore) pending(angelTypeID int) []domain.UserAngelType {
	var list []domain.UserAngelType
	for _, uat := range m.rowsOf(angelTypeID) {
		if !uat.Confirmed() {
			list = append(list, uat)
		}
	}
	return list
}

func (m *memStore) CountUnconfirmedForSupporter(ctx context.Context, supporterID uuid.UUID) ([]domain.UnconfirmedCount, error) {
	var counts []domain.UnconfirmedCount
	for id, at := range m.angelTypes {
		uat, err := m.FindUserAngelType(ctx, supporterID, id)
		if err != nil || !uat.Supporter {
			continue
		}
		pending := m.pending(id)
		if len(pending) > 0 {
			counts = append(counts, domain.UnconfirmedCount{AngelType: at, Count: len(pending)})
		}
	}
	return counts, nil
}

func (m *memStore) CreateUserAngelType(ctx context.Context, userID uuid.UUID, angelTypeID int) (domain.UserAngelType, error) {
	if _, err := m.FindUserAngelType(ctx, userID, angelTypeID); err == nil {
		return domain.UserAngelType{}, storage.ErrAlreadyExists
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	uat := domain.UserAngelType{ID: m.nextID, UserID: userID, AngelTypeID: angelTypeID}
	m.rows[uat.ID] = uat
	return uat, nil
}

func (m *memStore) ConfirmUserAngelType(_ context.Context, id int, confirmUserID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	uat, ok := m.rows[id]
	if !ok {
		return storage.ErrNotFound
	}
	uat.ConfirmUserID = &confirmUserID
	m.rows[id] = uat
	return nil
}

func (m *memStore) ConfirmAllUserAngelTypes(_ context.Context, angelTypeID int, confirmUserID uuid.UUID) ([]domain.UserAngelType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var confirmed []domain.UserAngelType
	for id, uat := range m.rows {
		if uat.AngelTypeID == angelTypeID && !uat.Confirmed() {
			by := confirmUserID
			uat.ConfirmUserID = &by
			m.rows[id] = uat
			confirmed = append(confirmed, uat)
		}
	}
	sort.Slice(confirmed, func(i, j int) bool { return confirmed[i].ID < confirmed[j].ID })
	return confirmed, nil
}

func (m *memStore) SetSupporter(_ context.Context, id int, supporter bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	uat, ok := m.rows[id]
	if !ok {
		return storage.ErrNotFound
	}
	uat.Supporter = supporter
	m.rows[id] = uat
	return nil
}

func (m *memStore) DeleteUserAngelType(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memStore) DeleteUnconfirmedUserAngelTypes(_ context.Context, angelTypeID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, uat := range m.rows {
		if uat.AngelTypeID == angelTypeID && !uat.Confirmed() {
			delete(m.rows, id)
		}
	}
	return nil
}

type permSet map[uuid.UUID][]string

func (p permSet) Can(user domain.User, permission string) bool {
	for _, perm := range p[user.ID] {
		if perm == permission {
			return true
		}
	}
	return false
}

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type auditRecorder struct {
	lines []string
}

func (a *auditRecorder) Infof(_ context.Context, _ domain.User, format string, args ...interface{}) {
	a.lines = append(a.lines, fmt.Sprintf(format, args...))
}
