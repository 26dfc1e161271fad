package mem

import (
	"context"
	"errors"
	"testing"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type angelTypesMock struct {
	mock.Mock
}

func (m *angelTypesMock) GetAngelType(ctx context.Context, id int) (domain.AngelType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AngelType), args.Error(1)
}

func (m *angelTypesMock) ListAngelTypes(ctx context.Context) ([]domain.AngelType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AngelType), args.Error(1)
}

func (m *angelTypesMock) CreateAngelType(ctx context.Context, at domain.AngelType) (domain.AngelType, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(domain.AngelType), args.Error(1)
}

func TestCacheReadThrough(t *testing.T) {
	next := &angelTypesMock{}
	next.On("ListAngelTypes", mock.Anything).Return([]domain.AngelType{
		{ID: 2, Name: "Runner"},
		{ID: 1, Name: "Angel"},
	}, nil).Once()

	c := New(next)
	ctx := context.Background()

	list, err := c.ListAngelTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.AngelType{{ID: 1, Name: "Angel"}, {ID: 2, Name: "Runner"}}, list)

	at, err := c.GetAngelType(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Runner", at.Name)

	_, err = c.GetAngelType(ctx, 3)
	require.ErrorIs(t, err, storage.ErrNotFound)

	next.AssertExpectations(t)
}

func TestCacheCreateInvalidates(t *testing.T) {
	next := &angelTypesMock{}
	next.On("ListAngelTypes", mock.Anything).Return([]domain.AngelType{{ID: 1, Name: "Angel"}}, nil).Once()
	next.On("CreateAngelType", mock.Anything, domain.AngelType{Name: "Runner"}).Return(domain.AngelType{ID: 2, Name: "Runner"}, nil).Once()
	next.On("ListAngelTypes", mock.Anything).Return([]domain.AngelType{{ID: 1, Name: "Angel"}, {ID: 2, Name: "Runner"}}, nil).Once()

	c := New(next)
	ctx := context.Background()

	list, err := c.ListAngelTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = c.CreateAngelType(ctx, domain.AngelType{Name: "Runner"})
	require.NoError(t, err)

	list, err = c.ListAngelTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	next.AssertExpectations(t)
}

func TestCacheLoadError(t *testing.T) {
	next := &angelTypesMock{}
	next.On("ListAngelTypes", mock.Anything).Return([]domain.AngelType(nil), errors.New("db down")).Once()
	next.On("ListAngelTypes", mock.Anything).Return([]domain.AngelType{{ID: 1, Name: "Angel"}}, nil).Once()

	c := New(next)
	_, err := c.GetAngelType(context.Background(), 1)
	require.Error(t, err)

	at, err := c.GetAngelType(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Angel", at.Name)
	next.AssertExpectations(t)
}
