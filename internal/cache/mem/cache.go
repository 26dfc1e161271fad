// Package mem is an in memory read through cache for angel types. Angel types
// change rarely and are read by every membership page.
package mem

import (
	"context"
	"sort"
	"sync"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"
)

type Cache struct {
	next storage.AngelTypeStorage

	mu         sync.RWMutex
	valid      bool
	angelTypes map[int]domain.AngelType
}

var _ storage.AngelTypeStorage = (*Cache)(nil)

func New(next storage.AngelTypeStorage) *Cache {
	return &Cache{
		next:       next,
		angelTypes: make(map[int]domain.AngelType),
	}
}

func (c *Cache) load(ctx context.Context) error {
	c.mu.RLock()
	valid := c.valid
	c.mu.RUnlock()
	if valid {
		return nil
	}

	angelTypes, err := c.next.ListAngelTypes(ctx)
	if err != nil {
		return err
	}
	c.Update(angelTypes)
	return nil
}

// Update replaces the cached angel types.
func (c *Cache) Update(angelTypes []domain.AngelType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.angelTypes = make(map[int]domain.AngelType, len(angelTypes))
	for i := range angelTypes {
		c.angelTypes[angelTypes[i].ID] = angelTypes[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) GetAngelType(ctx context.Context, id int) (domain.AngelType, error) {
	if err := c.load(ctx); err != nil {
		return domain.AngelType{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	at, ok := c.angelTypes[id]
	if !ok {
		return domain.AngelType{}, storage.ErrNotFound
	}
	return at, nil
}

func (c *Cache) ListAngelTypes(ctx context.Context) ([]domain.AngelType, error) {
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	angelTypes := make([]domain.AngelType, 0, len(c.angelTypes))
	for _, at := range c.angelTypes {
		angelTypes = append(angelTypes, at)
	}
	c.mu.RUnlock()

	sort.SliceStable(angelTypes, func(i, j int) bool {
		return angelTypes[i].Name < angelTypes[j].Name
	})
	return angelTypes, nil
}

func (c *Cache) CreateAngelType(ctx context.Context, at domain.AngelType) (domain.AngelType, error) {
	created, err := c.next.CreateAngelType(ctx, at)
	if err != nil {
		return domain.AngelType{}, err
	}
	c.Invalidate()
	return created, nil
}
