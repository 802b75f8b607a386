package cart

import (
	"context"
	"errors"
	"sync"

	"rumbles-backend/domain"
	"rumbles-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// CartRepository is the narrow key-value contract the cart service
	// persists snapshots through. Get returns domain.ErrSnapshotNotFound
	// when no snapshot exists under the key.
	CartRepository interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, data []byte) error
		Delete(ctx context.Context, key string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var snapshot entities.CartSnapshot
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}
	return snapshot.Data, nil
}

func (r *cartRepository) Set(ctx context.Context, key string, data []byte) error {
	snapshot := entities.CartSnapshot{
		Key:  key,
		Data: data,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&snapshot).Error
}

// Delete removes the snapshot row outright. A soft delete would shadow the
// primary key and break the upsert when the same cart is used again.
func (r *cartRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Unscoped().Where("key = ?", key).Delete(&entities.CartSnapshot{}).Error
}

type memoryCartRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryCartRepository returns a CartRepository backed by a process-local
// map. Used by tests and as a fallback when no database is configured.
func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepository{data: make(map[string][]byte)}
}

func (r *memoryCartRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (r *memoryCartRepository) Set(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	r.data[key] = stored
	return nil
}

func (r *memoryCartRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
