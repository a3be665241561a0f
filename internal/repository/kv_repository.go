package repository

import (
	"github.com/lanhoang/perfreview/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository is the durable key-value surface backing the analysis
// collection and the access-code session. Values are whole JSON documents
// overwritten on every write.
type KVRepository interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

type kvRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) KVRepository {
	return &kvRepository{db: db}
}

// Get returns gorm.ErrRecordNotFound when the key has never been written.
func (r *kvRepository) Get(key string) ([]byte, error) {
	var entry model.KVEntry
	if err := r.db.First(&entry, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (r *kvRepository) Put(key string, value []byte) error {
	entry := model.KVEntry{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *kvRepository) Delete(key string) error {
	return r.db.Delete(&model.KVEntry{}, "key = ?", key).Error
}
