package repository

import (
	"context"
	"errors"
	"time"

	"github.com/oceanpro/storefront/internal/models"

	"gorm.io/gorm"
)

// GormKV 基于数据库 kv_entries 表的键值存储
type GormKV struct {
	db *gorm.DB
}

// NewGormKV 创建数据库键值存储
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get 读取键值，键不存在时 ok 为 false
func (g *GormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 写入键值（存在则覆盖）
func (g *GormKV) Set(ctx context.Context, key, value string) error {
	db := g.db.WithContext(ctx)
	var existing models.KVEntry
	err := db.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.KVEntry{
			Key:       key,
			Value:     value,
			UpdatedAt: time.Now(),
		}).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&models.KVEntry{}).Where("key = ?", key).Updates(map[string]interface{}{
		"value":      value,
		"updated_at": time.Now(),
	}).Error
}
