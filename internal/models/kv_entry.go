package models

import (
	"time"
)

// KVEntry 键值存储行（购物车状态等会话数据的数据库后端）
type KVEntry struct {
	Key       string    `gorm:"primarykey;type:varchar(191)" json:"key"` // 存储键
	Value     string    `gorm:"type:text;not null" json:"value"`         // 序列化值
	UpdatedAt time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
