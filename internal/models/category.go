package models

import (
	"time"
)

// Category 商品分类表
type Category struct {
	ID        string    `gorm:"primarykey;type:varchar(64)" json:"id"` // 分类ID（如 cat-1）
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`      // 唯一标识
	Name      string    `gorm:"not null" json:"name"`                  // 分类名称
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`     // 排序权重
	CreatedAt time.Time `json:"created_at"`                            // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
