package models

import (
	"time"
)

// Product 商品表
type Product struct {
	ID          string    `gorm:"primarykey;type:varchar(64)" json:"id"`              // 商品ID（如 p-101）
	CategoryID  string    `gorm:"type:varchar(64);not null;index" json:"category_id"` // 分类ID
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`                   // 唯一标识
	Name        string    `gorm:"not null" json:"name"`                               // 商品名称
	Description string    `gorm:"type:text" json:"description"`                       // 商品描述
	Image       string    `json:"image"`                                              // 图片地址
	PriceAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Rating      float64   `gorm:"not null;default:0" json:"rating"`                   // 评分
	Stock       int       `gorm:"not null;default:0" json:"stock"`                    // 库存上限（仅作 UI 提示，核心不强制）
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`                // 是否上架
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                         // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
