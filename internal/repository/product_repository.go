package repository

import (
	"errors"

	"github.com/oceanpro/storefront/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter 商品筛选条件
type ProductFilter struct {
	CategoryID string           // 为空表示全部分类
	MinPrice   *decimal.Decimal // 价格下限（含）
	MaxPrice   *decimal.Decimal // 价格上限（含）
	ActiveOnly bool             // 仅上架商品
}

// ProductRepository 商品目录数据访问接口
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	List(filter ProductFilter) ([]models.Product, error)
	ListCategories() ([]models.Category, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByID 按商品ID查询，未找到时返回 nil
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List 按筛选条件查询商品
func (r *GormProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{}).Preload("Category")
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price_amount >= ?", filter.MinPrice.Round(2))
	}
	if filter.MaxPrice != nil {
		query = query.Where("price_amount <= ?", filter.MaxPrice.Round(2))
	}

	var products []models.Product
	if err := query.Order("sort_order asc, id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories 查询全部分类
func (r *GormProductRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
