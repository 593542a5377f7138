package service

import (
	"fmt"
	"sync"

	"github.com/oceanpro/storefront/internal/constants"
	"github.com/oceanpro/storefront/internal/logger"
	"github.com/oceanpro/storefront/internal/models"
	"github.com/oceanpro/storefront/internal/repository"
)

// CatalogService 商品目录服务。Lookup 走会话内一次性加载的快照，
// 保证同一ID在会话内返回一致结果；列表查询直接走仓库。
type CatalogService struct {
	repo repository.ProductRepository

	mu       sync.RWMutex
	loaded   bool
	snapshot map[string]models.Product
}

// NewCatalogService 创建目录服务
func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Lookup 实现购物车核心的目录查询契约；未找到返回 ok=false
func (s *CatalogService) Lookup(id string) (*models.Product, bool) {
	if !s.ensureSnapshot() {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.snapshot[id]
	if !ok {
		return nil, false
	}
	cp := product
	return &cp, true
}

// GetByID 按商品ID查询
func (s *CatalogService) GetByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListProducts 按分类与价格区间筛选上架商品
func (s *CatalogService) ListProducts(filter repository.ProductFilter) ([]models.Product, error) {
	filter.ActiveOnly = true
	products, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return products, nil
}

// ListCategories 查询全部分类
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return categories, nil
}

// StockStatus 返回商品库存状态提示
func StockStatus(p *models.Product) string {
	switch {
	case p == nil || p.Stock <= 0:
		return constants.ProductStockStatusOutOfStock
	case p.Stock <= constants.LowStockThreshold:
		return constants.ProductStockStatusLowStock
	default:
		return constants.ProductStockStatusInStock
	}
}

// ensureSnapshot 懒加载目录快照；加载失败时不标记完成，下次调用重试
func (s *CatalogService) ensureSnapshot() bool {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return true
	}
	products, err := s.repo.List(repository.ProductFilter{ActiveOnly: true})
	if err != nil {
		logger.Warnw("catalog snapshot load failed", "error", err)
		return false
	}
	snapshot := make(map[string]models.Product, len(products))
	for _, p := range products {
		snapshot[p.ID] = p
	}
	s.snapshot = snapshot
	s.loaded = true
	return true
}
