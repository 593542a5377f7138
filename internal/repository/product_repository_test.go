package repository

import (
	"path/filepath"
	"testing"

	"github.com/oceanpro/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductRepo(t *testing.T) *GormProductRepository {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	categories := []models.Category{
		{ID: "cat-1", Slug: "apparel", Name: "Apparel", SortOrder: 1},
		{ID: "cat-3", Slug: "gadgets", Name: "Gadgets", SortOrder: 3},
	}
	products := []models.Product{
		{ID: "p-101", CategoryID: "cat-1", Slug: "ocean-tee", Name: "Ocean Tee", PriceAmount: mustMoney(t, "24.00"), Stock: 42, IsActive: true},
		{ID: "p-102", CategoryID: "cat-1", Slug: "coastal-hoodie", Name: "Coastal Hoodie", PriceAmount: mustMoney(t, "58.00"), Stock: 18, IsActive: true},
		{ID: "p-301", CategoryID: "cat-3", Slug: "wave-earbuds", Name: "Wave Earbuds", PriceAmount: mustMoney(t, "89.00"), Stock: 25, IsActive: true},
		{ID: "p-999", CategoryID: "cat-3", Slug: "retired-gadget", Name: "Retired Gadget", PriceAmount: mustMoney(t, "10.00"), Stock: 0, IsActive: false},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	return NewProductRepository(db)
}

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}

func TestProductGetByID(t *testing.T) {
	repo := newProductRepo(t)

	product, err := repo.GetByID("p-101")
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product == nil || product.Name != "Ocean Tee" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.PriceAmount.String() != "24.00" {
		t.Fatalf("unexpected price: %s", product.PriceAmount)
	}

	missing, err := repo.GetByID("nonexistent-id")
	if err != nil {
		t.Fatalf("get missing product failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing product, got %+v", missing)
	}
}

func TestProductListByCategory(t *testing.T) {
	repo := newProductRepo(t)

	products, err := repo.List(ProductFilter{CategoryID: "cat-1", ActiveOnly: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 apparel products, got %d", len(products))
	}
	for _, p := range products {
		if p.CategoryID != "cat-1" {
			t.Fatalf("unexpected category: %+v", p)
		}
	}
}

func TestProductListByPriceRange(t *testing.T) {
	repo := newProductRepo(t)

	min := decimal.RequireFromString("20")
	max := decimal.RequireFromString("60")
	products, err := repo.List(ProductFilter{MinPrice: &min, MaxPrice: &max, ActiveOnly: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products in [20,60], got %d", len(products))
	}
	for _, p := range products {
		if p.ID != "p-101" && p.ID != "p-102" {
			t.Fatalf("unexpected product in range: %s", p.ID)
		}
	}
}

func TestProductListActiveOnlyExcludesRetired(t *testing.T) {
	repo := newProductRepo(t)

	products, err := repo.List(ProductFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	for _, p := range products {
		if p.ID == "p-999" {
			t.Fatalf("retired product leaked into active listing")
		}
	}
}

func TestListCategoriesOrdered(t *testing.T) {
	repo := newProductRepo(t)

	categories, err := repo.ListCategories()
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != "cat-1" {
		t.Fatalf("unexpected order: %+v", categories)
	}
}
