package main

import (
	"log"

	"github.com/oceanpro/storefront/internal/config"
	"github.com/oceanpro/storefront/internal/logger"
	"github.com/oceanpro/storefront/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{ID: "cat-1", Slug: "apparel", Name: "Apparel", SortOrder: 1},
		{ID: "cat-2", Slug: "accessories", Name: "Accessories", SortOrder: 2},
		{ID: "cat-3", Slug: "gadgets", Name: "Gadgets", SortOrder: 3},
		{ID: "cat-4", Slug: "home", Name: "Home", SortOrder: 4},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("id = ?", cat.ID).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 添加商品
	products := []models.Product{
		{
			ID: "p-101", CategoryID: "cat-1", Slug: "ocean-tee", Name: "Ocean Tee",
			Description: "Soft cotton tee with subtle ocean gradient print. Comfortable everyday wear.",
			Image:       productImage("ocean-tee"),
			PriceAmount: mustMoney(stdLog, "24.00"), Rating: 4.6, Stock: 42, IsActive: true, SortOrder: 1,
		},
		{
			ID: "p-102", CategoryID: "cat-1", Slug: "coastal-hoodie", Name: "Coastal Hoodie",
			Description: "Midweight hoodie with warm interior lining and minimal branding.",
			Image:       productImage("coastal-hoodie"),
			PriceAmount: mustMoney(stdLog, "58.00"), Rating: 4.8, Stock: 18, IsActive: true, SortOrder: 2,
		},
		{
			ID: "p-201", CategoryID: "cat-2", Slug: "magenta-cap", Name: "Magenta Cap",
			Description: "Adjustable cap with magenta accent and breathable panels for all-day comfort.",
			Image:       productImage("magenta-cap"),
			PriceAmount: mustMoney(stdLog, "19.50"), Rating: 4.2, Stock: 65, IsActive: true, SortOrder: 3,
		},
		{
			ID: "p-202", CategoryID: "cat-2", Slug: "ocean-tote", Name: "Ocean Tote",
			Description: "Durable canvas tote bag with reinforced straps and inner pocket.",
			Image:       productImage("ocean-tote"),
			PriceAmount: mustMoney(stdLog, "16.00"), Rating: 4.4, Stock: 80, IsActive: true, SortOrder: 4,
		},
		{
			ID: "p-301", CategoryID: "cat-3", Slug: "wave-earbuds", Name: "Wave Earbuds",
			Description: "Wireless earbuds with noise isolation and 24-hour battery life in a compact case.",
			Image:       productImage("wave-earbuds"),
			PriceAmount: mustMoney(stdLog, "89.00"), Rating: 4.5, Stock: 25, IsActive: true, SortOrder: 5,
		},
		{
			ID: "p-302", CategoryID: "cat-3", Slug: "harbor-powerbank", Name: "Harbor Power Bank",
			Description: "10,000 mAh fast-charging power bank with USB-C and USB-A ports.",
			Image:       productImage("harbor-powerbank"),
			PriceAmount: mustMoney(stdLog, "39.00"), Rating: 4.1, Stock: 50, IsActive: true, SortOrder: 6,
		},
		{
			ID: "p-303", CategoryID: "cat-3", Slug: "compass-tracker", Name: "Compass Tracker",
			Description: "Minimalist activity tracker with week-long battery and water resistance.",
			Image:       productImage("compass-tracker"),
			PriceAmount: mustMoney(stdLog, "59.00"), Rating: 4.0, Stock: 40, IsActive: true, SortOrder: 7,
		},
		{
			ID: "p-401", CategoryID: "cat-4", Slug: "reef-mug", Name: "Reef Mug",
			Description: "Ceramic mug with heat-sensitive gradient and ergonomic handle.",
			Image:       productImage("reef-mug"),
			PriceAmount: mustMoney(stdLog, "14.00"), Rating: 4.7, Stock: 120, IsActive: true, SortOrder: 8,
		},
		{
			ID: "p-402", CategoryID: "cat-4", Slug: "shoreline-throw", Name: "Shoreline Throw",
			Description: "Cozy woven throw with subtle blue tones. Perfect for reading nooks.",
			Image:       productImage("shoreline-throw"),
			PriceAmount: mustMoney(stdLog, "49.00"), Rating: 4.3, Stock: 33, IsActive: true, SortOrder: 9,
		},
		{
			ID: "p-403", CategoryID: "cat-4", Slug: "tidal-lamp", Name: "Tidal Lamp",
			Description: "Ambient LED lamp with adjustable warmth and gentle diffusion.",
			Image:       productImage("tidal-lamp"),
			PriceAmount: mustMoney(stdLog, "69.00"), Rating: 4.5, Stock: 17, IsActive: true, SortOrder: 10,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("id = ?", product.ID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	stdLog.Printf("Seed finished: %d categories, %d products", len(categories), len(products))
}

func productImage(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/600/400"
}

func mustMoney(stdLog *log.Logger, s string) models.Money {
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		stdLog.Fatalf("Invalid seed price %s: %v", s, err)
	}
	return m
}
