package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oceanpro/storefront/internal/cache"
	"github.com/oceanpro/storefront/internal/config"
	"github.com/oceanpro/storefront/internal/constants"
	"github.com/oceanpro/storefront/internal/logger"
	"github.com/oceanpro/storefront/internal/models"
	"github.com/oceanpro/storefront/internal/repository"
	"github.com/oceanpro/storefront/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 组装购物车核心：目录 → 状态存储 → 门面
	catalog := service.NewCatalogService(repository.NewProductRepository(models.DB))
	store := repository.NewCartStateRepository(buildKV(cfg), cfg.Cart.Key)
	cart := service.NewCartService(service.CartServiceOptions{
		Store:        store,
		Lookup:       catalog,
		AsyncPersist: cfg.Cart.AsyncPersist,
	})
	defer cart.Close()

	runREPL(cart, catalog)
}

// buildKV 按配置选择购物车状态存储后端
func buildKV(cfg *config.Config) repository.KV {
	switch strings.ToLower(strings.TrimSpace(cfg.Cart.Store)) {
	case constants.CartStoreDB:
		return repository.NewGormKV(models.DB)
	case constants.CartStoreRedis:
		if err := cache.InitRedis(&cfg.Redis); err != nil || !cache.Enabled() {
			logger.Warnw("redis unavailable, fallback to file store", "error", err)
			return repository.NewFileKV(cfg.Cart.Dir)
		}
		return repository.NewRedisKV(cache.Client(), cache.Prefix())
	default:
		return repository.NewFileKV(cfg.Cart.Dir)
	}
}

func runREPL(cart *service.CartService, catalog *service.CatalogService) {
	fmt.Println("输入 help 查看可用命令")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(ansiCyan + "oceanpro> " + ansiReset)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "help":
			printHelp()
		case "categories":
			showCategories(catalog)
		case "products":
			showProducts(catalog, fields[1:])
		case "add":
			addToCart(cart, catalog, fields[1:])
		case "update":
			updateCart(cart, catalog, fields[1:])
		case "remove":
			if len(fields) < 2 {
				fmt.Println("用法: remove <product-id>")
				continue
			}
			cart.RemoveItem(fields[1])
			showCart(cart)
		case "cart":
			showCart(cart)
		case "clear":
			cart.Clear()
			fmt.Println("购物车已清空")
		case "checkout":
			checkout(cart)
		case "exit", "quit":
			return
		default:
			fmt.Printf("未知命令: %s（输入 help 查看帮助）\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println("可用命令:")
	fmt.Println("  categories                    查看分类")
	fmt.Println("  products [分类ID] [最低价] [最高价]  查看商品（可筛选）")
	fmt.Println("  add <商品ID> [数量]            加入购物车（默认 1 件）")
	fmt.Println("  update <商品ID> <数量>         设置数量（0 等同删除）")
	fmt.Println("  remove <商品ID>               移除商品")
	fmt.Println("  cart                          查看购物车")
	fmt.Println("  clear                         清空购物车")
	fmt.Println("  checkout                      结算并清空")
	fmt.Println("  exit                          退出")
}

func showCategories(catalog *service.CatalogService) {
	categories, err := catalog.ListCategories()
	if err != nil {
		fmt.Printf("分类加载失败: %v\n", err)
		return
	}
	for _, c := range categories {
		fmt.Printf("  %-8s %s\n", c.ID, c.Name)
	}
}

func showProducts(catalog *service.CatalogService, args []string) {
	filter := repository.ProductFilter{}
	if len(args) > 0 && args[0] != "-" {
		filter.CategoryID = args[0]
	}
	if len(args) > 1 {
		if min, err := decimal.NewFromString(args[1]); err == nil {
			filter.MinPrice = &min
		}
	}
	if len(args) > 2 {
		if max, err := decimal.NewFromString(args[2]); err == nil {
			filter.MaxPrice = &max
		}
	}
	products, err := catalog.ListProducts(filter)
	if err != nil {
		fmt.Printf("商品加载失败: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Println("没有符合条件的商品")
		return
	}
	for _, p := range products {
		fmt.Printf("  %-8s %-20s $%-8s 评分 %.1f  库存 %d (%s)\n",
			p.ID, p.Name, p.PriceAmount, p.Rating, p.Stock, service.StockStatus(&p))
	}
}

func addToCart(cart *service.CartService, catalog *service.CatalogService, args []string) {
	if len(args) < 1 {
		fmt.Println("用法: add <product-id> [qty]")
		return
	}
	id := args[0]
	qty := constants.DefaultAddQuantity
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed <= 0 {
			fmt.Println("数量必须是正整数")
			return
		}
		qty = parsed
	}
	current := cart.Snapshot().Quantity(id)
	delta := clampToStock(catalog, id, current+qty) - current
	if delta <= 0 {
		fmt.Println("库存不足，未加入更多数量")
		return
	}
	cart.AddItem(id, delta)
	showCart(cart)
}

func updateCart(cart *service.CartService, catalog *service.CatalogService, args []string) {
	if len(args) < 2 {
		fmt.Println("用法: update <product-id> <qty>")
		return
	}
	id := args[0]
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("数量必须是整数")
		return
	}
	if qty > 0 {
		qty = clampToStock(catalog, id, qty)
	}
	cart.UpdateQty(id, qty)
	showCart(cart)
}

// clampToStock 把目标数量限制在库存上限内（对应结算页的数量步进框行为）。
// 库存上限只是 UI 提示，核心 reducer 不做该校验。
func clampToStock(catalog *service.CatalogService, id string, target int) int {
	product, ok := catalog.Lookup(id)
	if !ok || product.Stock <= 0 {
		return target
	}
	if target > product.Stock {
		fmt.Printf("数量已按库存上限 %d 调整\n", product.Stock)
		return product.Stock
	}
	return target
}

func showCart(cart *service.CartService) {
	view := cart.View()
	if len(view.Items) == 0 {
		fmt.Println("购物车是空的")
		return
	}
	for _, line := range view.Items {
		if line.Resolved() {
			fmt.Printf("  %-8s %-20s x%-3d $%s\n", line.ProductID, line.Product.Name, line.Quantity, line.LineTotal)
		} else {
			fmt.Printf("  %-8s %-20s x%-3d %s\n", line.ProductID, "(unavailable)", line.Quantity, ansiDim+"该商品已下架"+ansiReset)
		}
	}
	fmt.Printf("  共 %d 件，小计 $%s\n", view.ItemCount, view.Subtotal)
}

func checkout(cart *service.CartService) {
	view := cart.View()
	if len(view.Items) == 0 {
		fmt.Println("购物车是空的，无法结算")
		return
	}
	showCart(cart)
	orderRef := uuid.NewString()
	cart.Clear()
	fmt.Printf("下单成功！订单号: %s\n", orderRef)
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "╔══════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiCyan + "║      🌊 OceanPro Storefront CLI      ║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiBold + "本地购物车会话，状态在重启后保留" + ansiReset)
	fmt.Println(ansiDim + "----------------------------------------" + ansiReset)
}
