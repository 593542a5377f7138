package constants

// 购物车持久化常量
const (
	CartStorageKey = "oceanpro.cart.v1"
)

// 购物车存储后端常量
const (
	CartStoreFile  = "file"
	CartStoreDB    = "db"
	CartStoreRedis = "redis"
)

// 购物车默认行为常量
const (
	DefaultAddQuantity = 1
)

// 商品库存状态常量
const (
	ProductStockStatusInStock    = "in_stock"
	ProductStockStatusLowStock   = "low_stock"
	ProductStockStatusOutOfStock = "out_of_stock"
)

// 低库存阈值
const (
	LowStockThreshold = 5
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "op"
)
