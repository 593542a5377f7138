package service

import "errors"

var (
	// ErrProductNotFound 商品在目录中不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity 数量参数非法（非正整数）
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrCatalogUnavailable 目录数据源暂不可用
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
