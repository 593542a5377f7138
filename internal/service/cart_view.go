package service

import (
	"github.com/oceanpro/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// ProductLookup 商品目录只读查询契约：同一会话内同一ID必须返回一致结果
type ProductLookup interface {
	Lookup(id string) (*models.Product, bool)
}

// CartLineItem 购物车行（派生，随视图重建）
type CartLineItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *models.Product `json:"product,omitempty"` // 目录无法解析时为空
	LineTotal models.Money    `json:"line_total"`        // 未解析时为 0
}

// Resolved 商品是否仍可由目录解析
func (l CartLineItem) Resolved() bool {
	return l.Product != nil
}

// CartView 派生只读快照：行列表（插入顺序）、总件数与小计
type CartView struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  models.Money   `json:"subtotal"`
}

// BuildCartView 由状态与目录构建派生视图，无副作用。
// 行金额先各自保留 2 位小数，小计在求和后再统一 Round 一次。
// 目录中已不存在的商品仍保留为未解析行并计入件数，金额贡献为 0。
func BuildCartView(state *models.QuantityMap, lookup ProductLookup) CartView {
	view := CartView{Items: make([]CartLineItem, 0, state.Len())}
	subtotal := decimal.Zero
	for _, entry := range state.Entries() {
		line := CartLineItem{
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
			LineTotal: models.ZeroMoney(),
		}
		if lookup != nil {
			if product, ok := lookup.Lookup(entry.ProductID); ok && product != nil {
				line.Product = product
				line.LineTotal = product.PriceAmount.MulInt(entry.Quantity)
			}
		}
		view.ItemCount += entry.Quantity
		subtotal = subtotal.Add(line.LineTotal.Decimal)
		view.Items = append(view.Items, line)
	}
	view.Subtotal = models.NewMoneyFromDecimal(subtotal)
	return view
}
