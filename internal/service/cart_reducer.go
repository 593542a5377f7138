package service

import (
	"github.com/oceanpro/storefront/internal/models"
)

// ApplyCartAction 纯函数式状态迁移：输入状态不被修改，返回新状态。
// 不查询商品目录，未知商品ID是合法键，留待视图层解析。
// 任何动作都不会产生非正数量的条目。
func ApplyCartAction(state *models.QuantityMap, action CartAction) *models.QuantityMap {
	if state == nil {
		state = models.NewQuantityMap()
	}
	switch a := action.(type) {
	case AddItemAction:
		// 非正数量视为无效输入，直接忽略
		if a.Quantity <= 0 {
			return state.Clone()
		}
		next := state.Clone()
		next.Set(a.ProductID, state.Quantity(a.ProductID)+a.Quantity)
		return next
	case RemoveItemAction:
		next := state.Clone()
		next.Delete(a.ProductID)
		return next
	case UpdateQtyAction:
		next := state.Clone()
		if a.Quantity <= 0 {
			next.Delete(a.ProductID)
		} else {
			next.Set(a.ProductID, a.Quantity)
		}
		return next
	case ClearAction:
		return models.NewQuantityMap()
	default:
		return state.Clone()
	}
}
