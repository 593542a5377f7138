package service

// CartAction 购物车状态变更动作的封闭集合。
// 仅本包内的四种动作实现该接口，新增动作时类型开关必须同步扩展。
type CartAction interface {
	isCartAction()
}

// AddItemAction 在现有数量上累加（不存在则新建条目）
type AddItemAction struct {
	ProductID string
	Quantity  int
}

// RemoveItemAction 无条件删除条目（幂等）
type RemoveItemAction struct {
	ProductID string
}

// UpdateQtyAction 绝对设置数量；非正数等同删除
type UpdateQtyAction struct {
	ProductID string
	Quantity  int
}

// ClearAction 清空全部条目
type ClearAction struct{}

func (AddItemAction) isCartAction()    {}
func (RemoveItemAction) isCartAction() {}
func (UpdateQtyAction) isCartAction()  {}
func (ClearAction) isCartAction()      {}
