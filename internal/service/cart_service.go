package service

import (
	"context"
	"sync"

	"github.com/oceanpro/storefront/internal/constants"
	"github.com/oceanpro/storefront/internal/models"
	"github.com/oceanpro/storefront/internal/repository"
)

// CartService 购物车门面：持有当前状态，组合 reducer、派生视图与持久化。
// 支持的使用模型是单一调用方顺序操作；内部互斥锁只是误用时的兜底，
// 并发正确性与同一存储键上的多实例共存均不在承诺范围。
type CartService struct {
	mu     sync.Mutex
	state  *models.QuantityMap
	store  *repository.CartStateRepository
	lookup ProductLookup

	revision     uint64
	viewRevision uint64
	view         CartView

	asyncCh chan *models.QuantityMap
	done    chan struct{}
	closed  bool
}

// CartServiceOptions 门面构造参数
type CartServiceOptions struct {
	Store        *repository.CartStateRepository // 为空则状态仅存内存
	Lookup       ProductLookup                   // 为空则所有行均视为未解析
	AsyncPersist bool                            // 持久化写入交由后台任务
}

// NewCartService 创建购物车门面，并从持久化存储恢复初始状态
func NewCartService(opts CartServiceOptions) *CartService {
	s := &CartService{
		store:    opts.Store,
		lookup:   opts.Lookup,
		state:    models.NewQuantityMap(),
		revision: 1,
	}
	if s.store != nil {
		s.state = s.store.Load(context.Background())
	}
	if opts.AsyncPersist && s.store != nil {
		s.asyncCh = make(chan *models.QuantityMap, 1)
		s.done = make(chan struct{})
		go s.persistLoop()
	}
	return s
}

// Dispatch 应用动作：同步更新内存状态，随后尽力持久化。
// 内存更新与返回视图始终与最近一次动作一致，按派发顺序生效。
func (s *CartService) Dispatch(action CartAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = ApplyCartAction(s.state, action)
	s.revision++

	if s.store == nil {
		return
	}
	snapshot := s.state.Clone()
	if s.asyncCh == nil || s.closed {
		s.store.Save(context.Background(), snapshot)
		return
	}
	// 队列仅保留最新快照：每次写全量状态，最后写入者胜
	for {
		select {
		case s.asyncCh <- snapshot:
			return
		default:
			select {
			case <-s.asyncCh:
			default:
			}
		}
	}
}

// View 返回与最近一次 Dispatch 一致的派生视图，按状态版本惰性重建
func (s *CartService) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewRevision != s.revision {
		s.view = BuildCartView(s.state, s.lookup)
		s.viewRevision = s.revision
	}
	return s.view
}

// Snapshot 返回当前状态的副本
func (s *CartService) Snapshot() *models.QuantityMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AddItem 增加商品数量；qty 非正时不做任何事
func (s *CartService) AddItem(id string, qty int) {
	s.Dispatch(AddItemAction{ProductID: id, Quantity: qty})
}

// AddOne 增加一件商品
func (s *CartService) AddOne(id string) {
	s.AddItem(id, constants.DefaultAddQuantity)
}

// RemoveItem 删除商品条目
func (s *CartService) RemoveItem(id string) {
	s.Dispatch(RemoveItemAction{ProductID: id})
}

// UpdateQty 设置商品数量；qty 非正时等同删除
func (s *CartService) UpdateQty(id string, qty int) {
	s.Dispatch(UpdateQtyAction{ProductID: id, Quantity: qty})
}

// Clear 清空购物车
func (s *CartService) Clear() {
	s.Dispatch(ClearAction{})
}

// Close 关闭门面并等待挂起的后台持久化写完成。Close 之后不得再 Dispatch。
func (s *CartService) Close() {
	s.mu.Lock()
	if s.closed || s.asyncCh == nil {
		s.closed = true
		s.mu.Unlock()
		return
	}
	s.closed = true
	ch := s.asyncCh
	s.mu.Unlock()

	close(ch)
	<-s.done
}

func (s *CartService) persistLoop() {
	defer close(s.done)
	for state := range s.asyncCh {
		s.store.Save(context.Background(), state)
	}
}
