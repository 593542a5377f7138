package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/oceanpro/storefront/internal/constants"
	"github.com/oceanpro/storefront/internal/logger"
	"github.com/oceanpro/storefront/internal/models"
)

// KV 购物车状态底层键值存储契约。Get 在键不存在时返回 ok=false 而非错误。
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// CartStateRepository 购物车状态持久化适配器。
// 持久化是尽力而为的优化：读取失败回落为空状态，写入失败仅记录告警，
// 内存状态始终是会话内的唯一事实来源。
type CartStateRepository struct {
	kv  KV
	key string
}

// NewCartStateRepository 创建购物车状态仓库，key 为空时使用默认存储键
func NewCartStateRepository(kv KV, key string) *CartStateRepository {
	if strings.TrimSpace(key) == "" {
		key = constants.CartStorageKey
	}
	return &CartStateRepository{kv: kv, key: key}
}

// Key 返回使用中的存储键
func (r *CartStateRepository) Key() string {
	return r.key
}

// Load 读取购物车状态。键缺失、读取失败或数据不符合
// “字符串键到正整数”形状时一律返回空状态，从不向调用方报错。
func (r *CartStateRepository) Load(ctx context.Context) *models.QuantityMap {
	if r == nil || r.kv == nil {
		return models.NewQuantityMap()
	}
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		logger.Warnw("cart state load failed, fallback to empty", "key", r.key, "error", err)
		return models.NewQuantityMap()
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return models.NewQuantityMap()
	}
	state := models.NewQuantityMap()
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		logger.Warnw("cart state corrupted, discarded", "key", r.key, "error", err)
		return models.NewQuantityMap()
	}
	return state
}

// Save 序列化并写入购物车状态，失败仅记录告警
func (r *CartStateRepository) Save(ctx context.Context, state *models.QuantityMap) {
	if r == nil || r.kv == nil {
		return
	}
	if state == nil {
		state = models.NewQuantityMap()
	}
	payload, err := json.Marshal(state)
	if err != nil {
		logger.Warnw("cart state marshal failed, write skipped", "key", r.key, "error", err)
		return
	}
	if err := r.kv.Set(ctx, r.key, string(payload)); err != nil {
		logger.Warnw("cart state write failed, ignored", "key", r.key, "error", err)
	}
}
