package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidCartState 购物车状态序列化数据不符合“字符串键到正整数”的约定
var ErrInvalidCartState = errors.New("invalid cart state payload")

// QuantityEntry 购物车状态中的一项（商品ID + 数量）
type QuantityEntry struct {
	ProductID string
	Quantity  int
}

// QuantityMap 购物车核心状态：商品ID到正整数数量的映射，保持插入顺序。
// 不变量：所有数量严格为正；数量归零的键被移除而不是存为 0。
type QuantityMap struct {
	keys []string
	m    map[string]int
}

// NewQuantityMap 创建空状态
func NewQuantityMap() *QuantityMap {
	return &QuantityMap{m: map[string]int{}}
}

// Len 当前条目数
func (q *QuantityMap) Len() int {
	if q == nil {
		return 0
	}
	return len(q.keys)
}

// Quantity 返回指定商品的数量，不存在时为 0
func (q *QuantityMap) Quantity(id string) int {
	if q == nil {
		return 0
	}
	return q.m[id]
}

// Has 判断商品是否存在
func (q *QuantityMap) Has(id string) bool {
	if q == nil {
		return false
	}
	_, ok := q.m[id]
	return ok
}

// Set 设置商品数量；非正数等同删除。已存在的键保持原插入位置。
func (q *QuantityMap) Set(id string, qty int) {
	if qty <= 0 {
		q.Delete(id)
		return
	}
	if q.m == nil {
		q.m = map[string]int{}
	}
	if _, ok := q.m[id]; !ok {
		q.keys = append(q.keys, id)
	}
	q.m[id] = qty
}

// Delete 删除商品条目，不存在时无副作用
func (q *QuantityMap) Delete(id string) {
	if q == nil || q.m == nil {
		return
	}
	if _, ok := q.m[id]; !ok {
		return
	}
	delete(q.m, id)
	for i, key := range q.keys {
		if key == id {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
}

// Clone 深拷贝，调用方可安全修改副本
func (q *QuantityMap) Clone() *QuantityMap {
	next := NewQuantityMap()
	if q == nil {
		return next
	}
	next.keys = make([]string, len(q.keys))
	copy(next.keys, q.keys)
	for id, qty := range q.m {
		next.m[id] = qty
	}
	return next
}

// Entries 按插入顺序返回所有条目
func (q *QuantityMap) Entries() []QuantityEntry {
	if q == nil {
		return nil
	}
	entries := make([]QuantityEntry, 0, len(q.keys))
	for _, id := range q.keys {
		entries = append(entries, QuantityEntry{ProductID: id, Quantity: q.m[id]})
	}
	return entries
}

// Equal 判断两个状态是否含有相同条目与顺序
func (q *QuantityMap) Equal(other *QuantityMap) bool {
	if q.Len() != other.Len() {
		return false
	}
	a, b := q.Entries(), other.Entries()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarshalJSON 按插入顺序序列化为 {"p-101":2} 形式
func (q *QuantityMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range q.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(q.m[id]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON 严格解析“字符串键到正整数”的对象，保持文档顺序。
// 任何其他形状（数组、嵌套、浮点、非正数、非数字值）都返回错误，
// 由持久化适配层统一回落为空状态。
func (q *QuantityMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidCartState
	}

	next := NewQuantityMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return ErrInvalidCartState
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return ErrInvalidCartState
		}
		raw := num.String()
		if strings.ContainsAny(raw, ".eE") {
			return ErrInvalidCartState
		}
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			return ErrInvalidCartState
		}
		next.Set(key, qty)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return ErrInvalidCartState
	}

	*q = *next
	return nil
}
