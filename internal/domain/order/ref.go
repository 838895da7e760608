package order

import (
	"encoding/json"
	"fmt"
)

// 关联状态
//
// 教学要点：
// ORM的懒加载代理会在序列化时"偷偷"发起查询，或者把代理对象本身序列化出去。
// 这里把关联的状态显式化：要么 Unresolved（只知道外键ID），要么 Resolved（已加载）。
//   - 只有加载器（Loader/Repository）构造 Resolved 值
//   - 投影（DTO构造）调用 MustGet，遇到未加载的关联直接panic，属于编程错误
//   - 直接序列化实体时，未加载的关联输出 null，不会出现占位对象

// UnresolvedError 访问了未加载的关联
type UnresolvedError struct {
	Association string
	ID          uint
}

func (e *UnresolvedError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("association %s is not loaded", e.Association)
	}
	return fmt.Sprintf("association %s(id=%d) is not loaded", e.Association, e.ID)
}

// Ref 对一关联
type Ref[T any] struct {
	id    uint
	value *T
}

// Unresolved 只有外键的引用
func Unresolved[T any](id uint) Ref[T] {
	return Ref[T]{id: id}
}

// Resolved 已加载的引用，v不能为nil
func Resolved[T any](id uint, v *T) Ref[T] {
	if v == nil {
		panic(fmt.Sprintf("order: Resolved(%d) called with nil %T", id, v))
	}
	return Ref[T]{id: id, value: v}
}

// ID 外键ID，未加载时也可用
func (r Ref[T]) ID() uint {
	return r.id
}

// IsResolved 是否已加载
func (r Ref[T]) IsResolved() bool {
	return r.value != nil
}

// Get 已加载时返回值和true
func (r Ref[T]) Get() (*T, bool) {
	return r.value, r.value != nil
}

// MustGet 返回已加载的值，未加载时panic
func (r Ref[T]) MustGet() *T {
	if r.value == nil {
		panic(&UnresolvedError{Association: typeName[T](), ID: r.id})
	}
	return r.value
}

// MarshalJSON 未加载时输出null
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

// Many 对多关联
// 订单明细不存储在订单行上，由显式查询得到，这里只是查询结果的容器
type Many[T any] struct {
	items    []T
	resolved bool
}

// UnresolvedMany 未加载的集合
func UnresolvedMany[T any]() Many[T] {
	return Many[T]{}
}

// ResolvedMany 已加载的集合（可以为空）
func ResolvedMany[T any](items []T) Many[T] {
	if items == nil {
		items = []T{}
	}
	return Many[T]{items: items, resolved: true}
}

// IsResolved 是否已加载
func (m Many[T]) IsResolved() bool {
	return m.resolved
}

// MustGet 返回集合，未加载时panic
func (m Many[T]) MustGet() []T {
	if !m.resolved {
		panic(&UnresolvedError{Association: "[]" + typeName[T]()})
	}
	return m.items
}

// Len 未加载时为0
func (m Many[T]) Len() int {
	return len(m.items)
}

// MarshalJSON 未加载时输出null
func (m Many[T]) MarshalJSON() ([]byte, error) {
	if !m.resolved {
		return []byte("null"), nil
	}
	return json.Marshal(m.items)
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
