package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
)

// Search 订单查询条件，全部在SQL层过滤
type Search struct {
	MemberName string       // 会员名子串匹配，空表示不过滤
	Status     *OrderStatus // nil表示不过滤
	OrderIDs   []uint       // 非空时只查这些订单
}

// HasIDs 是否按ID集合查询
func (s Search) HasIDs() bool {
	return len(s.OrderIDs) > 0
}

// Page 分页参数
type Page struct {
	Offset int
	Limit  int
}

// 分页默认值与上限
const (
	DefaultOffset = 0
	DefaultLimit  = 100
	MaxLimit      = 1000
)

// Validate 校验分页参数
func (p Page) Validate() error {
	if p.Offset < 0 || p.Limit < 1 || p.Limit > MaxLimit {
		return ErrInvalidPage
	}
	return nil
}

// OrderView 订单摘要投影（不含明细）
// 直接由SQL查询出DTO形状，不经过实体
type OrderView struct {
	OrderID    uint            `db:"order_id"`
	MemberName string          `db:"member_name"`
	OrderDate  time.Time       `db:"order_date"`
	Status     OrderStatus     `db:"status"`
	Address    address.Address `db:"address"`
}

// ItemView 订单明细投影
type ItemView struct {
	OrderID    uint   `db:"order_id"`
	ItemName   string `db:"item_name"`
	OrderPrice int64  `db:"order_price"`
	Count      int    `db:"count"`
}

// FlatView 扁平化投影：订单字段在每条明细上重复
type FlatView struct {
	OrderID    uint            `db:"order_id"`
	MemberName string          `db:"member_name"`
	OrderDate  time.Time       `db:"order_date"`
	Status     OrderStatus     `db:"status"`
	Address    address.Address `db:"address"`
	ItemName   string          `db:"item_name"`
	OrderPrice int64           `db:"order_price"`
	Count      int             `db:"count"`
}

// QueryRepository 投影查询仓储（DTO直查）
// 与 Repository 分开：这里的结果是只读视图，不是实体
type QueryRepository interface {
	// FindOrderViews 订单 JOIN 会员 JOIN 配送，只选需要的列（1次）
	FindOrderViews(ctx context.Context, s Search) ([]OrderView, error)

	// FindItemViews 查单个订单的明细投影（1次）
	FindItemViews(ctx context.Context, orderID uint) ([]ItemView, error)

	// FindItemViewsByOrderIDs 明细投影 WHERE order_id IN (...)（1次）
	FindItemViewsByOrderIDs(ctx context.Context, orderIDs []uint) ([]ItemView, error)

	// FindFlatViews 五表连接的扁平结果（1次），按订单ID、明细ID升序
	FindFlatViews(ctx context.Context, s Search) ([]FlatView, error)
}
