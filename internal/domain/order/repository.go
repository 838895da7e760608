package order

import (
	"context"
)

// JoinedRow 一对多连接查询的一行：订单（会员、配送已加载）×一条明细（商品已加载）
// 同一订单有几条明细就会出现几行，调用方必须按订单ID去重后再使用
type JoinedRow struct {
	Order *Order
	Item  OrderItem
}

// Repository 订单仓储接口（实体方式加载）
//
// 教学要点：每个方法对应一种加载策略，方法注释写明一次调用打几次数据库
type Repository interface {
	// Create 在同一事务内写入配送、订单、明细，回填ID
	Create(ctx context.Context, o *Order) error

	// FindAll 只查订单表（1次）
	// 返回的订单 Member、Delivery 未加载，OrderItems 未加载
	FindAll(ctx context.Context, s Search) ([]*Order, error)

	// FindAllWithMemberDelivery 订单 JOIN 会员 JOIN 配送（1次）
	// 对一连接不会放大行数，可以安全地 LIMIT/OFFSET；page为nil时不分页
	FindAllWithMemberDelivery(ctx context.Context, s Search, page *Page) ([]*Order, error)

	// FindAllJoinedItems 订单 JOIN 会员 JOIN 配送 JOIN 明细 JOIN 商品（1次）
	// 每个(订单, 明细)一行，按订单ID、明细ID升序
	FindAllJoinedItems(ctx context.Context, s Search) ([]JoinedRow, error)

	// FindItemsByOrderID 查一个订单的明细（1次），Item未加载
	FindItemsByOrderID(ctx context.Context, orderID uint) ([]OrderItem, error)

	// FindItemsByOrderIDs 明细 JOIN 商品 WHERE order_id IN (...)（1次），Item已加载
	FindItemsByOrderIDs(ctx context.Context, orderIDs []uint) ([]OrderItem, error)

	// FindDelivery 按ID查配送（1次）
	FindDelivery(ctx context.Context, id uint) (*Delivery, error)
}
