package order

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
)

// Order 订单实体（聚合根）
// 教学要点：
// 1. Member、Delivery 是对一关联，用 Ref 显式区分"已加载/未加载"
// 2. OrderItems 不存储在订单行上，是按 order_id 查询得到的派生集合
// 3. OrderItem 只持有 OrderID，订单与明细之间没有双向指针
// 4. 读接口不会修改订单，写入只发生在演示数据初始化时
type Order struct {
	ID         uint               `json:"id"`
	Member     Ref[member.Member] `json:"member"`
	Delivery   Ref[Delivery]      `json:"delivery"`
	OrderItems Many[OrderItem]    `json:"order_items"`
	OrderDate  time.Time          `json:"order_date"`
	Status     OrderStatus        `json:"status"`
}

// OrderItem 订单明细
// OrderPrice 是下单时的单价快照，商品改价不影响历史订单
type OrderItem struct {
	ID         uint           `json:"id"`
	OrderID    uint           `json:"order_id"`
	Item       Ref[item.Item] `json:"item"`
	OrderPrice int64          `json:"order_price"`
	Count      int            `json:"count"`
}

// Delivery 配送信息，与订单一对一，外键在订单上
type Delivery struct {
	ID      uint            `json:"id"`
	Address address.Address `json:"address"`
	Status  DeliveryStatus  `json:"status"`
}

// NewOrderItem 创建订单明细并扣减库存
func NewOrderItem(it *item.Item, orderPrice int64, count int) (OrderItem, error) {
	if err := it.RemoveStock(count); err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		Item:       Resolved(it.ID, it),
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

// TotalPrice 明细小计
func (oi OrderItem) TotalPrice() int64 {
	return oi.OrderPrice * int64(oi.Count)
}

// NewOrder 创建订单（工厂方法）
// 业务规则：订单至少有一条明细，配送状态初始为READY
func NewOrder(m *member.Member, addr address.Address, items []OrderItem, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrderItems
	}
	d := &Delivery{Address: addr, Status: DeliveryStatusReady}
	return &Order{
		Member:     Resolved(m.ID, m),
		Delivery:   Resolved(0, d),
		OrderItems: ResolvedMany(items),
		OrderDate:  now,
		Status:     OrderStatusOrder,
	}, nil
}

// Validate 持久化前校验
func (o *Order) Validate() error {
	if !o.OrderItems.IsResolved() || o.OrderItems.Len() == 0 {
		return ErrEmptyOrderItems
	}
	if !o.Status.IsValid() {
		return ErrInvalidOrderStatus
	}
	return nil
}

// TotalPrice 订单总价
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, oi := range o.OrderItems.MustGet() {
		total += oi.TotalPrice()
	}
	return total
}
