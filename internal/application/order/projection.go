package order

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// SimpleOrderDTO 订单摘要（不含明细）
type SimpleOrderDTO struct {
	OrderID     uint              `json:"order_id"`
	MemberName  string            `json:"member_name"`
	OrderDate   time.Time         `json:"order_date"`
	OrderStatus order.OrderStatus `json:"order_status"`
	Address     address.Address   `json:"address"`
}

// OrderDTO 订单详情（含明细）
type OrderDTO struct {
	OrderID     uint              `json:"order_id"`
	MemberName  string            `json:"member_name"`
	OrderDate   time.Time         `json:"order_date"`
	OrderStatus order.OrderStatus `json:"order_status"`
	Address     address.Address   `json:"address"`
	OrderItems  []OrderItemDTO    `json:"order_items"`
}

// OrderItemDTO 订单明细
type OrderItemDTO struct {
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// NewSimpleOrderDTO 实体 → 摘要DTO
// 会员、配送必须已加载，否则panic（调用方用错了加载策略，属于编程错误）
func NewSimpleOrderDTO(o *order.Order) SimpleOrderDTO {
	return SimpleOrderDTO{
		OrderID:     o.ID,
		MemberName:  o.Member.MustGet().Name,
		OrderDate:   o.OrderDate,
		OrderStatus: o.Status,
		Address:     o.Delivery.MustGet().Address,
	}
}

// NewOrderDTO 实体 → 详情DTO，明细和商品也必须已加载
func NewOrderDTO(o *order.Order) OrderDTO {
	lines := o.OrderItems.MustGet()
	items := make([]OrderItemDTO, 0, len(lines))
	for _, oi := range lines {
		items = append(items, newOrderItemDTO(oi))
	}
	return OrderDTO{
		OrderID:     o.ID,
		MemberName:  o.Member.MustGet().Name,
		OrderDate:   o.OrderDate,
		OrderStatus: o.Status,
		Address:     o.Delivery.MustGet().Address,
		OrderItems:  items,
	}
}

func newOrderItemDTO(oi order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ItemName:   oi.Item.MustGet().Name,
		OrderPrice: oi.OrderPrice,
		Count:      oi.Count,
	}
}

func simpleOrderDTOs(orders []*order.Order) []SimpleOrderDTO {
	out := make([]SimpleOrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewSimpleOrderDTO(o))
	}
	return out
}

func orderDTOs(orders []*order.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderDTO(o))
	}
	return out
}

// 投影查询的视图直接对应DTO，不经过实体

func simpleFromView(v order.OrderView) SimpleOrderDTO {
	return SimpleOrderDTO{
		OrderID:     v.OrderID,
		MemberName:  v.MemberName,
		OrderDate:   v.OrderDate,
		OrderStatus: v.Status,
		Address:     v.Address,
	}
}

func orderFromView(v order.OrderView, items []order.ItemView) OrderDTO {
	dto := OrderDTO{
		OrderID:     v.OrderID,
		MemberName:  v.MemberName,
		OrderDate:   v.OrderDate,
		OrderStatus: v.Status,
		Address:     v.Address,
		OrderItems:  make([]OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		dto.OrderItems = append(dto.OrderItems, OrderItemDTO{
			ItemName:   it.ItemName,
			OrderPrice: it.OrderPrice,
			Count:      it.Count,
		})
	}
	return dto
}
