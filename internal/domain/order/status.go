package order

import (
	"fmt"
	"strings"
)

// OrderStatus 订单状态
// 教学要点：数据库存int（便于索引），接口上使用 ORDER / CANCEL 字符串
type OrderStatus int

const (
	OrderStatusOrder  OrderStatus = 1 // 已下单
	OrderStatusCancel OrderStatus = 2 // 已取消
)

// String 实现Stringer接口
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusOrder:
		return "ORDER"
	case OrderStatusCancel:
		return "CANCEL"
	default:
		return fmt.Sprintf("OrderStatus(%d)", int(s))
	}
}

// IsValid 是否为已定义的状态
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusOrder || s == OrderStatusCancel
}

// MarshalText JSON中输出字符串
func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid order status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText 解析 ORDER / CANCEL（不区分大小写）
func (s *OrderStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseOrderStatus 解析订单状态
func ParseOrderStatus(v string) (OrderStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "ORDER":
		return OrderStatusOrder, nil
	case "CANCEL":
		return OrderStatusCancel, nil
	default:
		return 0, ErrInvalidOrderStatus
	}
}

// DeliveryStatus 配送状态
type DeliveryStatus int

const (
	DeliveryStatusReady DeliveryStatus = 1 // 待配送
	DeliveryStatusComp  DeliveryStatus = 2 // 已送达
)

func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryStatusReady:
		return "READY"
	case DeliveryStatusComp:
		return "COMP"
	default:
		return fmt.Sprintf("DeliveryStatus(%d)", int(s))
	}
}

// MarshalText JSON中输出字符串
func (s DeliveryStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
