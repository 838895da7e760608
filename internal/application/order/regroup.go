package order

import (
	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// groupKey 扁平行的分组键
// 五个字段全部相等才属于同一个订单。
// 结构体只包含可比较字段，直接作为map的key，不依赖反射。
// 时间按UnixNano比较：time.Time 的 == 会把时区指针也算进去
type groupKey struct {
	orderID    uint
	memberName string
	orderDate  int64
	status     order.OrderStatus
	address    address.Address
}

func keyOf(r order.FlatView) groupKey {
	return groupKey{
		orderID:    r.OrderID,
		memberName: r.MemberName,
		orderDate:  r.OrderDate.UnixNano(),
		status:     r.Status,
		address:    r.Address,
	}
}

// RegroupFlatRows 扁平行 → 嵌套订单
//
// 教学要点：
// 1. Go的map遍历顺序是随机的，所以用 map 记下标、切片保存结果，输出顺序 = 首次出现的顺序
// 2. 同组明细按输入行的顺序追加
// 3. 输出的订单数 = 不同分组键的个数
func RegroupFlatRows(rows []order.FlatView) []OrderDTO {
	index := make(map[groupKey]int, len(rows))
	out := make([]OrderDTO, 0)

	for _, r := range rows {
		k := keyOf(r)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, OrderDTO{
				OrderID:     r.OrderID,
				MemberName:  r.MemberName,
				OrderDate:   r.OrderDate,
				OrderStatus: r.Status,
				Address:     r.Address,
				OrderItems:  []OrderItemDTO{},
			})
		}
		out[i].OrderItems = append(out[i].OrderItems, OrderItemDTO{
			ItemName:   r.ItemName,
			OrderPrice: r.OrderPrice,
			Count:      r.Count,
		})
	}
	return out
}

// FlattenOrder RegroupFlatRows 的逆操作：一个订单 → 每条明细一行
func FlattenOrder(dto OrderDTO) []order.FlatView {
	rows := make([]order.FlatView, 0, len(dto.OrderItems))
	for _, it := range dto.OrderItems {
		rows = append(rows, order.FlatView{
			OrderID:    dto.OrderID,
			MemberName: dto.MemberName,
			OrderDate:  dto.OrderDate,
			Status:     dto.OrderStatus,
			Address:    dto.Address,
			ItemName:   it.ItemName,
			OrderPrice: it.OrderPrice,
			Count:      it.Count,
		})
	}
	return rows
}
