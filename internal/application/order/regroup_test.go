package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

var orderDate = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func flat(id uint, name, itemName string, price int64, count int) order.FlatView {
	return order.FlatView{
		OrderID:    id,
		MemberName: name,
		OrderDate:  orderDate,
		Status:     order.OrderStatusOrder,
		Address:    address.New("Seoul", "1", "1111"),
		ItemName:   itemName,
		OrderPrice: price,
		Count:      count,
	}
}

func TestRegroupFlatRows(t *testing.T) {
	rows := []order.FlatView{
		flat(1, "userA", "JPA1 BOOK", 10000, 1),
		flat(1, "userA", "JPA2 BOOK", 20000, 2),
		flat(2, "userB", "SPRING1 BOOK", 20000, 3),
		flat(2, "userB", "SPRING2 BOOK", 40000, 4),
	}

	got := RegroupFlatRows(rows)
	require.Len(t, got, 2)

	assert.Equal(t, uint(1), got[0].OrderID)
	assert.Equal(t, []OrderItemDTO{
		{ItemName: "JPA1 BOOK", OrderPrice: 10000, Count: 1},
		{ItemName: "JPA2 BOOK", OrderPrice: 20000, Count: 2},
	}, got[0].OrderItems)
	assert.Equal(t, uint(2), got[1].OrderID)
	assert.Equal(t, "SPRING2 BOOK", got[1].OrderItems[1].ItemName)
}

func TestRegroupFlatRows_FirstAppearanceOrder(t *testing.T) {
	// 同一订单的行不连续时也要合并，输出顺序按首次出现
	rows := []order.FlatView{
		flat(9, "z", "a", 1, 1),
		flat(3, "y", "b", 1, 1),
		flat(9, "z", "c", 1, 1),
		flat(5, "x", "d", 1, 1),
		flat(3, "y", "e", 1, 1),
	}

	got := RegroupFlatRows(rows)
	require.Len(t, got, 3)
	assert.Equal(t, []uint{9, 3, 5}, []uint{got[0].OrderID, got[1].OrderID, got[2].OrderID})
	assert.Equal(t, "a", got[0].OrderItems[0].ItemName)
	assert.Equal(t, "c", got[0].OrderItems[1].ItemName)
	assert.Equal(t, "e", got[1].OrderItems[1].ItemName)

	// 多次执行结果一致（不受map遍历顺序影响）
	for i := 0; i < 20; i++ {
		assert.Equal(t, got, RegroupFlatRows(rows))
	}
}

func TestRegroupFlatRows_GroupCountEqualsDistinctKeys(t *testing.T) {
	base := flat(1, "userA", "JPA1 BOOK", 10000, 1)

	differentAddress := base
	differentAddress.Address = address.New("Busan", "1", "1111")

	differentStatus := base
	differentStatus.Status = order.OrderStatusCancel

	differentDate := base
	differentDate.OrderDate = orderDate.Add(time.Second)

	sameInstantOtherZone := base
	sameInstantOtherZone.OrderDate = orderDate.In(time.FixedZone("KST", 9*3600))
	sameInstantOtherZone.ItemName = "JPA2 BOOK"

	rows := []order.FlatView{base, differentAddress, differentStatus, differentDate, sameInstantOtherZone}

	distinct := make(map[groupKey]struct{})
	for _, r := range rows {
		distinct[keyOf(r)] = struct{}{}
	}

	got := RegroupFlatRows(rows)
	assert.Len(t, got, len(distinct))
	assert.Len(t, got, 4, "同一时刻不同时区视为同一时间")
	assert.Len(t, got[0].OrderItems, 2)
}

func TestRegroupFlatRows_Singletons(t *testing.T) {
	got := RegroupFlatRows([]order.FlatView{flat(1, "solo", "ONLY BOOK", 500, 1)})
	require.Len(t, got, 1)
	assert.Len(t, got[0].OrderItems, 1)

	assert.Empty(t, RegroupFlatRows(nil))
	assert.NotNil(t, RegroupFlatRows(nil))
}

func TestFlattenRegroup_RoundTrip(t *testing.T) {
	alice := &member.Member{ID: 1, Name: "Alice"}
	books := []*item.Item{
		{ID: 10, Name: "JPA1 BOOK", Price: 10000},
		{ID: 11, Name: "JPA2 BOOK", Price: 20000},
		{ID: 10, Name: "JPA1 BOOK", Price: 10000},
	}
	lines := make([]order.OrderItem, 0, len(books))
	for i, b := range books {
		lines = append(lines, order.OrderItem{
			ID:         uint(100 + i),
			OrderID:    7,
			Item:       order.Resolved(b.ID, b),
			OrderPrice: b.Price,
			Count:      i + 1,
		})
	}
	o := &order.Order{
		ID:         7,
		Member:     order.Resolved(alice.ID, alice),
		Delivery:   order.Resolved(3, &order.Delivery{ID: 3, Address: address.New("Seoul", "1", "1111")}),
		OrderItems: order.ResolvedMany(lines),
		OrderDate:  orderDate,
		Status:     order.OrderStatusOrder,
	}

	projected := NewOrderDTO(o)
	regrouped := RegroupFlatRows(FlattenOrder(projected))

	require.Len(t, regrouped, 1)
	assert.Equal(t, projected, regrouped[0])
}

func TestDedupeJoinedRows(t *testing.T) {
	alice := &member.Member{ID: 1, Name: "Alice"}
	newRow := func(orderID, itemID uint, name string) order.JoinedRow {
		it := &item.Item{ID: itemID, Name: name}
		return order.JoinedRow{
			Order: &order.Order{
				ID:       orderID,
				Member:   order.Resolved(alice.ID, alice),
				Delivery: order.Resolved(orderID, &order.Delivery{ID: orderID}),
			},
			Item: order.OrderItem{ID: itemID, OrderID: orderID, Item: order.Resolved(itemID, it), Count: 1},
		}
	}

	rows := []order.JoinedRow{
		newRow(1, 10, "a"),
		newRow(1, 11, "b"),
		newRow(1, 12, "c"),
		newRow(2, 13, "d"),
	}

	got := dedupeJoinedRows(rows)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	require.Equal(t, 3, got[0].OrderItems.Len())
	assert.Equal(t, "c", got[0].OrderItems.MustGet()[2].Item.MustGet().Name)
	assert.Equal(t, 1, got[1].OrderItems.Len(), "单条明细的订单同样保留")

	assert.Empty(t, dedupeJoinedRows(nil))
}

func TestProjection_PanicsOnUnresolved(t *testing.T) {
	o := &order.Order{
		ID:         1,
		Member:     order.Unresolved[member.Member](1),
		Delivery:   order.Unresolved[order.Delivery](1),
		OrderItems: order.UnresolvedMany[order.OrderItem](),
	}

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		_, ok := rec.(*order.UnresolvedError)
		assert.True(t, ok)
	}()
	NewSimpleOrderDTO(o)
}

func TestProjection_Deterministic(t *testing.T) {
	alice := &member.Member{ID: 1, Name: "Alice"}
	o := &order.Order{
		ID:         1,
		Member:     order.Resolved(alice.ID, alice),
		Delivery:   order.Resolved(1, &order.Delivery{ID: 1, Address: address.New("Seoul", "1", "1111")}),
		OrderItems: order.ResolvedMany[order.OrderItem](nil),
		OrderDate:  orderDate,
		Status:     order.OrderStatusCancel,
	}

	first := NewOrderDTO(o)
	assert.Equal(t, first, NewOrderDTO(o))
	assert.Equal(t, order.OrderStatusCancel, first.OrderStatus)
	assert.NotNil(t, first.OrderItems)
	assert.Equal(t, SimpleOrderDTO{
		OrderID:     1,
		MemberName:  "Alice",
		OrderDate:   orderDate,
		OrderStatus: order.OrderStatusCancel,
		Address:     address.New("Seoul", "1", "1111"),
	}, NewSimpleOrderDTO(o))
}
