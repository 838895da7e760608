// Package seed 写入演示数据
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// Transactor 事务执行器（rdb.TxManager 实现）
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DemoSeeder 演示数据：两个会员、四本书、两个订单
type DemoSeeder struct {
	tx      Transactor
	members member.Repository
	items   item.Repository
	orders  order.Repository
	now     func() time.Time
}

// NewDemoSeeder 创建演示数据初始化器
func NewDemoSeeder(tx Transactor, members member.Repository, items item.Repository, orders order.Repository) *DemoSeeder {
	return &DemoSeeder{tx: tx, members: members, items: items, orders: orders, now: time.Now}
}

type book struct {
	name  string
	price int64
	count int
}

type demoOrder struct {
	member string
	addr   address.Address
	books  []book
}

var demoOrders = []demoOrder{
	{
		member: "userA",
		addr:   address.New("Seoul", "1", "1111"),
		books:  []book{{"JPA1 BOOK", 10000, 1}, {"JPA2 BOOK", 20000, 2}},
	},
	{
		member: "userB",
		addr:   address.New("Busan", "2", "2222"),
		books:  []book{{"SPRING1 BOOK", 20000, 3}, {"SPRING2 BOOK", 40000, 4}},
	},
}

// Run 写入演示数据，已有会员时跳过
// 所有写操作在一个事务里，任何一步失败都整体回滚
func (s *DemoSeeder) Run(ctx context.Context) error {
	existing, err := s.members.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.InfoContext(ctx, "已有数据，跳过演示数据初始化", slog.Int("members", len(existing)))
		return nil
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		for _, d := range demoOrders {
			if err := s.placeOrder(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "演示数据初始化完成", slog.Int("orders", len(demoOrders)))
	return nil
}

func (s *DemoSeeder) placeOrder(ctx context.Context, d demoOrder) error {
	m, err := member.NewMember(d.member, d.addr)
	if err != nil {
		return err
	}
	if err := s.members.Create(ctx, m); err != nil {
		return err
	}

	lines := make([]order.OrderItem, 0, len(d.books))
	for _, b := range d.books {
		it, err := item.NewItem(b.name, b.price, 100)
		if err != nil {
			return err
		}
		if err := s.items.Create(ctx, it); err != nil {
			return err
		}

		oi, err := order.NewOrderItem(it, b.price, b.count)
		if err != nil {
			return err
		}
		if err := s.items.UpdateStock(ctx, it); err != nil {
			return err
		}
		lines = append(lines, oi)
	}

	o, err := order.NewOrder(m, d.addr, lines, s.now())
	if err != nil {
		return err
	}
	return s.orders.Create(ctx, o)
}
