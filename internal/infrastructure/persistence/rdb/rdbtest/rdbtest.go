// Package rdbtest 仓储测试使用的数据库和演示数据
//
// 使用纯Go实现的SQLite（glebarez/sqlite），不需要CGO，也不需要启动MySQL。
// 每个测试一个临时文件数据库，测试之间互不影响。
package rdbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb"
)

// DB 测试数据库
type DB struct {
	Gorm *gorm.DB
	SQLX *sqlx.DB
}

// Open 创建临时SQLite数据库并迁移表结构
func Open(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bookshop.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(t, db)
}

// New 在已有连接上迁移表结构（集成测试传入PostgreSQL连接）
func New(t *testing.T, db *gorm.DB) *DB {
	t.Helper()
	require.NoError(t, rdb.Setup(db))

	x, err := rdb.NewSQLX(db)
	require.NoError(t, err)
	return &DB{Gorm: db, SQLX: x}
}

// Repositories 基于测试库的全部仓储
type Repositories struct {
	Members member.Repository
	Items   item.Repository
	Orders  order.Repository
	Queries order.QueryRepository
}

// Repos 创建仓储
func (d *DB) Repos() Repositories {
	return Repositories{
		Members: rdb.NewMemberRepository(d.Gorm),
		Items:   rdb.NewItemRepository(d.Gorm),
		Orders:  rdb.NewOrderRepository(d.Gorm),
		Queries: rdb.NewOrderQueryRepository(d.SQLX),
	}
}

// Line 下单明细：商品名、单价、数量
type Line struct {
	Name  string
	Price int64
	Count int
}

// OrderDate 演示订单的下单时间（秒级，避免不同数据库的精度差异）
var OrderDate = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

// PlaceOrder 创建会员、商品，并为该会员下一单
// 返回保存后的订单（ID已回填）
func (d *DB) PlaceOrder(t *testing.T, memberName string, addr address.Address, lines ...Line) *order.Order {
	t.Helper()
	ctx := context.Background()
	repos := d.Repos()

	m, err := member.NewMember(memberName, addr)
	require.NoError(t, err)
	require.NoError(t, repos.Members.Create(ctx, m))

	items := make([]order.OrderItem, 0, len(lines))
	for _, l := range lines {
		it, err := item.NewItem(l.Name, l.Price, 100)
		require.NoError(t, err)
		require.NoError(t, repos.Items.Create(ctx, it))

		oi, err := order.NewOrderItem(it, l.Price, l.Count)
		require.NoError(t, err)
		require.NoError(t, repos.Items.UpdateStock(ctx, it))
		items = append(items, oi)
	}

	o, err := order.NewOrder(m, addr, items, OrderDate)
	require.NoError(t, err)
	require.NoError(t, repos.Orders.Create(ctx, o))
	return o
}

// SeedAlice 会员Alice下一单，两种商品
func (d *DB) SeedAlice(t *testing.T) *order.Order {
	t.Helper()
	return d.PlaceOrder(t, "Alice", address.New("Seoul", "Gangnam-daero 1", "06000"),
		Line{Name: "JPA1 BOOK", Price: 10000, Count: 1},
		Line{Name: "JPA2 BOOK", Price: 20000, Count: 2},
	)
}

// SeedTwoOrders userA、userB各下一单，每单两种商品
func (d *DB) SeedTwoOrders(t *testing.T) (*order.Order, *order.Order) {
	t.Helper()
	a := d.PlaceOrder(t, "userA", address.New("Seoul", "1", "1111"),
		Line{Name: "JPA1 BOOK", Price: 10000, Count: 1},
		Line{Name: "JPA2 BOOK", Price: 20000, Count: 2},
	)
	b := d.PlaceOrder(t, "userB", address.New("Busan", "2", "2222"),
		Line{Name: "SPRING1 BOOK", Price: 20000, Count: 3},
		Line{Name: "SPRING2 BOOK", Price: 40000, Count: 4},
	)
	return a, b
}

// SeedLargeOrder 一单三种商品，用于验证对多连接去重
func (d *DB) SeedLargeOrder(t *testing.T) *order.Order {
	t.Helper()
	return d.PlaceOrder(t, "Carol", address.New("Incheon", "3", "3333"),
		Line{Name: "GO BOOK", Price: 30000, Count: 1},
		Line{Name: "SQL BOOK", Price: 25000, Count: 1},
		Line{Name: "HTTP BOOK", Price: 15000, Count: 2},
	)
}
