//go:build integration

package rdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/querystats"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb/rdbtest"
)

// PostgresSuite 在真实PostgreSQL上跑一遍仓储查询
// 运行方式：go test -tags=integration ./internal/infrastructure/persistence/rdb/...
// SQLite测试覆盖不到的点：$1占位符、带引号的别名、InnerJoins生成的 "Member" 别名
type PostgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	gdb       *gorm.DB
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("bookshop"),
		postgres.WithUsername("bookshop"),
		postgres.WithPassword("bookshop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	gdb, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.gdb = gdb
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.gdb.Exec("DROP TABLE IF EXISTS order_items, orders, deliveries, items, members CASCADE").Error)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresSuite) TestEntityQueries() {
	db := rdbtest.New(s.T(), s.gdb)
	a, b := db.SeedTwoOrders(s.T())
	repo := db.Repos().Orders

	ctx, counter := querystats.WithCounter(context.Background())
	orders, err := repo.FindAllWithMemberDelivery(ctx, order.Search{MemberName: "user"}, &order.Page{Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(b.ID, orders[0].ID)
	s.Equal("userB", orders[0].Member.MustGet().Name)

	rows, err := repo.FindAllJoinedItems(ctx, order.Search{OrderIDs: []uint{a.ID}})
	s.Require().NoError(err)
	s.Len(rows, 2)

	items, err := repo.FindItemsByOrderIDs(ctx, []uint{a.ID, b.ID})
	s.Require().NoError(err)
	s.Len(items, 4)
	s.Equal(3, counter.Count())
}

func (s *PostgresSuite) TestProjectionQueries() {
	db := rdbtest.New(s.T(), s.gdb)
	a, _ := db.SeedTwoOrders(s.T())
	repo := db.Repos().Queries

	status := order.OrderStatusOrder
	views, err := repo.FindOrderViews(context.Background(), order.Search{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal("Seoul", views[0].Address.City)
	s.True(rdbtest.OrderDate.Equal(views[0].OrderDate))

	flat, err := repo.FindFlatViews(context.Background(), order.Search{OrderIDs: []uint{a.ID}})
	s.Require().NoError(err)
	s.Len(flat, 2)

	items, err := repo.FindItemViewsByOrderIDs(context.Background(), []uint{a.ID})
	s.Require().NoError(err)
	s.Len(items, 2)
}
