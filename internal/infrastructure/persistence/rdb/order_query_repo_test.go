package rdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/querystats"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb/rdbtest"
)

func mustMember(t *testing.T, name string) *member.Member {
	t.Helper()
	m, err := member.NewMember(name, address.Address{})
	require.NoError(t, err)
	return m
}

func TestOrderQueryRepository_FindOrderViews(t *testing.T) {
	db := rdbtest.Open(t)
	a, b := db.SeedTwoOrders(t)
	repo := db.Repos().Queries

	ctx, counter := querystats.WithCounter(context.Background())
	views, err := repo.FindOrderViews(ctx, order.Search{})
	require.NoError(t, err)
	assert.Equal(t, 1, counter.Count())

	require.Len(t, views, 2)
	assert.Equal(t, a.ID, views[0].OrderID)
	assert.Equal(t, "userA", views[0].MemberName)
	assert.Equal(t, order.OrderStatusOrder, views[0].Status)
	assert.Equal(t, address.New("Seoul", "1", "1111"), views[0].Address)
	assert.True(t, rdbtest.OrderDate.Equal(views[0].OrderDate))
	assert.Equal(t, b.ID, views[1].OrderID)

	filtered, err := repo.FindOrderViews(ctx, order.Search{MemberName: "userB"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, b.ID, filtered[0].OrderID)
}

func TestOrderQueryRepository_ItemViews(t *testing.T) {
	db := rdbtest.Open(t)
	a, b := db.SeedTwoOrders(t)
	repo := db.Repos().Queries
	ctx := context.Background()

	items, err := repo.FindItemViews(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []order.ItemView{
		{OrderID: a.ID, ItemName: "JPA1 BOOK", OrderPrice: 10000, Count: 1},
		{OrderID: a.ID, ItemName: "JPA2 BOOK", OrderPrice: 20000, Count: 2},
	}, items)

	ctx, counter := querystats.WithCounter(ctx)
	batch, err := repo.FindItemViewsByOrderIDs(ctx, []uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, counter.Count())
	require.Len(t, batch, 4)
	assert.Equal(t, "SPRING1 BOOK", batch[2].ItemName)

	empty, err := repo.FindItemViewsByOrderIDs(ctx, []uint{})
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 1, counter.Count())
}

func TestOrderQueryRepository_FindFlatViews(t *testing.T) {
	db := rdbtest.Open(t)
	a, b := db.SeedTwoOrders(t)
	repo := db.Repos().Queries

	ctx, counter := querystats.WithCounter(context.Background())
	rows, err := repo.FindFlatViews(ctx, order.Search{})
	require.NoError(t, err)
	assert.Equal(t, 1, counter.Count())

	require.Len(t, rows, 4)
	assert.Equal(t, []uint{a.ID, a.ID, b.ID, b.ID},
		[]uint{rows[0].OrderID, rows[1].OrderID, rows[2].OrderID, rows[3].OrderID})
	assert.Equal(t, "JPA2 BOOK", rows[1].ItemName)
	assert.Equal(t, 4, rows[3].Count)
	assert.Equal(t, "Busan", rows[3].Address.City)

	ids, err := repo.FindFlatViews(ctx, order.Search{OrderIDs: []uint{b.ID}})
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}
