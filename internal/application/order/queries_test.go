package order

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb/rdbtest"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// line 不同接口的返回值统一成可比较的形式
type line struct {
	Name  string
	Price int64
	Count int
}

type summary struct {
	OrderID    uint
	MemberName string
	City       string
	Lines      []line // nil 表示该版本不返回明细
}

func summarize(t *testing.T, data any) []summary {
	t.Helper()
	var out []summary
	switch v := data.(type) {
	case []*order.Order:
		for _, o := range v {
			s := summary{OrderID: o.ID, MemberName: o.Member.MustGet().Name, City: o.Delivery.MustGet().Address.City}
			if o.OrderItems.IsResolved() {
				s.Lines = []line{}
				for _, oi := range o.OrderItems.MustGet() {
					s.Lines = append(s.Lines, line{oi.Item.MustGet().Name, oi.OrderPrice, oi.Count})
				}
			}
			out = append(out, s)
		}
	case []SimpleOrderDTO:
		for _, d := range v {
			out = append(out, summary{OrderID: d.OrderID, MemberName: d.MemberName, City: d.Address.City})
		}
	case []OrderDTO:
		for _, d := range v {
			s := summary{OrderID: d.OrderID, MemberName: d.MemberName, City: d.Address.City, Lines: []line{}}
			for _, it := range d.OrderItems {
				s.Lines = append(s.Lines, line{it.ItemName, it.OrderPrice, it.Count})
			}
			out = append(out, s)
		}
	default:
		t.Fatalf("unexpected result type %T", data)
	}
	return out
}

type fixture struct {
	db       *rdbtest.DB
	selector *Selector
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := rdbtest.Open(t)
	repos := db.Repos()
	m := metrics.New(prometheus.NewRegistry())

	q := NewQueries(NewLoader(repos.Orders, repos.Members, repos.Items), repos.Queries)
	sel, err := NewSelector(Routes(q), m)
	require.NoError(t, err)
	return &fixture{db: db, selector: sel, metrics: m}
}

func TestAliceScenario_AllVariants(t *testing.T) {
	f := newFixture(t)
	o := f.db.SeedAlice(t)

	aliceLines := []line{
		{"JPA1 BOOK", 10000, 1},
		{"JPA2 BOOK", 20000, 2},
	}

	tests := []struct {
		variant    string
		roundTrips int
		withItems  bool
	}{
		{"simple-v1", 3, false}, // 订单 + 会员 + 配送
		{"simple-v2", 3, false},
		{"simple-v3", 1, false},
		{"simple-v4", 1, false},
		{"orders-v1", 6, true}, // 订单 + 会员 + 配送 + 明细 + 商品×2
		{"orders-v2", 6, true},
		{"orders-v3", 1, true},
		{"orders-v3.1", 2, true},
		{"orders-v4", 2, true}, // 1 + N，N=1
		{"orders-v5", 2, true},
		{"orders-v6", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			res, err := f.selector.Execute(context.Background(), tt.variant, Params{})
			require.NoError(t, err)
			assert.Equal(t, tt.roundTrips, res.RoundTrips)

			got := summarize(t, res.Data)
			require.Len(t, got, 1)
			assert.Equal(t, o.ID, got[0].OrderID)
			assert.Equal(t, "Alice", got[0].MemberName)
			assert.Equal(t, "Seoul", got[0].City)
			if tt.withItems {
				assert.Equal(t, aliceLines, got[0].Lines)
			} else {
				assert.Nil(t, got[0].Lines)
			}
		})
	}

	assert.Equal(t, 11, testutil.CollectAndCount(f.metrics.OrderQueryRoundTrips))
}

func TestPerRoot_IdentityMapCollapsesDuplicates(t *testing.T) {
	f := newFixture(t)
	repos := f.db.Repos()
	ctx := context.Background()

	// 同一个会员、同一本书，两个订单
	m, err := member.NewMember("Bob", address.New("Daegu", "5", "5555"))
	require.NoError(t, err)
	require.NoError(t, repos.Members.Create(ctx, m))
	book, err := item.NewItem("GO BOOK", 30000, 10)
	require.NoError(t, err)
	require.NoError(t, repos.Items.Create(ctx, book))

	for i := 0; i < 2; i++ {
		oi, err := order.NewOrderItem(book, book.Price, 1)
		require.NoError(t, err)
		o, err := order.NewOrder(m, m.Address, []order.OrderItem{oi}, rdbtest.OrderDate)
		require.NoError(t, err)
		require.NoError(t, repos.Orders.Create(ctx, o))
	}

	res, err := f.selector.Execute(ctx, "simple-v2", Params{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.RoundTrips, "订单1 + 会员1（缓存命中一次） + 配送2")

	res, err = f.selector.Execute(ctx, "orders-v2", Params{})
	require.NoError(t, err)
	assert.Equal(t, 7, res.RoundTrips, "订单1 + 会员1 + 配送2 + 明细2 + 商品1")
	assert.Len(t, res.Data.([]OrderDTO), 2)
}

func TestPagination(t *testing.T) {
	f := newFixture(t)
	a, b := f.db.SeedTwoOrders(t)
	ctx := context.Background()

	res, err := f.selector.Execute(ctx, "orders-v3.1", Params{Page: &order.Page{Offset: 0, Limit: 1}})
	require.NoError(t, err)
	got := summarize(t, res.Data)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].OrderID, "第一页是ID最小的订单")
	assert.Len(t, got[0].Lines, 2, "分页不会截断明细")
	assert.Equal(t, 2, res.RoundTrips)

	res, err = f.selector.Execute(ctx, "orders-v3.1", Params{Page: &order.Page{Offset: 1, Limit: 1}})
	require.NoError(t, err)
	got = summarize(t, res.Data)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].OrderID)

	res, err = f.selector.Execute(ctx, "orders-v3.1", Params{Page: &order.Page{Offset: 2, Limit: 100}})
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 1, res.RoundTrips, "空页不再发IN查询")

	res, err = f.selector.Execute(ctx, "orders-v3.1", Params{})
	require.NoError(t, err)
	assert.Len(t, summarize(t, res.Data), 2, "默认 offset=0 limit=100")

	res, err = f.selector.Execute(ctx, "simple-v3", Params{Page: &order.Page{Offset: 0, Limit: 1}})
	require.NoError(t, err)
	assert.Len(t, summarize(t, res.Data), 1)
}

func TestPagination_Invalid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, page := range []order.Page{{Offset: -1, Limit: 10}, {Offset: 0, Limit: 0}, {Offset: 0, Limit: order.MaxLimit + 1}} {
		_, err := f.selector.Execute(ctx, "orders-v3.1", Params{Page: &page})
		assert.ErrorIs(t, err, order.ErrInvalidPage)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestPagination_RejectedOnNonPagingVariants(t *testing.T) {
	f := newFixture(t)
	page := &order.Page{Offset: 0, Limit: 10}

	for _, r := range f.selector.Routes() {
		if r.Pagination == PaginationSupported {
			continue
		}
		t.Run(r.Name, func(t *testing.T) {
			_, err := f.selector.Execute(context.Background(), r.Name, Params{Page: page})
			assert.ErrorIs(t, err, order.ErrPaginationUnsupported)
		})
	}
}

func TestToManyJoin_Dedupe(t *testing.T) {
	f := newFixture(t)
	o := f.db.SeedLargeOrder(t)

	res, err := f.selector.Execute(context.Background(), "orders-v3", Params{})
	require.NoError(t, err)

	dtos := res.Data.([]OrderDTO)
	require.Len(t, dtos, 1, "三行连接结果去重后只剩一个订单")
	assert.Equal(t, o.ID, dtos[0].OrderID)
	assert.Len(t, dtos[0].OrderItems, 3)
}

func TestSearchFilters(t *testing.T) {
	f := newFixture(t)
	_, b := f.db.SeedTwoOrders(t)
	ctx := context.Background()

	cancel := order.OrderStatusCancel
	for _, r := range f.selector.Routes() {
		if r.Name == "order-detail" {
			continue
		}
		t.Run(r.Name, func(t *testing.T) {
			res, err := f.selector.Execute(ctx, r.Name, Params{Search: order.Search{MemberName: "userB"}})
			require.NoError(t, err)
			got := summarize(t, res.Data)
			require.Len(t, got, 1)
			assert.Equal(t, b.ID, got[0].OrderID)

			res, err = f.selector.Execute(ctx, r.Name, Params{Search: order.Search{Status: &cancel}})
			require.NoError(t, err)
			assert.Empty(t, summarize(t, res.Data))
		})
	}
}

// 会员名里的 % 和 _ 按普通字符匹配，GORM和sqlx两条路径结果一致
func TestSearchFilters_LikeWildcardsAreLiteral(t *testing.T) {
	f := newFixture(t)
	f.db.SeedTwoOrders(t)
	promo := f.db.PlaceOrder(t, "50%_off", address.New("Incheon", "3", "3333"),
		rdbtest.Line{Name: "PROMO BOOK", Price: 5000, Count: 1},
	)
	ctx := context.Background()

	tests := []struct {
		memberName string
		want       []uint
	}{
		{"_", []uint{promo.ID}},
		{"%", []uint{promo.ID}},
		{"%_", []uint{promo.ID}},
		{"user_", nil},
		{"r%", nil},
	}

	for _, r := range f.selector.Routes() {
		if r.Name == "order-detail" {
			continue
		}
		t.Run(r.Name, func(t *testing.T) {
			for _, tt := range tests {
				res, err := f.selector.Execute(ctx, r.Name, Params{Search: order.Search{MemberName: tt.memberName}})
				require.NoError(t, err)

				var ids []uint
				for _, s := range summarize(t, res.Data) {
					ids = append(ids, s.OrderID)
				}
				assert.Equal(t, tt.want, ids, "member_name=%q", tt.memberName)
			}
		})
	}
}

func TestOrderDetail(t *testing.T) {
	f := newFixture(t)
	_, b := f.db.SeedTwoOrders(t)
	ctx := context.Background()

	res, err := f.selector.Execute(ctx, "order-detail", Params{Search: order.Search{OrderIDs: []uint{b.ID}}})
	require.NoError(t, err)
	dto := res.Data.(OrderDTO)
	assert.Equal(t, "userB", dto.MemberName)
	assert.Len(t, dto.OrderItems, 2)
	assert.Equal(t, 2, res.RoundTrips)

	_, err = f.selector.Execute(ctx, "order-detail", Params{Search: order.Search{OrderIDs: []uint{999}}})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.selector.Execute(ctx, "order-detail", Params{})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestEmptyStore(t *testing.T) {
	f := newFixture(t)

	for _, r := range f.selector.Routes() {
		if r.Name == "order-detail" {
			continue
		}
		res, err := f.selector.Execute(context.Background(), r.Name, Params{})
		require.NoError(t, err, r.Name)
		assert.Empty(t, res.Data, r.Name)
	}
}

func TestStoreUnavailable(t *testing.T) {
	f := newFixture(t)
	sqlDB, err := f.db.Gorm.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	for _, name := range []string{"orders-v2", "orders-v5"} {
		_, err := f.selector.Execute(context.Background(), name, Params{})
		require.Error(t, err)
		assert.True(t, apperrors.IsStoreUnavailable(err), name)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.OrderQueryErrors.WithLabelValues("orders-v5", "50001")))
}
