package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// Params 一次查询的参数（由HTTP层绑定）
type Params struct {
	Search order.Search
	Page   *order.Page // 客户端没有传offset/limit时为nil
}

// Queries 各个查询方案的实现
// 每个方法对应一个接口版本，签名一致，可以直接放进路由表
type Queries struct {
	loader *Loader
	views  order.QueryRepository
}

// NewQueries 创建查询方案集合
func NewQueries(loader *Loader, views order.QueryRepository) *Queries {
	return &Queries{loader: loader, views: views}
}

// SimpleV1 直接返回实体（不推荐）
// 会员、配送逐个加载；明细未加载，序列化为null
func (q *Queries) SimpleV1(ctx context.Context, p Params) (any, error) {
	return q.loader.LoadPerRoot(ctx, p.Search, false)
}

// SimpleV2 实体转DTO，仍然是 1 + 2N 次查询
func (q *Queries) SimpleV2(ctx context.Context, p Params) (any, error) {
	orders, err := q.loader.LoadPerRoot(ctx, p.Search, false)
	if err != nil {
		return nil, err
	}
	return simpleOrderDTOs(orders), nil
}

// SimpleV3 对一连接，1次查询，可分页
func (q *Queries) SimpleV3(ctx context.Context, p Params) (any, error) {
	orders, err := q.loader.LoadWithMemberDelivery(ctx, p.Search, p.Page)
	if err != nil {
		return nil, err
	}
	return simpleOrderDTOs(orders), nil
}

// SimpleV4 DTO直查，只SELECT需要的列
func (q *Queries) SimpleV4(ctx context.Context, p Params) (any, error) {
	views, err := q.views.FindOrderViews(ctx, p.Search)
	if err != nil {
		return nil, err
	}
	out := make([]SimpleOrderDTO, 0, len(views))
	for _, v := range views {
		out = append(out, simpleFromView(v))
	}
	return out, nil
}

// OrdersV1 直接返回实体，明细和商品也逐个加载
func (q *Queries) OrdersV1(ctx context.Context, p Params) (any, error) {
	return q.loader.LoadPerRoot(ctx, p.Search, true)
}

// OrdersV2 实体转DTO，查询次数与V1相同
func (q *Queries) OrdersV2(ctx context.Context, p Params) (any, error) {
	orders, err := q.loader.LoadPerRoot(ctx, p.Search, true)
	if err != nil {
		return nil, err
	}
	return orderDTOs(orders), nil
}

// OrdersV3 对多连接，1次查询后去重
func (q *Queries) OrdersV3(ctx context.Context, p Params) (any, error) {
	orders, err := q.loader.LoadWithItems(ctx, p.Search)
	if err != nil {
		return nil, err
	}
	return orderDTOs(orders), nil
}

// OrdersV31 对一连接分页 + IN批量查明细，2次查询
func (q *Queries) OrdersV31(ctx context.Context, p Params) (any, error) {
	page := order.Page{Offset: order.DefaultOffset, Limit: order.DefaultLimit}
	if p.Page != nil {
		page = *p.Page
	}
	orders, err := q.loader.LoadPage(ctx, p.Search, page)
	if err != nil {
		return nil, err
	}
	return orderDTOs(orders), nil
}

// OrdersV4 DTO直查，订单1次 + 每个订单的明细各1次（1 + N）
func (q *Queries) OrdersV4(ctx context.Context, p Params) (any, error) {
	views, err := q.views.FindOrderViews(ctx, p.Search)
	if err != nil {
		return nil, err
	}
	out := make([]OrderDTO, 0, len(views))
	for _, v := range views {
		items, err := q.views.FindItemViews(ctx, v.OrderID)
		if err != nil {
			return nil, err
		}
		out = append(out, orderFromView(v, items))
	}
	return out, nil
}

// OrdersV5 DTO直查优化：订单1次 + 明细IN查询1次，内存中按订单ID分组
func (q *Queries) OrdersV5(ctx context.Context, p Params) (any, error) {
	views, err := q.views.FindOrderViews(ctx, p.Search)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(views))
	for i, v := range views {
		ids[i] = v.OrderID
	}

	items, err := q.views.FindItemViewsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[uint][]order.ItemView, len(views))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	out := make([]OrderDTO, 0, len(views))
	for _, v := range views {
		out = append(out, orderFromView(v, byOrder[v.OrderID]))
	}
	return out, nil
}

// OrdersV6 扁平化：1次五表连接，内存中重新分组
// 无法按订单数分页（LIMIT只能作用在明细行上）
func (q *Queries) OrdersV6(ctx context.Context, p Params) (any, error) {
	rows, err := q.views.FindFlatViews(ctx, p.Search)
	if err != nil {
		return nil, err
	}
	return RegroupFlatRows(rows), nil
}

// OrderDetail 按ID查单个订单（Search.OrderIDs 只有一个元素）
func (q *Queries) OrderDetail(ctx context.Context, p Params) (any, error) {
	orders, err := q.loader.LoadByIDs(ctx, p.Search.OrderIDs)
	if err != nil {
		return nil, err
	}
	return NewOrderDTO(orders[0]), nil
}
