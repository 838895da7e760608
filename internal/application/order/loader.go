package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// Loader 关联加载器
//
// 教学要点：同样是"订单 + 会员 + 配送 + 明细 + 商品"，加载方式不同，数据库往返次数差别很大
//
//	方法                     往返次数（N个订单）        分页
//	LoadPerRoot              1 + 2N（+明细、商品）      不支持
//	LoadWithMemberDelivery   1                          支持（对一连接不放大行数）
//	LoadWithItems            1                          不支持（对多连接行数放大）
//	LoadPage / LoadByIDs     2                          支持
//
// 只有Loader会把关联从"未加载"变成"已加载"，投影阶段只读不查
type Loader struct {
	orders  order.Repository
	members member.Repository
	items   item.Repository
}

// NewLoader 创建关联加载器
func NewLoader(orders order.Repository, members member.Repository, items item.Repository) *Loader {
	return &Loader{orders: orders, members: members, items: items}
}

// identityMap 一次加载内的一级缓存
// 同一个会员下了多个订单时只查一次，和ORM会话级缓存的效果一样
type identityMap struct {
	members    map[uint]*member.Member
	deliveries map[uint]*order.Delivery
	items      map[uint]*item.Item
}

func newIdentityMap() *identityMap {
	return &identityMap{
		members:    make(map[uint]*member.Member),
		deliveries: make(map[uint]*order.Delivery),
		items:      make(map[uint]*item.Item),
	}
}

// LoadPerRoot 逐个加载（N+1）
// 先查订单，再为每个订单查会员、配送；withItems为true时再查明细和每个商品
// 有意保留的反面教材：v1/v2 接口用它演示N+1
func (l *Loader) LoadPerRoot(ctx context.Context, s order.Search, withItems bool) ([]*order.Order, error) {
	roots, err := l.orders.FindAll(ctx, s)
	if err != nil {
		return nil, err
	}

	im := newIdentityMap()
	for _, o := range roots {
		if err := l.resolveMember(ctx, im, o); err != nil {
			return nil, err
		}
		if err := l.resolveDelivery(ctx, im, o); err != nil {
			return nil, err
		}
		if !withItems {
			continue
		}
		if err := l.resolveItems(ctx, im, o); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

func (l *Loader) resolveMember(ctx context.Context, im *identityMap, o *order.Order) error {
	id := o.Member.ID()
	m, ok := im.members[id]
	if !ok {
		var err error
		if m, err = l.members.FindByID(ctx, id); err != nil {
			return err
		}
		im.members[id] = m
	}
	o.Member = order.Resolved(id, m)
	return nil
}

func (l *Loader) resolveDelivery(ctx context.Context, im *identityMap, o *order.Order) error {
	id := o.Delivery.ID()
	d, ok := im.deliveries[id]
	if !ok {
		var err error
		if d, err = l.orders.FindDelivery(ctx, id); err != nil {
			return err
		}
		im.deliveries[id] = d
	}
	o.Delivery = order.Resolved(id, d)
	return nil
}

func (l *Loader) resolveItems(ctx context.Context, im *identityMap, o *order.Order) error {
	lines, err := l.orders.FindItemsByOrderID(ctx, o.ID)
	if err != nil {
		return err
	}
	for i := range lines {
		id := lines[i].Item.ID()
		it, ok := im.items[id]
		if !ok {
			if it, err = l.items.FindByID(ctx, id); err != nil {
				return err
			}
			im.items[id] = it
		}
		lines[i].Item = order.Resolved(id, it)
	}
	o.OrderItems = order.ResolvedMany(lines)
	return nil
}

// LoadWithMemberDelivery 对一连接，一次查询
// page为nil时返回全部
func (l *Loader) LoadWithMemberDelivery(ctx context.Context, s order.Search, page *order.Page) ([]*order.Order, error) {
	if page != nil {
		if err := page.Validate(); err != nil {
			return nil, err
		}
	}
	return l.orders.FindAllWithMemberDelivery(ctx, s, page)
}

// LoadWithItems 对多连接，一次查询后按订单去重
// 不接受分页：LIMIT作用在放大后的行上，会少返回订单
func (l *Loader) LoadWithItems(ctx context.Context, s order.Search) ([]*order.Order, error) {
	rows, err := l.orders.FindAllJoinedItems(ctx, s)
	if err != nil {
		return nil, err
	}
	return dedupeJoinedRows(rows), nil
}

// dedupeJoinedRows 按订单ID去重，保持订单首次出现的顺序和明细的行顺序
// 只有一条明细的订单同样合法
func dedupeJoinedRows(rows []order.JoinedRow) []*order.Order {
	index := make(map[uint]int, len(rows))
	orders := make([]*order.Order, 0)
	lines := make([][]order.OrderItem, 0)

	for _, row := range rows {
		i, ok := index[row.Order.ID]
		if !ok {
			i = len(orders)
			index[row.Order.ID] = i
			orders = append(orders, row.Order)
			lines = append(lines, nil)
		}
		lines[i] = append(lines[i], row.Item)
	}

	for i, o := range orders {
		o.OrderItems = order.ResolvedMany(lines[i])
	}
	return orders
}

// LoadPage 分页加载完整订单
// 第一次：对一连接 + LIMIT/OFFSET 取一页订单
// 第二次：明细 JOIN 商品 WHERE order_id IN (这一页的订单ID)
// 不管页大小是多少，都是两次往返
func (l *Loader) LoadPage(ctx context.Context, s order.Search, page order.Page) ([]*order.Order, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return l.loadBatched(ctx, s, &page)
}

// LoadByIDs 按ID集合加载完整订单
// ID集合为空或一个都没查到时返回 ErrOrderNotFound
func (l *Loader) LoadByIDs(ctx context.Context, ids []uint) ([]*order.Order, error) {
	if len(ids) == 0 {
		return nil, order.ErrOrderNotFound
	}
	orders, err := l.loadBatched(ctx, order.Search{OrderIDs: ids}, nil)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, order.ErrOrderNotFound
	}
	return orders, nil
}

func (l *Loader) loadBatched(ctx context.Context, s order.Search, page *order.Page) ([]*order.Order, error) {
	roots, err := l.orders.FindAllWithMemberDelivery(ctx, s, page)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return roots, nil
	}

	ids := make([]uint, len(roots))
	for i, o := range roots {
		ids[i] = o.ID
	}

	// 必须在第一次查询完成之后执行，IN列表依赖这一页的订单ID
	lines, err := l.orders.FindItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uint][]order.OrderItem, len(roots))
	for _, oi := range lines {
		byOrder[oi.OrderID] = append(byOrder[oi.OrderID], oi)
	}
	for _, o := range roots {
		o.OrderItems = order.ResolvedMany(byOrder[o.ID])
	}
	return roots, nil
}
