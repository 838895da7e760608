package rdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/item"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// orderRepository 订单仓储实现
//
// 教学要点：
// 1. 每个查询方法只发一条SQL，往返次数由调用方（加载器）组合决定
// 2. 对一关联用 InnerJoins（GORM会把关联表的列以 "Member__name" 形式带回来）
// 3. 对多连接的结果行数会放大，这里只负责原样返回，不做去重
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
// 写入顺序：配送 → 订单 → 明细，全部在一个事务里
// 外层已经开启事务时（TxManager），GORM使用SavePoint嵌套
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	d, ok := o.Delivery.Get()
	if !ok {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "订单缺少配送信息")
	}

	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		dm := &DeliveryModel{Address: addressColumns(d.Address), Status: int(d.Status)}
		if err := tx.Create(dm).Error; err != nil {
			return apperrors.StoreUnavailable(err, "创建配送失败")
		}

		om := &OrderModel{
			MemberID:   o.Member.ID(),
			DeliveryID: dm.ID,
			OrderDate:  o.OrderDate,
			Status:     int(o.Status),
		}
		if err := tx.Omit(clause.Associations).Create(om).Error; err != nil {
			return apperrors.StoreUnavailable(err, "创建订单失败")
		}

		items := o.OrderItems.MustGet()
		models := make([]OrderItemModel, len(items))
		for i, oi := range items {
			models[i] = OrderItemModel{
				OrderID:    om.ID,
				ItemID:     oi.Item.ID(),
				OrderPrice: oi.OrderPrice,
				Count:      oi.Count,
			}
		}
		if err := tx.Omit(clause.Associations).Create(&models).Error; err != nil {
			return apperrors.StoreUnavailable(err, "创建订单明细失败")
		}

		// 回填ID，关联保持原有的加载状态
		saved := make([]order.OrderItem, len(items))
		for i, oi := range items {
			oi.ID = models[i].ID
			oi.OrderID = om.ID
			saved[i] = oi
		}
		o.ID = om.ID
		o.Delivery = order.Resolved(dm.ID, &order.Delivery{ID: dm.ID, Address: d.Address, Status: d.Status})
		o.OrderItems = order.ResolvedMany(saved)
		return nil
	})
}

// FindAll 只查订单表
// 按会员名过滤时需要连接会员表，但只取订单列，会员仍然是未加载状态
func (r *orderRepository) FindAll(ctx context.Context, s order.Search) ([]*order.Order, error) {
	q := conn(ctx, r.db).Model(&OrderModel{})
	if s.MemberName != "" {
		q = q.Joins("JOIN members ON members.id = orders.member_id")
	}
	q = applySearch(q, s, "orders", "members")

	var models []OrderModel
	if err := q.Order("orders.id").Find(&models).Error; err != nil {
		return nil, apperrors.StoreUnavailable(err, "查询订单失败")
	}

	out := make([]*order.Order, 0, len(models))
	for i := range models {
		m := &models[i]
		out = append(out, &order.Order{
			ID:         m.ID,
			Member:     order.Unresolved[member.Member](m.MemberID),
			Delivery:   order.Unresolved[order.Delivery](m.DeliveryID),
			OrderItems: order.UnresolvedMany[order.OrderItem](),
			OrderDate:  m.OrderDate,
			Status:     order.OrderStatus(m.Status),
		})
	}
	return out, nil
}

// FindAllWithMemberDelivery 对一连接
// SQL: SELECT orders.*, Member.*, Delivery.* FROM orders
//
//	INNER JOIN members Member ON ... INNER JOIN deliveries Delivery ON ...
func (r *orderRepository) FindAllWithMemberDelivery(ctx context.Context, s order.Search, page *order.Page) ([]*order.Order, error) {
	q := conn(ctx, r.db).
		InnerJoins("Member").
		InnerJoins("Delivery")
	q = applySearch(q, s, "orders", "Member")
	q = q.Order("orders.id")
	if page != nil {
		q = q.Offset(page.Offset).Limit(page.Limit)
	}

	var models []OrderModel
	if err := q.Find(&models).Error; err != nil {
		return nil, apperrors.StoreUnavailable(err, "查询订单失败")
	}

	out := make([]*order.Order, 0, len(models))
	for i := range models {
		out = append(out, toJoinedOrder(&models[i]))
	}
	return out, nil
}

// joinedItemRow 五表连接的一行
type joinedItemRow struct {
	OrderID         uint
	OrderDate       time.Time
	OrderStatus     int
	MemberID        uint
	MemberName      string
	MemberCity      string
	MemberStreet    string
	MemberZipcode   string
	DeliveryID      uint
	DeliveryCity    string
	DeliveryStreet  string
	DeliveryZipcode string
	DeliveryStatus  int
	OrderItemID     uint
	OrderPrice      int64
	Count           int
	ItemID          uint
	ItemName        string
	ItemPrice       int64
	ItemStock       int
}

const joinedItemColumns = `o.id AS order_id, o.order_date AS order_date, o.status AS order_status,
m.id AS member_id, m.name AS member_name, m.city AS member_city, m.street AS member_street, m.zipcode AS member_zipcode,
d.id AS delivery_id, d.city AS delivery_city, d.street AS delivery_street, d.zipcode AS delivery_zipcode, d.status AS delivery_status,
oi.id AS order_item_id, oi.order_price AS order_price, oi.count AS count,
i.id AS item_id, i.name AS item_name, i.price AS item_price, i.stock_quantity AS item_stock`

// FindAllJoinedItems 对多连接
// 一个订单有N条明细就返回N行，订单、会员、配送的数据在每行上重复
func (r *orderRepository) FindAllJoinedItems(ctx context.Context, s order.Search) ([]order.JoinedRow, error) {
	q := conn(ctx, r.db).
		Table("orders o").
		Select(joinedItemColumns).
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Joins("JOIN order_items oi ON oi.order_id = o.id").
		Joins("JOIN items i ON i.id = oi.item_id")
	q = applySearch(q, s, "o", "m")

	var rows []joinedItemRow
	if err := q.Order("o.id").Order("oi.id").Scan(&rows).Error; err != nil {
		return nil, apperrors.StoreUnavailable(err, "查询订单明细失败")
	}

	out := make([]order.JoinedRow, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		m := &member.Member{
			ID:      row.MemberID,
			Name:    row.MemberName,
			Address: address.New(row.MemberCity, row.MemberStreet, row.MemberZipcode),
		}
		d := &order.Delivery{
			ID:      row.DeliveryID,
			Address: address.New(row.DeliveryCity, row.DeliveryStreet, row.DeliveryZipcode),
			Status:  order.DeliveryStatus(row.DeliveryStatus),
		}
		it := &item.Item{
			ID:            row.ItemID,
			Name:          row.ItemName,
			Price:         row.ItemPrice,
			StockQuantity: row.ItemStock,
		}
		out = append(out, order.JoinedRow{
			Order: &order.Order{
				ID:         row.OrderID,
				Member:     order.Resolved(m.ID, m),
				Delivery:   order.Resolved(d.ID, d),
				OrderItems: order.UnresolvedMany[order.OrderItem](),
				OrderDate:  row.OrderDate,
				Status:     order.OrderStatus(row.OrderStatus),
			},
			Item: order.OrderItem{
				ID:         row.OrderItemID,
				OrderID:    row.OrderID,
				Item:       order.Resolved(it.ID, it),
				OrderPrice: row.OrderPrice,
				Count:      row.Count,
			},
		})
	}
	return out, nil
}

// FindItemsByOrderID 查一个订单的明细，商品未加载
func (r *orderRepository) FindItemsByOrderID(ctx context.Context, orderID uint) ([]order.OrderItem, error) {
	var models []OrderItemModel
	err := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.StoreUnavailable(err, "查询订单明细失败")
	}

	out := make([]order.OrderItem, 0, len(models))
	for i := range models {
		m := &models[i]
		out = append(out, order.OrderItem{
			ID:         m.ID,
			OrderID:    m.OrderID,
			Item:       order.Unresolved[item.Item](m.ItemID),
			OrderPrice: m.OrderPrice,
			Count:      m.Count,
		})
	}
	return out, nil
}

// FindItemsByOrderIDs 批量查明细（IN查询），商品通过 InnerJoins 一并加载
// orderIDs为空时不发查询
func (r *orderRepository) FindItemsByOrderIDs(ctx context.Context, orderIDs []uint) ([]order.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []order.OrderItem{}, nil
	}

	var models []OrderItemModel
	err := conn(ctx, r.db).
		InnerJoins("Item").
		Where(clause.IN{
			Column: clause.Column{Table: "order_items", Name: "order_id"},
			Values: uintsToAny(orderIDs),
		}).
		Order("order_items.order_id").
		Order("order_items.id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.StoreUnavailable(err, "批量查询订单明细失败")
	}

	out := make([]order.OrderItem, 0, len(models))
	for i := range models {
		m := &models[i]
		it := toItemEntity(&m.Item)
		out = append(out, order.OrderItem{
			ID:         m.ID,
			OrderID:    m.OrderID,
			Item:       order.Resolved(it.ID, it),
			OrderPrice: m.OrderPrice,
			Count:      m.Count,
		})
	}
	return out, nil
}

// FindDelivery 按ID查配送
func (r *orderRepository) FindDelivery(ctx context.Context, id uint) (*order.Delivery, error) {
	var model DeliveryModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "配送信息不存在")
		}
		return nil, apperrors.StoreUnavailable(err, "查询配送失败")
	}
	return toDeliveryEntity(&model), nil
}

func toDeliveryEntity(m *DeliveryModel) *order.Delivery {
	return &order.Delivery{
		ID:      m.ID,
		Address: m.Address.toValue(),
		Status:  order.DeliveryStatus(m.Status),
	}
}

// toJoinedOrder 对一连接的结果，会员和配送已加载，明细未加载
func toJoinedOrder(m *OrderModel) *order.Order {
	mem := toMemberEntity(&m.Member)
	d := toDeliveryEntity(&m.Delivery)
	return &order.Order{
		ID:         m.ID,
		Member:     order.Resolved(mem.ID, mem),
		Delivery:   order.Resolved(d.ID, d),
		OrderItems: order.UnresolvedMany[order.OrderItem](),
		OrderDate:  m.OrderDate,
		Status:     order.OrderStatus(m.Status),
	}
}
