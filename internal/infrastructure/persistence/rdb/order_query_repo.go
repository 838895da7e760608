package rdb

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/querystats"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// orderQueryRepository 投影查询仓储
//
// 教学要点：
// 1. 不经过ORM实体，SELECT 只取接口需要的列，结果直接映射成视图结构体
// 2. squirrel 负责拼接SQL和占位符（MySQL用?，PostgreSQL用$1）
// 3. sqlx 按 db tag 映射列，嵌套的地址用 "address.city" 形式的列别名
// 4. 绕过了GORM插件，所以每条SQL手动调用 querystats.Observe 计数
type orderQueryRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

// NewOrderQueryRepository 创建投影查询仓储
func NewOrderQueryRepository(db *sqlx.DB) order.QueryRepository {
	var placeholder sq.PlaceholderFormat = sq.Question
	switch db.DriverName() {
	case "postgres", "pgx":
		placeholder = sq.Dollar
	}
	return &orderQueryRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

var orderViewColumns = []string{
	"o.id AS order_id",
	"m.name AS member_name",
	"o.order_date AS order_date",
	"o.status AS status",
	`d.city AS "address.city"`,
	`d.street AS "address.street"`,
	`d.zipcode AS "address.zipcode"`,
}

var itemViewColumns = []string{
	"oi.order_id AS order_id",
	"i.name AS item_name",
	"oi.order_price AS order_price",
	"oi.count AS count",
}

// FindOrderViews 订单摘要
// SELECT ... FROM orders o JOIN members m JOIN deliveries d
func (r *orderQueryRepository) FindOrderViews(ctx context.Context, s order.Search) ([]order.OrderView, error) {
	b := r.sb.Select(orderViewColumns...).
		From("orders o").
		Join("members m ON m.id = o.member_id").
		Join("deliveries d ON d.id = o.delivery_id")
	b = searchWhere(b, s).OrderBy("o.id")

	views := []order.OrderView{}
	if err := r.selectViews(ctx, "order_views", &views, b); err != nil {
		return nil, err
	}
	return views, nil
}

// FindItemViews 单个订单的明细
func (r *orderQueryRepository) FindItemViews(ctx context.Context, orderID uint) ([]order.ItemView, error) {
	b := r.sb.Select(itemViewColumns...).
		From("order_items oi").
		Join("items i ON i.id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderID}).
		OrderBy("oi.id")

	views := []order.ItemView{}
	if err := r.selectViews(ctx, "item_views", &views, b); err != nil {
		return nil, err
	}
	return views, nil
}

// FindItemViewsByOrderIDs 批量查明细（IN查询），orderIDs为空时不发查询
func (r *orderQueryRepository) FindItemViewsByOrderIDs(ctx context.Context, orderIDs []uint) ([]order.ItemView, error) {
	if len(orderIDs) == 0 {
		return []order.ItemView{}, nil
	}
	b := r.itemViewsByOrderIDs(orderIDs)

	views := []order.ItemView{}
	if err := r.selectViews(ctx, "item_views_in", &views, b); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *orderQueryRepository) itemViewsByOrderIDs(orderIDs []uint) sq.SelectBuilder {
	return r.sb.Select(itemViewColumns...).
		From("order_items oi").
		Join("items i ON i.id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.order_id", "oi.id")
}

// FindFlatViews 五表连接，一次查出全部，订单字段在每行重复
func (r *orderQueryRepository) FindFlatViews(ctx context.Context, s order.Search) ([]order.FlatView, error) {
	columns := append(append([]string{}, orderViewColumns...), itemViewColumns[1:]...)
	b := r.sb.Select(columns...).
		From("orders o").
		Join("members m ON m.id = o.member_id").
		Join("deliveries d ON d.id = o.delivery_id").
		Join("order_items oi ON oi.order_id = o.id").
		Join("items i ON i.id = oi.item_id")
	b = searchWhere(b, s).OrderBy("o.id", "oi.id")

	views := []order.FlatView{}
	if err := r.selectViews(ctx, "flat_views", &views, b); err != nil {
		return nil, err
	}
	return views, nil
}

// selectViews 执行查询：一个Span，一次计数
func (r *orderQueryRepository) selectViews(ctx context.Context, name string, dest any, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return apperrors.Wrap(err, "构建SQL失败")
	}

	ctx, span := tracing.StartSpan(ctx, "sqlx.query",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.query_name", name),
			attribute.String("db.statement", query),
		),
	)
	defer span.End()

	querystats.Observe(ctx)
	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		tracing.RecordError(span, err)
		return apperrors.StoreUnavailable(err, "查询订单视图失败")
	}
	return nil
}

// searchWhere 查询条件，与GORM仓储的 applySearch 语义一致
func searchWhere(b sq.SelectBuilder, s order.Search) sq.SelectBuilder {
	if s.MemberName != "" {
		b = b.Where(sq.Expr("m.name LIKE ? ESCAPE '"+likeEscape+"'", containsPattern(s.MemberName)))
	}
	if s.Status != nil {
		b = b.Where(sq.Eq{"o.status": int(*s.Status)})
	}
	if s.HasIDs() {
		b = b.Where(sq.Eq{"o.id": s.OrderIDs})
	}
	return b
}
