package order

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/querystats"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// Strategy 一种查询方案
type Strategy func(ctx context.Context, p Params) (any, error)

// Pagination 分页策略
type Pagination int

const (
	// PaginationRejected 带offset/limit的请求直接返回参数错误
	PaginationRejected Pagination = iota
	// PaginationSupported 接受offset/limit
	PaginationSupported
)

// Route 路由表的一行：接口版本 → 查询方案
type Route struct {
	Name       string
	Path       string
	Pagination Pagination
	Strategy   Strategy
}

// Routes 全部接口版本
// 设计说明：静态分发表在启动时构造并注入，不是全局可变状态
func Routes(q *Queries) []Route {
	return []Route{
		{Name: "simple-v1", Path: "/api/v1/simple-orders", Strategy: q.SimpleV1},
		{Name: "simple-v2", Path: "/api/v2/simple-orders", Strategy: q.SimpleV2},
		{Name: "simple-v3", Path: "/api/v3/simple-orders", Pagination: PaginationSupported, Strategy: q.SimpleV3},
		{Name: "simple-v4", Path: "/api/v4/simple-orders", Strategy: q.SimpleV4},
		{Name: "orders-v1", Path: "/api/v1/orders", Strategy: q.OrdersV1},
		{Name: "orders-v2", Path: "/api/v2/orders", Strategy: q.OrdersV2},
		{Name: "orders-v3", Path: "/api/v3/orders", Strategy: q.OrdersV3},
		{Name: "orders-v3.1", Path: "/api/v3.1/orders", Pagination: PaginationSupported, Strategy: q.OrdersV31},
		{Name: "orders-v4", Path: "/api/v4/orders", Strategy: q.OrdersV4},
		{Name: "orders-v5", Path: "/api/v5/orders", Strategy: q.OrdersV5},
		{Name: "orders-v6", Path: "/api/v6/orders", Strategy: q.OrdersV6},
		{Name: "order-detail", Path: "/api/v2/orders/:id", Strategy: q.OrderDetail},
	}
}

// Result 查询结果
type Result struct {
	Data       any
	RoundTrips int // 本次请求的数据库往返次数
}

// Selector 按接口版本分发查询
type Selector struct {
	routes  []Route
	byName  map[string]Route
	metrics *metrics.Metrics
}

// NewSelector 创建分发器，名称或路径重复时返回错误
func NewSelector(routes []Route, m *metrics.Metrics) (*Selector, error) {
	byName := make(map[string]Route, len(routes))
	paths := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if r.Strategy == nil {
			return nil, fmt.Errorf("查询方案 %s 没有实现", r.Name)
		}
		if _, dup := byName[r.Name]; dup {
			return nil, fmt.Errorf("重复的查询方案: %s", r.Name)
		}
		if _, dup := paths[r.Path]; dup {
			return nil, fmt.Errorf("重复的路由: %s", r.Path)
		}
		byName[r.Name] = r
		paths[r.Path] = struct{}{}
	}
	return &Selector{routes: routes, byName: byName, metrics: m}, nil
}

// Routes 返回路由表（HTTP层据此注册路由）
func (s *Selector) Routes() []Route {
	return s.routes
}

// Execute 执行指定版本的查询
// 教学要点：
// 1. 每次执行在context上挂一个新的计数器，GORM插件和sqlx仓储都往里记数
// 2. 往返次数同时写入响应头、Prometheus直方图和Span属性，方便对比各个版本
func (s *Selector) Execute(ctx context.Context, name string, p Params) (*Result, error) {
	route, ok := s.byName[name]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "未知的查询方案: %s", name)
	}
	if p.Page != nil && route.Pagination == PaginationRejected {
		return nil, order.ErrPaginationUnsupported
	}

	ctx, counter := querystats.WithCounter(ctx)
	ctx, span := tracing.StartSpan(ctx, "order.query "+name)
	defer span.End()

	start := time.Now()
	data, err := route.Strategy(ctx, p)
	elapsed := time.Since(start)
	trips := counter.Count()

	span.SetAttributes(
		attribute.String("order.variant", name),
		attribute.Int("db.round_trips", trips),
	)
	s.observe(name, trips, elapsed, err)

	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	slog.DebugContext(ctx, "订单查询完成",
		slog.String("variant", name),
		slog.Int("round_trips", trips),
		slog.Duration("elapsed", elapsed),
	)
	return &Result{Data: data, RoundTrips: trips}, nil
}

func (s *Selector) observe(name string, trips int, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	if err != nil {
		code := apperrors.GetAppError(err).Code
		s.metrics.OrderQueryErrors.WithLabelValues(name, strconv.Itoa(code)).Inc()
		return
	}
	s.metrics.OrderQueryRoundTrips.WithLabelValues(name).Observe(float64(trips))
	s.metrics.OrderQueryDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
