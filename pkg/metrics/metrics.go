// Package metrics 基于Prometheus的指标收集
//
// 教学要点：
// 1. Counter 只增不减（请求总数、事件发布数）
// 2. Gauge 可增可减（处理中的请求数）
// 3. Histogram 观测分布（请求耗时、每次请求的SQL往返次数）
//
// 本项目最关心的指标是 order_query_round_trips：
// 同一份数据，不同查询方案各自打了多少次数据库，N+1 一眼可见。
//
// 指标注册到调用方传入的 Registerer，测试时用独立的 Registry，
// 避免全局默认Registry重复注册 panic。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookshop"

// Metrics 应用指标集合
type Metrics struct {
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// 订单查询方案
	OrderQueryRoundTrips *prometheus.HistogramVec
	OrderQueryDuration   *prometheus.HistogramVec
	OrderQueryErrors     *prometheus.CounterVec

	// 会员事件
	MessagesPublishedTotal *prometheus.CounterVec
}

// New 创建并注册全部指标
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP请求耗时",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_progress",
				Help:      "正在处理的HTTP请求数",
			},
		),
		OrderQueryRoundTrips: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_query_round_trips",
				Help:      "每次订单查询的数据库往返次数",
				Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100, 200},
			},
			[]string{"variant"},
		),
		OrderQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_query_duration_seconds",
				Help:      "订单查询方案耗时",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"variant"},
		),
		OrderQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_query_errors_total",
				Help:      "订单查询失败次数",
			},
			[]string{"variant", "code"},
		),
		MessagesPublishedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_published_total",
				Help:      "发布的领域事件数",
			},
			[]string{"routing_key", "result"},
		),
	}
}

// NewDefault 注册到默认Registry（/metrics 端点使用 promhttp.Handler()）
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
