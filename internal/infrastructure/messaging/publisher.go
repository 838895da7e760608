// Package messaging 把 pkg/mq 的发布者接到会员领域事件上
package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// EventPublisher 带熔断、指标和链路追踪的事件发布者
// 实现 member.EventPublisher
type EventPublisher struct {
	inner   mq.Publisher
	breaker *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// NewEventPublisher 包装一个mq.Publisher
// RabbitMQ连续失败5次后熔断30秒，期间发布直接失败（result=rejected）
func NewEventPublisher(inner mq.Publisher, m *metrics.Metrics) *EventPublisher {
	breaker := circuitbreaker.New("mq.publish", circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	})
	return &EventPublisher{inner: inner, breaker: breaker, metrics: m}
}

// Open 按配置创建发布者
// mq.url 为空时使用 NopPublisher；返回的cleanup负责关闭连接
func Open(cfg *config.Config, m *metrics.Metrics) (*EventPublisher, func(), error) {
	if cfg.MQ.URL == "" {
		slog.Info("未配置mq.url，领域事件不会发送")
		return NewEventPublisher(mq.NopPublisher{}, m), func() {}, nil
	}

	p, err := mq.NewAMQPPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			slog.Warn("关闭消息发布者失败", slog.Any("error", err))
		}
	}
	return NewEventPublisher(p, m), cleanup, nil
}

// Publish 发布事件
func (p *EventPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	ctx, span := tracing.StartSpan(ctx, "mq.publish "+routingKey)
	defer span.End()

	err := p.breaker.Execute(func() error {
		return p.inner.Publish(ctx, routingKey, event)
	})
	result := "ok"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
		tracing.RecordError(span, err)
	case err != nil:
		result = "error"
		tracing.RecordError(span, err)
	}
	if p.metrics != nil {
		p.metrics.MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
	}
	return err
}
