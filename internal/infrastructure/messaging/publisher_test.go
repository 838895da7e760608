package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, any) error { return errors.New("broker down") }
func (failingPublisher) Close() error { return nil }

func TestOpen_WithoutURL(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	p, cleanup, err := Open(&config.Config{}, m)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, p.Publish(context.Background(), "member.joined", map[string]any{"member_id": 1}))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesPublishedTotal.WithLabelValues("member.joined", "ok")))
}

func TestEventPublisher_CountsFailures(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := NewEventPublisher(failingPublisher{}, m)

	err := p.Publish(context.Background(), "member.updated", struct{}{})
	assert.EqualError(t, err, "broker down")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesPublishedTotal.WithLabelValues("member.updated", "error")))
}

func TestEventPublisher_BreakerOpens(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := NewEventPublisher(failingPublisher{}, m)

	for i := 0; i < 5; i++ {
		_ = p.Publish(context.Background(), "member.joined", struct{}{})
	}

	err := p.Publish(context.Background(), "member.joined", struct{}{})
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.MessagesPublishedTotal.WithLabelValues("member.joined", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesPublishedTotal.WithLabelValues("member.joined", "rejected")))
}
