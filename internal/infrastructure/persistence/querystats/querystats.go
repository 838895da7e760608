// Package querystats 统计一次请求打了多少次数据库
//
// 教学要点：
// 1. Counter 挂在请求的context上，请求之间互不影响
// 2. GORM插件在每条查询语句执行后计数，并为每条SQL创建一个子Span
// 3. 不经过GORM的查询（sqlx）调用 Observe 手动计数
package querystats

import (
	"context"
	"sync/atomic"
)

type counterKey struct{}

// Counter 请求级别的往返计数器
type Counter struct {
	n atomic.Int64
}

// Count 当前计数
func (c *Counter) Count() int {
	if c == nil {
		return 0
	}
	return int(c.n.Load())
}

func (c *Counter) inc() {
	if c != nil {
		c.n.Add(1)
	}
}

// WithCounter 在context上挂一个新的计数器
func WithCounter(ctx context.Context) (context.Context, *Counter) {
	c := &Counter{}
	return context.WithValue(ctx, counterKey{}, c), c
}

// FromContext 取出计数器，没有时返回nil（nil计数器的方法都是安全的）
func FromContext(ctx context.Context) *Counter {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(counterKey{}).(*Counter)
	return c
}

// Observe 记一次数据库往返
func Observe(ctx context.Context) {
	FromContext(ctx).inc()
}
