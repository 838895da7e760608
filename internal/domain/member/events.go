package member

import (
	"context"
	"time"
)

// 事件路由键
const (
	RoutingKeyJoined  = "member.joined"
	RoutingKeyUpdated = "member.updated"
)

// JoinedEvent 会员注册成功
type JoinedEvent struct {
	MemberID   uint      `json:"member_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// UpdatedEvent 会员信息变更
type UpdatedEvent struct {
	MemberID   uint      `json:"member_id"`
	OldName    string    `json:"old_name"`
	NewName    string    `json:"new_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher 领域事件发布接口（由infrastructure层的消息队列实现）
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}
