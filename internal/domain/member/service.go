package member

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
)

// Service 会员领域服务
type Service interface {
	// Join 注册会员
	// 业务规则：会员名不能重复
	Join(ctx context.Context, name string, addr address.Address) (*Member, error)

	// FindMembers 查询全部会员
	FindMembers(ctx context.Context) ([]*Member, error)

	// FindOne 按ID查询
	FindOne(ctx context.Context, id uint) (*Member, error)

	// Update 修改会员名
	// 教学要点：命令只返回错误，调用方需要最新数据时再查一次（命令与查询分离）
	Update(ctx context.Context, id uint, name string) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	now       func() time.Time
}

// NewService 创建会员服务
func NewService(repo Repository, publisher EventPublisher) Service {
	return &service{repo: repo, publisher: publisher, now: time.Now}
}

func (s *service) Join(ctx context.Context, name string, addr address.Address) (*Member, error) {
	m, err := NewMember(name, addr)
	if err != nil {
		return nil, err
	}

	if err := s.validateDuplicate(ctx, m.Name); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.publish(ctx, RoutingKeyJoined, JoinedEvent{
		MemberID:   m.ID,
		Name:       m.Name,
		OccurredAt: s.now(),
	})
	return m, nil
}

func (s *service) FindMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) FindOne(ctx context.Context, id uint) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, name string) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	oldName := m.Name
	if err := m.Rename(name); err != nil {
		return err
	}
	if m.Name != oldName {
		if err := s.validateDuplicate(ctx, m.Name); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return err
	}

	s.publish(ctx, RoutingKeyUpdated, UpdatedEvent{
		MemberID:   m.ID,
		OldName:    oldName,
		NewName:    m.Name,
		OccurredAt: s.now(),
	})
	return nil
}

// validateDuplicate 同名校验
// 注意：先查后插存在并发窗口，members.name 上的唯一索引兜底
func (s *service) validateDuplicate(ctx context.Context, name string) error {
	found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if len(found) > 0 {
		return ErrDuplicateMember
	}
	return nil
}

// publish 事件发布失败只记日志，不影响已提交的写操作
func (s *service) publish(ctx context.Context, routingKey string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		slog.WarnContext(ctx, "发布会员事件失败",
			slog.String("routing_key", routingKey),
			slog.Any("error", err),
		)
	}
}
