package member

import (
	"context"
)

// Repository 会员仓储接口
// 接口定义在domain层，实现在infrastructure/persistence/rdb
type Repository interface {
	// Create 创建会员，回填ID
	Create(ctx context.Context, m *Member) error

	// FindByID 不存在时返回ErrMemberNotFound
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByName 按名称精确查找，可能为空切片
	FindByName(ctx context.Context, name string) ([]*Member, error)

	// FindAll 按ID升序返回全部会员
	FindAll(ctx context.Context) ([]*Member, error)

	// Update 更新会员名和地址
	Update(ctx context.Context, m *Member) error
}
