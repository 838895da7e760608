package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/member"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// memberRepository 会员仓储实现
// 设计说明：
// 1. 实现domain/member/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 唯一索引冲突转换为业务错误 ErrDuplicateMember
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 创建会员
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		Name:    m.Name,
		Address: addressColumns(m.Address),
	}

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return member.ErrDuplicateMember
		}
		return apperrors.StoreUnavailable(err, "创建会员失败")
	}

	m.ID = model.ID
	return nil
}

// FindByID 根据ID查找会员
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := conn(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.StoreUnavailable(err, "查询会员失败")
	}
	return toMemberEntity(&model), nil
}

// FindByName 按名称精确查找
func (r *memberRepository) FindByName(ctx context.Context, name string) ([]*member.Member, error) {
	var models []MemberModel
	if err := conn(ctx, r.db).Where("name = ?", name).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.StoreUnavailable(err, "查询会员失败")
	}
	return toMemberEntities(models), nil
}

// FindAll 全部会员，按ID升序
func (r *memberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.StoreUnavailable(err, "查询会员列表失败")
	}
	return toMemberEntities(models), nil
}

// Update 更新会员名和地址
// 使用Updates只更新指定列，不覆盖created_at
func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	result := conn(ctx, r.db).Model(&MemberModel{ID: m.ID}).Updates(map[string]any{
		"name":    m.Name,
		"city":    m.Address.City,
		"street":  m.Address.Street,
		"zipcode": m.Address.Zipcode,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return member.ErrDuplicateMember
		}
		return apperrors.StoreUnavailable(result.Error, "更新会员失败")
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func toMemberEntity(m *MemberModel) *member.Member {
	return &member.Member{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address.toValue(),
	}
}

func toMemberEntities(models []MemberModel) []*member.Member {
	out := make([]*member.Member, 0, len(models))
	for i := range models {
		out = append(out, toMemberEntity(&models[i]))
	}
	return out
}
