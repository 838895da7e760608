package member

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/member"
)

// JoinMemberUseCase 会员注册用例
type JoinMemberUseCase struct {
	memberService member.Service
}

// NewJoinMemberUseCase 创建注册用例
func NewJoinMemberUseCase(memberService member.Service) *JoinMemberUseCase {
	return &JoinMemberUseCase{memberService: memberService}
}

// JoinMemberRequest 注册请求
type JoinMemberRequest struct {
	Name    string
	Address address.Address
}

// JoinMemberResponse 注册响应，只返回ID
type JoinMemberResponse struct {
	ID uint `json:"id"`
}

// Execute 执行注册
func (uc *JoinMemberUseCase) Execute(ctx context.Context, req JoinMemberRequest) (*JoinMemberResponse, error) {
	m, err := uc.memberService.Join(ctx, req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	return &JoinMemberResponse{ID: m.ID}, nil
}

// UpdateMemberUseCase 修改会员名用例
// 教学要点：命令（Update）不返回数据，需要展示结果时再执行一次查询
type UpdateMemberUseCase struct {
	memberService member.Service
}

// NewUpdateMemberUseCase 创建修改用例
func NewUpdateMemberUseCase(memberService member.Service) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{memberService: memberService}
}

// UpdateMemberRequest 修改请求
type UpdateMemberRequest struct {
	ID   uint
	Name string
}

// UpdateMemberResponse 修改后的会员
type UpdateMemberResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Execute 执行修改
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, req UpdateMemberRequest) (*UpdateMemberResponse, error) {
	if err := uc.memberService.Update(ctx, req.ID, req.Name); err != nil {
		return nil, err
	}

	m, err := uc.memberService.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &UpdateMemberResponse{ID: m.ID, Name: m.Name}, nil
}

// ListMembersUseCase 会员列表用例
type ListMembersUseCase struct {
	memberService member.Service
}

// NewListMembersUseCase 创建列表用例
func NewListMembersUseCase(memberService member.Service) *ListMembersUseCase {
	return &ListMembersUseCase{memberService: memberService}
}

// MemberSummary 列表项，只暴露名称
type MemberSummary struct {
	Name string `json:"name"`
}

// Entities 直接返回实体（v1接口，不推荐）
func (uc *ListMembersUseCase) Entities(ctx context.Context) ([]*member.Member, error) {
	return uc.memberService.FindMembers(ctx)
}

// Execute 返回DTO列表（v2接口）
func (uc *ListMembersUseCase) Execute(ctx context.Context) ([]MemberSummary, error) {
	members, err := uc.memberService.FindMembers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MemberSummary, 0, len(members))
	for _, m := range members {
		out = append(out, MemberSummary{Name: m.Name})
	}
	return out, nil
}
