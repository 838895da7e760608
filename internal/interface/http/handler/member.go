package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appmember "github.com/xiebiao/bookshop/internal/application/member"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// MemberHandler 会员HTTP处理器
// 教学要点：v1 直接收发实体，v2 使用接口专用的请求/响应结构
type MemberHandler struct {
	joinUseCase   *appmember.JoinMemberUseCase
	updateUseCase *appmember.UpdateMemberUseCase
	listUseCase   *appmember.ListMembersUseCase
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(
	joinUseCase *appmember.JoinMemberUseCase,
	updateUseCase *appmember.UpdateMemberUseCase,
	listUseCase *appmember.ListMembersUseCase,
) *MemberHandler {
	return &MemberHandler{
		joinUseCase:   joinUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
	}
}

// ListV1 会员列表（实体）
// @Summary      会员列表v1
// @Description  直接返回实体（不推荐：实体字段变化会直接改变API）
// @Tags         会员
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/members [get]
func (h *MemberHandler) ListV1(c *gin.Context) {
	members, err := h.listUseCase.Entities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

// ListV2 会员列表（DTO）
// @Summary      会员列表v2
// @Tags         会员
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData} "查询成功"
// @Router       /api/v2/members [get]
func (h *MemberHandler) ListV2(c *gin.Context) {
	members, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, len(members), members)
}

// CreateV1 会员注册（实体形状的请求体）
// @Summary      会员注册v1
// @Tags         会员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateMemberV1Request true "会员"
// @Success      200 {object} response.Response{data=appmember.JoinMemberResponse} "注册成功"
// @Router       /api/v1/members [post]
func (h *MemberHandler) CreateV1(c *gin.Context) {
	var req dto.CreateMemberV1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.joinUseCase.Execute(c.Request.Context(), appmember.JoinMemberRequest{
		Name:    req.Name,
		Address: req.Address.ToAddress(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateV2 会员注册
// @Summary      会员注册v2
// @Tags         会员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateMemberRequest true "会员名"
// @Success      200 {object} response.Response{data=appmember.JoinMemberResponse} "注册成功"
// @Failure      200 {object} response.Response "40003 会员名已存在"
// @Router       /api/v2/members [post]
func (h *MemberHandler) CreateV2(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.joinUseCase.Execute(c.Request.Context(), appmember.JoinMemberRequest{Name: req.Name})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 修改会员名
// @Summary      修改会员名
// @Tags         会员
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                     true "会员ID"
// @Param        request body dto.UpdateMemberRequest true "新的会员名"
// @Success      200 {object} response.Response{data=appmember.UpdateMemberResponse} "修改成功"
// @Router       /api/v2/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的会员ID")
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appmember.UpdateMemberRequest{
		ID:   uint(id),
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
