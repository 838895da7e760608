package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// HeaderQueryCount 本次请求的数据库往返次数
const HeaderQueryCount = "X-Query-Count"

// OrderHandler 订单查询HTTP处理器
// 设计说明：
// 1. 所有订单接口共用一个处理函数，区别只在路由表里的查询方案
// 2. Handler只负责绑定参数、调用Selector、写响应
type OrderHandler struct {
	selector *apporder.Selector
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(selector *apporder.Selector) *OrderHandler {
	return &OrderHandler{selector: selector}
}

// Routes 路由表（路由注册使用）
func (h *OrderHandler) Routes() []apporder.Route {
	return h.selector.Routes()
}

// Query 返回某个接口版本的处理函数
// @Summary      订单查询
// @Description  同一份数据的多种查询方案，X-Query-Count 响应头给出数据库往返次数。
// @Description  只有 simple-v3 和 v3.1 接受 offset/limit，其余版本带分页参数会返回 40900。
// @Tags         订单查询
// @Produce      json
// @Param        member_name  query string false "会员名（子串匹配）"
// @Param        order_status query string false "订单状态" Enums(ORDER, CANCEL)
// @Param        offset       query int    false "偏移量"
// @Param        limit        query int    false "条数（1-1000）"
// @Success      200 {object} response.Response "查询成功"
// @Header       200 {integer} X-Query-Count "数据库往返次数"
// @Router       /api/v1/simple-orders [get]
// @Router       /api/v2/simple-orders [get]
// @Router       /api/v3/simple-orders [get]
// @Router       /api/v4/simple-orders [get]
// @Router       /api/v1/orders [get]
// @Router       /api/v2/orders [get]
// @Router       /api/v3/orders [get]
// @Router       /api/v3.1/orders [get]
// @Router       /api/v4/orders [get]
// @Router       /api/v5/orders [get]
// @Router       /api/v6/orders [get]
func (h *OrderHandler) Query(route apporder.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.OrderQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
			return
		}

		params, err := q.ToParams()
		if err != nil {
			response.Error(c, err)
			return
		}

		// 详情接口：路径里的ID作为ID集合条件
		if raw := c.Param("id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
			if err != nil || id == 0 {
				response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的订单ID")
				return
			}
			params.Search.OrderIDs = []uint{uint(id)}
		}

		result, err := h.selector.Execute(c.Request.Context(), route.Name, params)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Header(HeaderQueryCount, strconv.Itoa(result.RoundTrips))
		response.Success(c, result.Data)
	}
}
