package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 按ID集合查询时没有任何匹配
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrEmptyOrderItems 订单明细不能为空
	ErrEmptyOrderItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidOrderStatus 订单状态只能是ORDER或CANCEL
	ErrInvalidOrderStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "订单状态只能是ORDER或CANCEL")

	// ErrPaginationUnsupported 该查询方案不支持分页
	ErrPaginationUnsupported = apperrors.New(apperrors.ErrCodeInvalidParams, "该查询方案不支持分页参数")

	// ErrInvalidPage 分页参数不合法
	ErrInvalidPage = apperrors.New(apperrors.ErrCodeInvalidParams, "offset不能为负数，limit需在1-1000之间")
)
