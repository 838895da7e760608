package item

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 商品领域错误定义
var (
	ErrItemNotFound    = apperrors.New(apperrors.ErrCodeItemNotFound, "商品不存在")
	ErrInvalidPrice    = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")
	ErrInvalidStock    = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
	ErrNotEnoughStock  = apperrors.New(apperrors.ErrCodeBusinessError, "库存不足")
)
