package item

import (
	"context"
)

// Repository 商品仓储接口
type Repository interface {
	Create(ctx context.Context, it *Item) error

	// FindByID 不存在时返回ErrItemNotFound
	FindByID(ctx context.Context, id uint) (*Item, error)

	// UpdateStock 覆盖写库存
	UpdateStock(ctx context.Context, it *Item) error
}
