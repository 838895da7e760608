package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/item"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// itemRepository 商品仓储实现
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓储
func NewItemRepository(db *gorm.DB) item.Repository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *item.Item) error {
	model := &ItemModel{
		Name:          it.Name,
		Price:         it.Price,
		StockQuantity: it.StockQuantity,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.StoreUnavailable(err, "创建商品失败")
	}
	it.ID = model.ID
	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*item.Item, error) {
	var model ItemModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrItemNotFound
		}
		return nil, apperrors.StoreUnavailable(err, "查询商品失败")
	}
	return toItemEntity(&model), nil
}

// UpdateStock 覆盖写库存
// 教学要点：这里没有乐观锁，调用方需要在事务内先读后写
func (r *itemRepository) UpdateStock(ctx context.Context, it *item.Item) error {
	result := conn(ctx, r.db).Model(&ItemModel{ID: it.ID}).Update("stock_quantity", it.StockQuantity)
	if result.Error != nil {
		return apperrors.StoreUnavailable(result.Error, "更新库存失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func toItemEntity(m *ItemModel) *item.Item {
	return &item.Item{
		ID:            m.ID,
		Name:          m.Name,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
	}
}
