package item

// Item 商品实体（本项目中都是图书）
// 设计说明：
// 1. 价格使用int64，以"分"为单位，避免浮点数精度问题
// 2. StockQuantity 只在下单时扣减，订单查询接口不会展示
type Item struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
}

// NewItem 创建商品
func NewItem(name string, price int64, stock int) (*Item, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	return &Item{Name: name, Price: price, StockQuantity: stock}, nil
}

// AddStock 增加库存
func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
}

// RemoveStock 扣减库存
// 业务规则：库存不能为负
func (i *Item) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return ErrNotEnoughStock
	}
	i.StockQuantity = rest
	return nil
}
