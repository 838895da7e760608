package rdb

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/address"
)

// 设计说明：
// 1. 这里是infrastructure层的数据模型，带GORM tag
// 2. domain层实体不依赖GORM，Repository负责两者之间的转换
// 3. 订单模型只声明对一关联（Member、Delivery），明细由 order_items.order_id 反查，
//    不在 OrderModel 上挂 []OrderItemModel，避免 Preload 把 N+1 藏起来

// AddressColumns 地址列（嵌入到会员表和配送表）
type AddressColumns struct {
	City    string `gorm:"size:50;comment:城市"`
	Street  string `gorm:"size:100;comment:街道"`
	Zipcode string `gorm:"size:20;comment:邮编"`
}

func (a AddressColumns) toValue() address.Address {
	return address.New(a.City, a.Street, a.Zipcode)
}

func addressColumns(a address.Address) AddressColumns {
	return AddressColumns{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

// MemberModel 会员表
type MemberModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"uniqueIndex;size:50;not null;comment:会员名"`
	Address   AddressColumns `gorm:"embedded"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// ItemModel 商品表，价格单位为分
type ItemModel struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:200;not null;comment:商品名"`
	Price         int64     `gorm:"not null;comment:价格(分)"`
	StockQuantity int       `gorm:"not null;default:0;comment:库存"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ItemModel) TableName() string {
	return "items"
}

// DeliveryModel 配送表
type DeliveryModel struct {
	ID      uint           `gorm:"primaryKey"`
	Address AddressColumns `gorm:"embedded"`
	Status  int            `gorm:"not null;default:1;comment:配送状态(1READY 2COMP)"`
}

// TableName 指定表名
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// OrderModel 订单表
// 教学要点：Status使用int存储，接口层再转成 ORDER / CANCEL
type OrderModel struct {
	ID         uint          `gorm:"primaryKey"`
	MemberID   uint          `gorm:"index;not null;comment:会员ID"`
	Member     MemberModel   `gorm:"foreignKey:MemberID"`
	DeliveryID uint          `gorm:"uniqueIndex;not null;comment:配送ID"`
	Delivery   DeliveryModel `gorm:"foreignKey:DeliveryID"`
	OrderDate  time.Time     `gorm:"index;not null;comment:下单时间"`
	Status     int           `gorm:"index;not null;default:1;comment:订单状态(1ORDER 2CANCEL)"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表
// OrderPrice 记录下单时的单价快照
type OrderItemModel struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    uint      `gorm:"index;not null;comment:订单ID"`
	ItemID     uint      `gorm:"index;not null;comment:商品ID"`
	Item       ItemModel `gorm:"foreignKey:ItemID"`
	OrderPrice int64     `gorm:"not null;comment:下单时单价(分)"`
	Count      int       `gorm:"not null;comment:数量"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// AllModels AutoMigrate使用的模型列表（按外键依赖顺序）
func AllModels() []any {
	return []any{
		&MemberModel{},
		&ItemModel{},
		&DeliveryModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
