package dto

import "github.com/xiebiao/bookshop/internal/domain/address"

// AddressRequest 地址
type AddressRequest struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// ToAddress 转换为值对象
func (a AddressRequest) ToAddress() address.Address {
	return address.New(a.City, a.Street, a.Zipcode)
}

// CreateMemberV1Request v1注册请求，直接绑定实体形状（不推荐）
type CreateMemberV1Request struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name" binding:"required"`
	Address AddressRequest `json:"address"`
}

// CreateMemberRequest v2注册请求
// 说明：接口专用的请求结构，实体字段变化不会影响API
type CreateMemberRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateMemberRequest 修改会员名
type UpdateMemberRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}
