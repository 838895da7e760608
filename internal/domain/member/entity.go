package member

import (
	"strings"

	"github.com/xiebiao/bookshop/internal/domain/address"
)

// Member 会员实体（聚合根）
// 设计说明：
// 1. 会员与订单是一对多，但会员这一侧不持有订单集合，需要时按 member_id 查询
// 2. json tag 只为 v1 "直接暴露实体" 的接口服务
type Member struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Address address.Address `json:"address"`
}

// NewMember 创建会员（工厂方法）
func NewMember(name string, addr address.Address) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Member{Name: name, Address: addr}, nil
}

// Rename 修改会员名（领域行为）
func (m *Member) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	m.Name = name
	return nil
}
