package address

import "strings"

// Address 地址值对象
// 教学要点：
// 1. 值对象没有ID，按全部字段判断相等
// 2. 字段都是string，结构体天然可比较（==、可以作为map的key）
// 3. 不提供修改方法，需要变更时整体替换
type Address struct {
	City    string `json:"city" db:"city"`
	Street  string `json:"street" db:"street"`
	Zipcode string `json:"zipcode" db:"zipcode"`
}

// New 创建地址
func New(city, street, zipcode string) Address {
	return Address{City: city, Street: street, Zipcode: zipcode}
}

// IsZero 是否为空地址
func (a Address) IsZero() bool {
	return a == Address{}
}

// String 便于日志输出
func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.City, a.Street, a.Zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
