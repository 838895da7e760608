package dto

import (
	"strings"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// OrderQuery 订单列表的查询参数
// 说明：offset/limit 用指针区分"没传"和"传了0"，没传时不分页
type OrderQuery struct {
	MemberName  string `form:"member_name"`
	OrderStatus string `form:"order_status"`
	Offset      *int   `form:"offset"`
	Limit       *int   `form:"limit"`
}

// ToParams 转换为查询参数
// 只传了offset或limit其中一个时，另一个取默认值
func (q OrderQuery) ToParams() (apporder.Params, error) {
	var p apporder.Params
	p.Search.MemberName = strings.TrimSpace(q.MemberName)

	if q.OrderStatus != "" {
		status, err := order.ParseOrderStatus(q.OrderStatus)
		if err != nil {
			return apporder.Params{}, err
		}
		p.Search.Status = &status
	}

	if q.Offset != nil || q.Limit != nil {
		page := order.Page{Offset: order.DefaultOffset, Limit: order.DefaultLimit}
		if q.Offset != nil {
			page.Offset = *q.Offset
		}
		if q.Limit != nil {
			page.Limit = *q.Limit
		}
		p.Page = &page
	}
	return p, nil
}
