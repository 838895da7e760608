package rdb

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// isDuplicateError 判断是否为唯一索引冲突
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - PostgreSQL 23505: duplicate key value violates unique constraint
// - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// applySearch 把查询条件翻译成WHERE子句
// orderTable、memberTable 是当前SQL里订单表和会员表的别名
// 使用 clause 表达式而不是手写字符串，列名引号交给方言处理
func applySearch(db *gorm.DB, s order.Search, orderTable, memberTable string) *gorm.DB {
	if s.MemberName != "" {
		db = db.Where(clause.Expr{
			SQL:  "? LIKE ? ESCAPE '" + likeEscape + "'",
			Vars: []any{clause.Column{Table: memberTable, Name: "name"}, containsPattern(s.MemberName)},
		})
	}
	if s.Status != nil {
		db = db.Where(clause.Eq{
			Column: clause.Column{Table: orderTable, Name: "status"},
			Value:  int(*s.Status),
		})
	}
	if s.HasIDs() {
		db = db.Where(clause.IN{
			Column: clause.Column{Table: orderTable, Name: "id"},
			Values: uintsToAny(s.OrderIDs),
		})
	}
	return db
}

// likeEscape LIKE 的转义字符
// 反斜杠在MySQL字面量里要写成 '\\'，在PostgreSQL、SQLite里是 '\'；'!' 在各方言里写法相同
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// containsPattern 子串匹配的LIKE模式
// 用户输入里的 % 和 _ 按普通字符匹配，例如 "_" 只匹配名字里带下划线的会员
func containsPattern(s string) string {
	return "%" + likeReplacer.Replace(s) + "%"
}

func uintsToAny(ids []uint) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
