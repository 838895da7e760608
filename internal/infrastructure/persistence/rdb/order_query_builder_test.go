package rdb

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// 只检查生成的SQL，不执行，所以不需要真实的数据库连接
func newQueryRepoFor(t *testing.T, driver string) *orderQueryRepository {
	t.Helper()
	repo, ok := NewOrderQueryRepository(sqlx.NewDb(nil, driver)).(*orderQueryRepository)
	require.True(t, ok)
	return repo
}

func TestOrderQueryRepository_Placeholders(t *testing.T) {
	cancel := order.OrderStatusCancel
	search := order.Search{MemberName: "a_b", Status: &cancel, OrderIDs: []uint{1, 2}}

	tests := []struct {
		driver    string
		wantWhere string
		wantItems string
	}{
		{"postgres", "WHERE m.name LIKE $1 ESCAPE '!' AND o.status = $2 AND o.id IN ($3,$4)", "WHERE oi.order_id IN ($1,$2)"},
		{"pgx", "WHERE m.name LIKE $1 ESCAPE '!' AND o.status = $2 AND o.id IN ($3,$4)", "WHERE oi.order_id IN ($1,$2)"},
		{"mysql", "WHERE m.name LIKE ? ESCAPE '!' AND o.status = ? AND o.id IN (?,?)", "WHERE oi.order_id IN (?,?)"},
		{"sqlite", "WHERE m.name LIKE ? ESCAPE '!' AND o.status = ? AND o.id IN (?,?)", "WHERE oi.order_id IN (?,?)"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			repo := newQueryRepoFor(t, tt.driver)

			query, args, err := searchWhere(repo.sb.Select("o.id").From("orders o"), search).ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, []any{"%a!_b%", int(cancel), uint(1), uint(2)}, args)

			query, args, err = repo.itemViewsByOrderIDs([]uint{7, 8}).ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, tt.wantItems)
			assert.Equal(t, []any{uint(7), uint(8)}, args)
		})
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"userA", "%userA%"},
		{"_", "%!_%"},
		{"%", "%!%%"},
		{"50%_off!", "%50!%!_off!!%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.in), tt.in)
	}
}
