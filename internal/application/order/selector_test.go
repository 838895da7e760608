package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func noop(context.Context, Params) (any, error) { return []OrderDTO{}, nil }

func TestNewSelector_Validation(t *testing.T) {
	_, err := NewSelector([]Route{
		{Name: "a", Path: "/a", Strategy: noop},
		{Name: "a", Path: "/b", Strategy: noop},
	}, nil)
	assert.Error(t, err)

	_, err = NewSelector([]Route{
		{Name: "a", Path: "/a", Strategy: noop},
		{Name: "b", Path: "/a", Strategy: noop},
	}, nil)
	assert.Error(t, err)

	_, err = NewSelector([]Route{{Name: "a", Path: "/a"}}, nil)
	assert.Error(t, err)
}

func TestRoutes_Table(t *testing.T) {
	routes := Routes(NewQueries(nil, nil))
	sel, err := NewSelector(routes, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(routes))
	paging := make([]string, 0)
	for _, r := range sel.Routes() {
		names = append(names, r.Name)
		if r.Pagination == PaginationSupported {
			paging = append(paging, r.Name)
		}
	}
	assert.Equal(t, []string{
		"simple-v1", "simple-v2", "simple-v3", "simple-v4",
		"orders-v1", "orders-v2", "orders-v3", "orders-v3.1",
		"orders-v4", "orders-v5", "orders-v6", "order-detail",
	}, names)
	assert.Equal(t, []string{"simple-v3", "orders-v3.1"}, paging)
}

func TestSelector_UnknownVariant(t *testing.T) {
	sel, err := NewSelector([]Route{{Name: "a", Path: "/a", Strategy: noop}}, nil)
	require.NoError(t, err)

	_, err = sel.Execute(context.Background(), "missing", Params{})
	assert.True(t, apperrors.IsNotFound(err))

	res, err := sel.Execute(context.Background(), "a", Params{})
	require.NoError(t, err)
	assert.Zero(t, res.RoundTrips)
}
