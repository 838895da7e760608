package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v3/orders", nil)
	return c, w
}

func TestSuccessWithList(t *testing.T) {
	c, w := newContext()
	SuccessWithList(c, 2, []string{"userA", "userB"})

	assert.Equal(t, http.StatusOK, w.Code)
	jsonassert.New(t).Assertf(w.Body.String(),
		`{"code":0,"message":"success","data":{"count":2,"data":["userA","userB"]}}`)
}

func TestError_HidesCause(t *testing.T) {
	c, w := newContext()
	Error(c, apperrors.StoreUnavailable(errors.New("dial tcp 10.0.0.1:3306: connection refused"), "查询订单失败"))

	assert.Equal(t, http.StatusOK, w.Code, "业务错误统一返回200")
	jsonassert.New(t).Assertf(w.Body.String(), `{"code":50001,"message":"查询订单失败"}`)
}

func TestError_PlainError(t *testing.T) {
	c, w := newContext()
	Error(c, errors.New("boom"))

	jsonassert.New(t).Assertf(w.Body.String(), `{"code":50000,"message":"<<PRESENCE>>"}`)
}
